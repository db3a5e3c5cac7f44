package observers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/events"
	"github.com/vmunix/reelcat/internal/user"
)

//go:generate mockgen -destination=mocks/sender.go -package=mocks github.com/vmunix/reelcat/internal/observers Sender

// Message is an out-of-band notification.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers notifications, e.g. by e-mail.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier tells subscribed users about catalog additions, removals and
// updates. Watch events are ignored.
type Notifier struct {
	events.NopVisitor

	sender     Sender
	from       string
	recipients []user.User
	logger     *slog.Logger
}

var _ events.Observer = (*Notifier)(nil)

// NewNotifier creates a notifier. Only recipients who are subscribed and
// have an e-mail address are contacted.
func NewNotifier(sender Sender, from string, recipients []user.User, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender:     sender,
		from:       from,
		recipients: recipients,
		logger:     logger.With("component", "notifier"),
	}
}

// Notify handles e.
func (n *Notifier) Notify(e events.Event) { e.Accept(n) }

func (n *Notifier) VisitContentAdded(e *events.ContentAdded) {
	n.broadcast("New on the platform: "+e.Content.Title(),
		fmt.Sprintf("'%s' is now available (%s).", e.Content.Title(), describe(e.Content)))
}

func (n *Notifier) VisitContentRemoved(e *events.ContentRemoved) {
	n.broadcast("Leaving the platform: "+e.Content.Title(),
		fmt.Sprintf("'%s' is no longer available.", e.Content.Title()))
}

func (n *Notifier) VisitContentUpdated(e *events.ContentUpdated) {
	n.broadcast("Updated: "+e.New.Title(),
		fmt.Sprintf("'%s' has been updated (%s).", e.New.Title(), describe(e.New)))
}

// broadcast sends to every eligible recipient. Failures are logged and
// do not stop the remaining sends.
func (n *Notifier) broadcast(subject, body string) {
	ctx := context.Background()
	for _, u := range n.recipients {
		if !u.Subscribed || strings.TrimSpace(u.Email) == "" {
			continue
		}
		msg := Message{From: n.from, To: u.Email, Subject: subject, Body: body}
		if err := n.sender.Send(ctx, msg); err != nil {
			n.logger.Error("send notification failed", "to", u.Email, "subject", subject, "error", err)
			continue
		}
		n.logger.Debug("notification sent", "to", u.Email, "subject", subject)
	}
}

var describer = content.VisitorFuncs[string]{
	Movie: func(m *content.Movie) string {
		return fmt.Sprintf("movie, %d min", m.Duration())
	},
	Series: func(s *content.Series) string {
		return fmt.Sprintf("series, %d seasons, %d min", len(s.Seasons()), s.Duration())
	},
}

func describe(c content.Content) string {
	return content.Visit[string](c, describer)
}

// LogSender is a Sender that writes messages to a logger instead of
// delivering them.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs msg.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "notification", "from", msg.From, "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
