package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/catalog"
	"github.com/vmunix/reelcat/internal/config"
	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/download"
	"github.com/vmunix/reelcat/internal/events"
	"github.com/vmunix/reelcat/internal/observers"
	"github.com/vmunix/reelcat/internal/user"
)

// app is a catalog loaded from config with the built-in observers attached.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalog   *catalog.Catalog
	users     []user.User
	eventLog  *observers.Logger
	watchList *observers.WatchList
}

func (o *rootOptions) loadApp(cmd *cobra.Command) (*app, error) {
	path, err := config.Discover(o.configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)
	logger.Debug("config loaded", "path", path)

	users, err := cfg.BuildUsers()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		users:     users,
		eventLog:  observers.NewLogger(nil, logger),
		watchList: observers.NewWatchList(logger),
	}

	obs := []events.Observer{a.eventLog, a.watchList}
	if cfg.Notifications.Enabled {
		sender := observers.NewLogSender(logger.With("component", "mail"))
		obs = append(obs, observers.NewNotifier(sender, cfg.Notifications.From, users, logger))
	}

	planner := download.NewPlanner(cfg.Download.MovieTemplate, cfg.Download.SeriesTemplate, cfg.Download.Extension)
	a.catalog, err = catalog.New(cfg,
		catalog.WithLogger(logger),
		catalog.WithPlanner(planner),
		catalog.WithObservers(obs...),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// find looks up a title, suggesting the closest match when it is missing.
func (a *app) find(title string) (content.Content, error) {
	if c, ok := a.catalog.Get(title); ok {
		return c, nil
	}
	if best := a.catalog.Search(title, 1); len(best) > 0 {
		return nil, fmt.Errorf("%q: %w (did you mean %q?)", title, catalog.ErrContentNotFound, best[0].Title)
	}
	return nil, fmt.Errorf("%q: %w", title, catalog.ErrContentNotFound)
}

func (a *app) user(name string) (user.User, error) {
	for _, u := range a.users {
		if u.Name == name {
			return u, nil
		}
	}
	return user.User{}, fmt.Errorf("unknown user %q", name)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
