// Package user models the people who watch and download catalog content.
package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vmunix/reelcat/internal/content"
)

// ErrInvalidUser indicates a user was created without a name.
var ErrInvalidUser = errors.New("invalid user")

// User is a platform account. Subscribed is the only authorization state.
type User struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Subscribed bool
}

// New creates a user with a fresh random ID.
func New(name, email string, subscribed bool) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, fmt.Errorf("%w: name is blank", ErrInvalidUser)
	}
	return User{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Subscribed: subscribed,
	}, nil
}

// CanAccess reports whether u may watch or download c: free content is
// open to everyone, the rest needs a subscription.
func (u User) CanAccess(c content.Content) bool {
	return c.Free() || u.Subscribed
}

func (u User) String() string { return u.Name }
