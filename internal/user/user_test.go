package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/reelcat/internal/content"
)

func TestNew(t *testing.T) {
	u, err := New("alice", "alice@example.com", true)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "alice", u.String())

	other, err := New("alice", "alice@example.com", true)
	require.NoError(t, err)
	assert.NotEqual(t, u.ID, other.ID, "IDs are unique per user")

	_, err = New(" ", "", false)
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestCanAccess(t *testing.T) {
	ep, err := content.NewEpisode(1, 90)
	require.NoError(t, err)
	premium, err := content.NewMovie("Premium", ep)
	require.NoError(t, err)
	free, err := content.NewMovie("Free", ep, content.Free())
	require.NoError(t, err)

	subscriber := User{Name: "sub", Subscribed: true}
	guest := User{Name: "guest"}

	assert.True(t, subscriber.CanAccess(premium))
	assert.True(t, subscriber.CanAccess(free))
	assert.False(t, guest.CanAccess(premium))
	assert.True(t, guest.CanAccess(free))
}
