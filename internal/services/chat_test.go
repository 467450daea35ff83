package services

import (
	"testing"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMembershipGating(t *testing.T) {
	s := store.NewMemoryStore()
	r := NewRegistry(s)
	c := NewChat(s)

	team, err := r.Create("Rockets", "", "alice@x.com")
	require.NoError(t, err)

	t.Run("non-members cannot post", func(t *testing.T) {
		_, err := c.Post(team.ID, "bob@x.com", "bob", "hi")
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("non-members cannot read", func(t *testing.T) {
		_, err := c.List(team.ID, "bob@x.com")
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := c.List("missing", "alice@x.com")
		assert.ErrorIs(t, err, apperror.ErrNotFound)

		_, err = c.Post("missing", "alice@x.com", "alice", "hi")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestChatTranscriptOrder(t *testing.T) {
	s := store.NewMemoryStore()
	r := NewRegistry(s)
	c := NewChat(s)

	team, err := r.Create("Rockets", "", "alice@x.com")
	require.NoError(t, err)
	require.NoError(t, r.AddMember(team.ID, "bob@x.com"))

	_, err = c.Post(team.ID, "alice@x.com", "alice", "first")
	require.NoError(t, err)
	_, err = c.Post(team.ID, "bob@x.com", "bob", "second")
	require.NoError(t, err)

	other, err := r.Create("Boats", "", "alice@x.com")
	require.NoError(t, err)
	_, err = c.Post(other.ID, "alice@x.com", "alice", "elsewhere")
	require.NoError(t, err)

	messages, err := c.List(team.ID, "bob@x.com")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "alice@x.com", messages[0].SenderEmail)
}
