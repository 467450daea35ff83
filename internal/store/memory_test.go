package store

import (
	"testing"
	"time"

	"github.com/devhub-dev/devhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() models.Snapshot {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return models.Snapshot{
		Users: []models.UserRecord{
			{
				ID:       "u1",
				Name:     "Alice",
				Email:    "alice@x.com",
				Avatar:   "A",
				Role:     "Developer",
				Skills:   []string{"go"},
				IsActive: true,
				IsOnline: true,
				JoinDate: created,
				LastSeen: created,
			},
		},
		Teams: []models.TeamRecord{
			{
				ID:         "t1",
				Name:       "Rockets",
				OwnerEmail: "alice@x.com",
				Members:    []string{"alice@x.com"},
				CreatedAt:  created,
				IsActive:   true,
			},
		},
		Invitations: []models.InvitationRecord{
			{
				ID:           "i1",
				TeamID:       "t1",
				TeamName:     "Rockets",
				InviterEmail: "alice@x.com",
				InviterName:  "Alice",
				InviteeEmail: "bob@x.com",
				Status:       models.InvitationStatusPending,
				CreatedAt:    created,
			},
		},
		Messages: []models.ChatMessage{
			{
				ID:          "m1",
				TeamID:      "t1",
				SenderEmail: "alice@x.com",
				SenderName:  "Alice",
				Text:        "hello",
				CreatedAt:   created,
			},
		},
	}
}

func TestLoadEmptyStore(t *testing.T) {
	s := NewMemoryStore()

	snapshot, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, snapshot.Users)
	assert.Empty(t, snapshot.Teams)
	assert.Empty(t, snapshot.Invitations)
	assert.Empty(t, snapshot.Messages)
}

func TestCommitLoadRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Commit(sampleSnapshot()))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), loaded)

	// Persisting what was just loaded must leave the store unchanged.
	require.NoError(t, s.Commit(loaded))

	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestCommitNotifiesSubscribers(t *testing.T) {
	s := NewMemoryStore()

	var notified int
	s.Events().Subscribe(EventDataChanged, func() {
		notified++
	})

	require.NoError(t, s.Commit(sampleSnapshot()))
	assert.Equal(t, 1, notified)

	err := s.Mutate(func(snapshot *models.Snapshot) error {
		snapshot.Users[0].IsOnline = false
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, notified)
}

func TestMutateFailureDoesNotCommit(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Commit(sampleSnapshot()))

	var notified int
	s.Events().Subscribe(EventDataChanged, func() {
		notified++
	})

	err := s.Mutate(func(snapshot *models.Snapshot) error {
		snapshot.Users = nil
		return assert.AnError
	})

	require.Error(t, err)
	assert.Equal(t, 0, notified)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Users, 1)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := NewMemoryStore()

	var notified int
	id := s.Events().Subscribe(EventDataChanged, func() {
		notified++
	})

	require.NoError(t, s.Commit(sampleSnapshot()))
	s.Events().Unsubscribe(EventDataChanged, id)
	require.NoError(t, s.Commit(sampleSnapshot()))

	assert.Equal(t, 1, notified)
}
