package presence

import (
	"testing"
	"time"

	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepMarksStaleUsersOffline(t *testing.T) {
	s := store.NewMemoryStore()

	require.NoError(t, s.Commit(models.Snapshot{
		Users: []models.UserRecord{
			{ID: "u1", Email: "stale@x.com", IsActive: true, IsOnline: true, LastSeen: time.Now().Add(-time.Hour)},
			{ID: "u2", Email: "fresh@x.com", IsActive: true, IsOnline: true, LastSeen: time.Now()},
			{ID: "u3", Email: "offline@x.com", IsActive: true, IsOnline: false, LastSeen: time.Now().Add(-time.Hour)},
		},
	}))

	sweeper := NewSweeper(s, time.Minute, 10*time.Minute)
	sweeper.sweep()

	snapshot, err := s.Load()
	require.NoError(t, err)

	assert.False(t, snapshot.FindUserByEmail("stale@x.com").IsOnline)
	assert.True(t, snapshot.FindUserByEmail("fresh@x.com").IsOnline)
	assert.False(t, snapshot.FindUserByEmail("offline@x.com").IsOnline)
}

func TestSweepSkipsCommitWhenNothingStale(t *testing.T) {
	s := store.NewMemoryStore()

	require.NoError(t, s.Commit(models.Snapshot{
		Users: []models.UserRecord{
			{ID: "u1", Email: "fresh@x.com", IsActive: true, IsOnline: true, LastSeen: time.Now()},
		},
	}))

	var notified int
	s.Events().Subscribe(store.EventDataChanged, func() {
		notified++
	})

	sweeper := NewSweeper(s, time.Minute, 10*time.Minute)
	sweeper.sweep()

	assert.Equal(t, 0, notified)
}
