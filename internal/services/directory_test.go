package services

import (
	"fmt"
	"testing"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	return NewDirectory(store.NewMemoryStore())
}

func mustRegister(t *testing.T, d *Directory, name, email string) models.UserRecord {
	t.Helper()

	user, err := d.Register(name, email, "hunter2secret")
	require.NoError(t, err)

	return user
}

func TestRegisterAssignsDefaults(t *testing.T) {
	d := newTestDirectory(t)

	user := mustRegister(t, d, "alice", "alice@x.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.Equal(t, "A", user.Avatar)
	assert.Equal(t, "Developer", user.Role)
	assert.True(t, user.IsActive)
	assert.True(t, user.IsOnline)
	assert.False(t, user.JoinDate.IsZero())
	assert.NotEqual(t, "hunter2secret", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	d := newTestDirectory(t)

	mustRegister(t, d, "alice", "alice@x.com")

	_, err := d.Register("impostor", "alice@x.com", "hunter2secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterNormalizesEmailCase(t *testing.T) {
	d := newTestDirectory(t)

	user := mustRegister(t, d, "alice", "  Alice@X.Com ")
	assert.Equal(t, "alice@x.com", user.Email)

	_, err := d.Register("impostor", "ALICE@x.com", "hunter2secret")
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	d := newTestDirectory(t)
	mustRegister(t, d, "alice", "alice@x.com")

	user, err := d.Authenticate("alice@x.com", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Email)

	_, err = d.Authenticate("alice@x.com", "wrong-password")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = d.Authenticate("nobody@x.com", "hunter2secret")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestFindByEmailAndID(t *testing.T) {
	d := newTestDirectory(t)
	registered := mustRegister(t, d, "alice", "alice@x.com")

	byEmail, err := d.FindByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)

	byID, err := d.FindByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", byID.Email)

	_, err = d.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSearchForInvitation(t *testing.T) {
	d := newTestDirectory(t)

	mustRegister(t, d, "alice", "alice@x.com")
	mustRegister(t, d, "bob", "bob@x.com")
	carol := mustRegister(t, d, "carol", "carol@x.com")

	_, err := d.UpdateProfile(carol.Email, ProfileUpdate{
		Skills: &[]string{"Golang", "React"},
	})
	require.NoError(t, err)

	t.Run("query shorter than two characters returns nothing", func(t *testing.T) {
		results, err := d.SearchForInvitation("a", "alice@x.com")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("requester is excluded", func(t *testing.T) {
		results, err := d.SearchForInvitation("x.com", "alice@x.com")
		require.NoError(t, err)

		for _, user := range results {
			assert.NotEqual(t, "alice@x.com", user.Email)
		}
		assert.Len(t, results, 2)
	})

	t.Run("matches are case-insensitive across skills", func(t *testing.T) {
		results, err := d.SearchForInvitation("golang", "alice@x.com")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "carol@x.com", results[0].Email)
	})

	t.Run("inactive users are excluded", func(t *testing.T) {
		inactive := false
		_, err := d.UpdateProfile("bob@x.com", ProfileUpdate{IsActive: &inactive})
		require.NoError(t, err)

		results, err := d.SearchForInvitation("bob", "alice@x.com")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearchForInvitationCapsResults(t *testing.T) {
	d := newTestDirectory(t)

	for i := 0; i < 12; i++ {
		mustRegister(t, d, fmt.Sprintf("dev%02d", i), fmt.Sprintf("dev%02d@x.com", i))
	}

	results, err := d.SearchForInvitation("dev", "someone-else@x.com")
	require.NoError(t, err)
	assert.Len(t, results, 10)

	// Directory order, no ranking.
	assert.Equal(t, "dev00@x.com", results[0].Email)
	assert.Equal(t, "dev09@x.com", results[9].Email)
}

func TestSetOnlineStatus(t *testing.T) {
	d := newTestDirectory(t)
	mustRegister(t, d, "alice", "alice@x.com")

	require.NoError(t, d.SetOnlineStatus("alice@x.com", false))

	user, err := d.FindByEmail("alice@x.com")
	require.NoError(t, err)
	assert.False(t, user.IsOnline)

	// Unknown emails are a no-op, not an error.
	require.NoError(t, d.SetOnlineStatus("nobody@x.com", true))
}

func TestUpdateProfile(t *testing.T) {
	d := newTestDirectory(t)
	registered := mustRegister(t, d, "alice", "alice@x.com")

	name := "Alice Cooper"
	bio := "Platform team"
	role := "Staff Engineer"

	updated, err := d.UpdateProfile("alice@x.com", ProfileUpdate{
		Name: &name,
		Bio:  &bio,
		Role: &role,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "Platform team", updated.Bio)
	assert.Equal(t, "Staff Engineer", updated.Role)

	// Immutable fields survive untouched.
	assert.Equal(t, registered.ID, updated.ID)
	assert.Equal(t, registered.Email, updated.Email)
	assert.Equal(t, registered.JoinDate.Unix(), updated.JoinDate.Unix())

	_, err = d.UpdateProfile("nobody@x.com", ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestStats(t *testing.T) {
	d := newTestDirectory(t)

	mustRegister(t, d, "alice", "alice@x.com")
	mustRegister(t, d, "bob", "bob@x.com")

	inactive := false
	_, err := d.UpdateProfile("bob@x.com", ProfileUpdate{IsActive: &inactive})
	require.NoError(t, err)

	stats, err := d.Stats()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.OnlineUsers)
	assert.Equal(t, 2, stats.NewUsersToday)
}
