package services

import (
	"strings"
	"time"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
)

const searchResultLimit = 10

// Directory is the authoritative registry of accounts: the only source of
// truth for whether an email corresponds to a real, searchable user.
type Directory struct {
	store store.Store
}

func NewDirectory(s store.Store) *Directory {
	return &Directory{store: s}
}

// NormalizeEmail lowercases and trims an email before it is used as a lookup
// key. Applied at every boundary so uniqueness checks cannot be dodged by
// case differences.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Fails with a conflict if the email is
// already taken.
func (d *Directory) Register(name, email, password string) (models.UserRecord, error) {
	email = NormalizeEmail(email)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return models.UserRecord{}, err
	}

	now := time.Now()

	user := models.UserRecord{
		ID:           xid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(passwordHash),
		Avatar:       avatarInitial(name),
		Role:         "Developer",
		Skills:       []string{},
		IsActive:     true,
		IsOnline:     true,
		JoinDate:     now,
		LastSeen:     now,
	}

	err = d.store.Mutate(func(snapshot *models.Snapshot) error {
		if snapshot.FindUserByEmail(email) != nil {
			return apperror.DuplicateEmail(email)
		}

		snapshot.Users = append(snapshot.Users, user)
		return nil
	})

	if err != nil {
		return models.UserRecord{}, err
	}

	return user, nil
}

// Authenticate checks credentials and returns the matching account. The same
// failure is reported for an unknown email and a wrong password.
func (d *Directory) Authenticate(email, password string) (models.UserRecord, error) {
	email = NormalizeEmail(email)

	snapshot, err := d.store.Load()

	if err != nil {
		return models.UserRecord{}, err
	}

	user := snapshot.FindUserByEmail(email)

	if user == nil {
		return models.UserRecord{}, apperror.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.UserRecord{}, apperror.InvalidCredentials()
	}

	return *user, nil
}

func (d *Directory) FindByEmail(email string) (models.UserRecord, error) {
	snapshot, err := d.store.Load()

	if err != nil {
		return models.UserRecord{}, err
	}

	user := snapshot.FindUserByEmail(NormalizeEmail(email))

	if user == nil {
		return models.UserRecord{}, apperror.NotFound("user")
	}

	return *user, nil
}

func (d *Directory) FindByID(id string) (models.UserRecord, error) {
	snapshot, err := d.store.Load()

	if err != nil {
		return models.UserRecord{}, err
	}

	user := snapshot.FindUserByID(id)

	if user == nil {
		return models.UserRecord{}, apperror.NotFound("user")
	}

	return *user, nil
}

// SearchForInvitation returns active users matching query by name, email,
// role or skill, excluding the requester. Results are capped at 10 in
// directory order; queries shorter than two characters return nothing.
func (d *Directory) SearchForInvitation(query, excludeEmail string) ([]models.UserRecord, error) {
	query = strings.TrimSpace(query)

	if len(query) < 2 {
		return []models.UserRecord{}, nil
	}

	snapshot, err := d.store.Load()

	if err != nil {
		return nil, err
	}

	excludeEmail = NormalizeEmail(excludeEmail)
	term := strings.ToLower(query)

	results := []models.UserRecord{}

	for _, user := range snapshot.Users {
		if !user.IsActive || user.Email == excludeEmail {
			continue
		}

		if matchesSearchTerm(user, term) {
			results = append(results, user)
		}

		if len(results) == searchResultLimit {
			break
		}
	}

	return results, nil
}

// SetOnlineStatus flips the online flag and refreshes last-seen. Unknown
// emails are a no-op: nothing is committed and no change is broadcast.
func (d *Directory) SetOnlineStatus(email string, online bool) error {
	email = NormalizeEmail(email)

	snapshot, err := d.store.Load()

	if err != nil {
		return err
	}

	if snapshot.FindUserByEmail(email) == nil {
		return nil
	}

	return d.store.Mutate(func(snapshot *models.Snapshot) error {
		user := snapshot.FindUserByEmail(email)

		if user == nil {
			return nil
		}

		user.IsOnline = online
		user.LastSeen = time.Now()
		return nil
	})
}

// ProfileUpdate carries the mutable profile fields. Nil pointers are left
// untouched; id, email and join date are immutable.
type ProfileUpdate struct {
	Name     *string
	Bio      *string
	Role     *string
	Skills   *[]string
	IsActive *bool
}

func (d *Directory) UpdateProfile(email string, update ProfileUpdate) (models.UserRecord, error) {
	email = NormalizeEmail(email)

	var updated models.UserRecord

	err := d.store.Mutate(func(snapshot *models.Snapshot) error {
		user := snapshot.FindUserByEmail(email)

		if user == nil {
			return apperror.NotFound("user")
		}

		if update.Name != nil {
			user.Name = strings.TrimSpace(*update.Name)
			user.Avatar = avatarInitial(user.Name)
		}

		if update.Bio != nil {
			user.Bio = *update.Bio
		}

		if update.Role != nil {
			user.Role = *update.Role
		}

		if update.Skills != nil {
			user.Skills = *update.Skills
		}

		if update.IsActive != nil {
			user.IsActive = *update.IsActive
		}

		updated = *user
		return nil
	})

	if err != nil {
		return models.UserRecord{}, err
	}

	return updated, nil
}

// UserStats is the aggregate view exposed to the admin panel.
type UserStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	OnlineUsers   int `json:"online_users"`
	NewUsersToday int `json:"new_users_today"`
}

func (d *Directory) Stats() (UserStats, error) {
	snapshot, err := d.store.Load()

	if err != nil {
		return UserStats{}, err
	}

	midnight := time.Now().Truncate(24 * time.Hour)

	var stats UserStats
	stats.TotalUsers = len(snapshot.Users)

	for _, user := range snapshot.Users {
		if user.IsActive {
			stats.ActiveUsers++

			if user.IsOnline {
				stats.OnlineUsers++
			}
		}

		if !user.JoinDate.Before(midnight) {
			stats.NewUsersToday++
		}
	}

	return stats, nil
}

func avatarInitial(name string) string {
	name = strings.TrimSpace(name)

	if name == "" {
		return "?"
	}

	return strings.ToUpper(string([]rune(name)[0]))
}

func matchesSearchTerm(user models.UserRecord, term string) bool {
	if strings.Contains(strings.ToLower(user.Name), term) ||
		strings.Contains(strings.ToLower(user.Email), term) ||
		strings.Contains(strings.ToLower(user.Role), term) {
		return true
	}

	for _, skill := range user.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}

	return false
}
