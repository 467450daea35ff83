package services

import (
	"strings"
	"time"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/rs/xid"
)

// Registry owns team existence, name uniqueness, the membership set and
// ownership authority.
type Registry struct {
	store store.Store
}

func NewRegistry(s store.Store) *Registry {
	return &Registry{store: s}
}

// Create makes a new team with the owner as sole initial member. The name
// must be unique across all teams, active or not.
func (r *Registry) Create(name, description, ownerEmail string) (models.TeamRecord, error) {
	name = strings.TrimSpace(name)
	ownerEmail = NormalizeEmail(ownerEmail)

	team := models.TeamRecord{
		ID:          xid.New().String(),
		Name:        name,
		Description: description,
		OwnerEmail:  ownerEmail,
		Members:     []string{ownerEmail},
		CreatedAt:   time.Now(),
		IsActive:    true,
	}

	err := r.store.Mutate(func(snapshot *models.Snapshot) error {
		for _, existing := range snapshot.Teams {
			if existing.Name == name {
				return apperror.NameTaken(name)
			}
		}

		snapshot.Teams = append(snapshot.Teams, team)
		return nil
	})

	if err != nil {
		return models.TeamRecord{}, err
	}

	return team, nil
}

func (r *Registry) FindByID(id string) (models.TeamRecord, error) {
	snapshot, err := r.store.Load()

	if err != nil {
		return models.TeamRecord{}, err
	}

	team := snapshot.FindTeam(id)

	if team == nil {
		return models.TeamRecord{}, apperror.NotFound("team")
	}

	return *team, nil
}

// ListForUser returns every team the email is a member of, in creation order.
func (r *Registry) ListForUser(email string) ([]models.TeamRecord, error) {
	snapshot, err := r.store.Load()

	if err != nil {
		return nil, err
	}

	email = NormalizeEmail(email)
	teams := []models.TeamRecord{}

	for _, team := range snapshot.Teams {
		if team.HasMember(email) {
			teams = append(teams, team)
		}
	}

	return teams, nil
}

// AddMember appends email to the team's member set. Adding an existing member
// is a no-op.
func (r *Registry) AddMember(teamID, email string) error {
	email = NormalizeEmail(email)

	return r.store.Mutate(func(snapshot *models.Snapshot) error {
		team := snapshot.FindTeam(teamID)

		if team == nil {
			return apperror.NotFound("team")
		}

		addTeamMember(team, email)
		return nil
	})
}

// RemoveMember removes targetEmail from the team. Only the owner may remove
// members, and the owner can never be removed.
func (r *Registry) RemoveMember(teamID, targetEmail, requesterEmail string) error {
	targetEmail = NormalizeEmail(targetEmail)
	requesterEmail = NormalizeEmail(requesterEmail)

	return r.store.Mutate(func(snapshot *models.Snapshot) error {
		team := snapshot.FindTeam(teamID)

		if team == nil {
			return apperror.NotFound("team")
		}

		if team.OwnerEmail != requesterEmail {
			return apperror.NotOwner()
		}

		if targetEmail == team.OwnerEmail {
			return apperror.CannotRemoveOwner()
		}

		members := make([]string, 0, len(team.Members))

		for _, member := range team.Members {
			if member != targetEmail {
				members = append(members, member)
			}
		}

		team.Members = members
		return nil
	})
}

// Delete removes the team and cascades deletion of its invitations and chat
// transcript. Only the owner may delete.
func (r *Registry) Delete(teamID, requesterEmail string) error {
	requesterEmail = NormalizeEmail(requesterEmail)

	return r.store.Mutate(func(snapshot *models.Snapshot) error {
		team := snapshot.FindTeam(teamID)

		if team == nil {
			return apperror.NotFound("team")
		}

		if team.OwnerEmail != requesterEmail {
			return apperror.NotOwner()
		}

		teams := make([]models.TeamRecord, 0, len(snapshot.Teams))

		for _, t := range snapshot.Teams {
			if t.ID != teamID {
				teams = append(teams, t)
			}
		}

		snapshot.Teams = teams

		invitations := make([]models.InvitationRecord, 0, len(snapshot.Invitations))

		for _, inv := range snapshot.Invitations {
			if inv.TeamID != teamID {
				invitations = append(invitations, inv)
			}
		}

		snapshot.Invitations = invitations

		messages := make([]models.ChatMessage, 0, len(snapshot.Messages))

		for _, msg := range snapshot.Messages {
			if msg.TeamID != teamID {
				messages = append(messages, msg)
			}
		}

		snapshot.Messages = messages
		return nil
	})
}

func addTeamMember(team *models.TeamRecord, email string) {
	if !team.HasMember(email) {
		team.Members = append(team.Members, email)
	}
}
