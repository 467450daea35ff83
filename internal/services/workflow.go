package services

import (
	"time"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/rs/xid"
)

// Workflow runs the invitation state machine: pending on send, then exactly
// one transition to accepted or declined by the invitee. Accepting adds the
// invitee to the team.
type Workflow struct {
	store store.Store
}

func NewWorkflow(s store.Store) *Workflow {
	return &Workflow{store: s}
}

// Send creates a pending invitation. The inviter must be a member of the
// team, the invitee must resolve to an active account that is not already a
// member, and at most one pending invitation may exist per (team, invitee)
// pair.
func (w *Workflow) Send(teamID, inviterEmail, inviterName, inviteeEmail, message string) (models.InvitationRecord, error) {
	inviterEmail = NormalizeEmail(inviterEmail)
	inviteeEmail = NormalizeEmail(inviteeEmail)

	var invitation models.InvitationRecord

	err := w.store.Mutate(func(snapshot *models.Snapshot) error {
		team := snapshot.FindTeam(teamID)

		if team == nil {
			return apperror.NotFound("team")
		}

		if !team.HasMember(inviterEmail) {
			return apperror.NotAMember()
		}

		invitee := snapshot.FindUserByEmail(inviteeEmail)

		if invitee == nil || !invitee.IsActive {
			return apperror.NotFound("user")
		}

		if team.HasMember(inviteeEmail) {
			return apperror.AlreadyMember(inviteeEmail)
		}

		for _, existing := range snapshot.Invitations {
			if existing.TeamID == teamID && existing.InviteeEmail == inviteeEmail && existing.IsPending() {
				return apperror.DuplicatePending(inviteeEmail)
			}
		}

		invitation = models.InvitationRecord{
			ID:           xid.New().String(),
			TeamID:       team.ID,
			TeamName:     team.Name,
			InviterEmail: inviterEmail,
			InviterName:  inviterName,
			InviteeEmail: inviteeEmail,
			Status:       models.InvitationStatusPending,
			Message:      message,
			CreatedAt:    time.Now(),
		}

		snapshot.Invitations = append(snapshot.Invitations, invitation)
		return nil
	})

	if err != nil {
		return models.InvitationRecord{}, err
	}

	return invitation, nil
}

// Respond applies the invitee's decision. Only the addressed invitee may
// respond, and only while the invitation is pending. Accepting adds the
// invitee to the team; a no-op if membership already happened another way.
func (w *Workflow) Respond(invitationID, responderEmail string, decision models.InvitationStatus) error {
	if decision != models.InvitationStatusAccepted && decision != models.InvitationStatusDeclined {
		return &apperror.AppError{
			Err:     apperror.ErrValidation,
			Message: "decision must be accepted or declined",
		}
	}

	responderEmail = NormalizeEmail(responderEmail)

	return w.store.Mutate(func(snapshot *models.Snapshot) error {
		invitation := snapshot.FindInvitation(invitationID)

		if invitation == nil {
			return apperror.NotFound("invitation")
		}

		if invitation.InviteeEmail != responderEmail {
			return apperror.NotRecipient()
		}

		if !invitation.IsPending() {
			return apperror.AlreadyResolved()
		}

		now := time.Now()
		invitation.Status = decision
		invitation.RespondedAt = &now

		if decision == models.InvitationStatusAccepted {
			if team := snapshot.FindTeam(invitation.TeamID); team != nil {
				addTeamMember(team, responderEmail)
			}
		}

		return nil
	})
}

// ListForInvitee returns every invitation addressed to email, any status,
// in insertion order.
func (w *Workflow) ListForInvitee(email string) ([]models.InvitationRecord, error) {
	snapshot, err := w.store.Load()

	if err != nil {
		return nil, err
	}

	email = NormalizeEmail(email)
	invitations := []models.InvitationRecord{}

	for _, inv := range snapshot.Invitations {
		if inv.InviteeEmail == email {
			invitations = append(invitations, inv)
		}
	}

	return invitations, nil
}

// ListSentBy returns every invitation the email has sent.
func (w *Workflow) ListSentBy(email string) ([]models.InvitationRecord, error) {
	snapshot, err := w.store.Load()

	if err != nil {
		return nil, err
	}

	email = NormalizeEmail(email)
	invitations := []models.InvitationRecord{}

	for _, inv := range snapshot.Invitations {
		if inv.InviterEmail == email {
			invitations = append(invitations, inv)
		}
	}

	return invitations, nil
}

// ListAll returns every invitation. Admin and debugging use only.
func (w *Workflow) ListAll() ([]models.InvitationRecord, error) {
	snapshot, err := w.store.Load()

	if err != nil {
		return nil, err
	}

	return snapshot.Invitations, nil
}
