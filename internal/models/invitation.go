package models

import "time"

// InvitationStatus is the lifecycle state of an invitation.
type InvitationStatus string

const (
	// InvitationStatusPending indicates the invitee has not responded yet.
	InvitationStatusPending InvitationStatus = "pending"
	// InvitationStatusAccepted indicates the invitee joined the team.
	InvitationStatusAccepted InvitationStatus = "accepted"
	// InvitationStatusDeclined indicates the invitee turned the invitation down.
	InvitationStatusDeclined InvitationStatus = "declined"
)

// InvitationRecord links a team, an inviter and an invitee email. TeamName and
// InviterName are snapshots taken at send time and are not re-synced if the
// team or inviter is later renamed.
type InvitationRecord struct {
	ID           string           `json:"id"`
	TeamID       string           `json:"team_id"`
	TeamName     string           `json:"team_name"`
	InviterEmail string           `json:"inviter_email"`
	InviterName  string           `json:"inviter_name"`
	InviteeEmail string           `json:"invitee_email"`
	Status       InvitationStatus `json:"status"`
	Message      string           `json:"message"`
	CreatedAt    time.Time        `json:"created_at"`
	RespondedAt  *time.Time       `json:"responded_at,omitempty"`
}

// IsPending reports whether the invitation can still be responded to.
func (i *InvitationRecord) IsPending() bool {
	return i.Status == InvitationStatusPending
}
