package services

import (
	"time"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/rs/xid"
)

// Chat holds per-team transcripts. Both reading and posting are gated on team
// membership.
type Chat struct {
	store store.Store
}

func NewChat(s store.Store) *Chat {
	return &Chat{store: s}
}

// List returns the team's transcript in send order.
func (c *Chat) List(teamID, requesterEmail string) ([]models.ChatMessage, error) {
	snapshot, err := c.store.Load()

	if err != nil {
		return nil, err
	}

	team := snapshot.FindTeam(teamID)

	if team == nil {
		return nil, apperror.NotFound("team")
	}

	if !team.HasMember(NormalizeEmail(requesterEmail)) {
		return nil, apperror.NotAMember()
	}

	messages := []models.ChatMessage{}

	for _, msg := range snapshot.Messages {
		if msg.TeamID == teamID {
			messages = append(messages, msg)
		}
	}

	return messages, nil
}

// Post appends a message to the team's transcript.
func (c *Chat) Post(teamID, senderEmail, senderName, text string) (models.ChatMessage, error) {
	senderEmail = NormalizeEmail(senderEmail)

	message := models.ChatMessage{
		ID:          xid.New().String(),
		TeamID:      teamID,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		Text:        text,
		CreatedAt:   time.Now(),
	}

	err := c.store.Mutate(func(snapshot *models.Snapshot) error {
		team := snapshot.FindTeam(teamID)

		if team == nil {
			return apperror.NotFound("team")
		}

		if !team.HasMember(senderEmail) {
			return apperror.NotAMember()
		}

		snapshot.Messages = append(snapshot.Messages, message)
		return nil
	})

	if err != nil {
		return models.ChatMessage{}, err
	}

	return message, nil
}
