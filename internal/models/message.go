package models

import "time"

// ChatMessage is one entry in a team's chat transcript.
type ChatMessage struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"team_id"`
	SenderEmail string    `json:"sender_email"`
	SenderName  string    `json:"sender_name"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}
