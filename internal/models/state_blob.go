package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blob keys for the persisted collections.
const (
	BlobUsers       = "users"
	BlobTeams       = "teams"
	BlobInvitations = "invitations"
	BlobMessages    = "messages"
)

// StateBlob is one persisted collection, stored as a JSON array keyed by
// collection name. The store rewrites all four rows on every commit.
type StateBlob struct {
	gorm.Model

	Key  string         `gorm:"uniqueIndex;not null"`
	Data datatypes.JSON `gorm:"type:jsonb"`
}
