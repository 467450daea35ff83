package models

import "time"

// UserRecord is a registered account. Records are never hard-deleted in the
// primary flow; deactivated users keep their row but drop out of search and
// invitation targeting.
type UserRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	IsActive     bool      `json:"is_active"`
	IsOnline     bool      `json:"is_online"`
	JoinDate     time.Time `json:"join_date"`
	LastSeen     time.Time `json:"last_seen"`
}
