package models

import "time"

// TeamRecord is a named group of users. Membership is keyed by email, and the
// owner is always a member.
type TeamRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerEmail  string    `json:"owner_email"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}

// HasMember reports whether email is in the member list.
func (t *TeamRecord) HasMember(email string) bool {
	for _, m := range t.Members {
		if m == email {
			return true
		}
	}
	return false
}
