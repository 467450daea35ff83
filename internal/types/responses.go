package types

import "time"

type UserResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar"`
	Role     string    `json:"role"`
	Bio      string    `json:"bio"`
	Skills   []string  `json:"skills"`
	IsOnline bool      `json:"is_online"`
	JoinDate time.Time `json:"join_date"`
}

// SearchResult is the privacy-reduced view returned by user search: enough to
// pick an invitee, nothing more.
type SearchResult struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Avatar string   `json:"avatar"`
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
}
