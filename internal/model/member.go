package model

import "time"

// Member is a gym membership record. The job board never writes members;
// they are maintained by a separate system and exposed read-only to admins.
type Member struct {
	ID             uint64    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	MembershipType string    `json:"membership_type"`
	JoinedAt       time.Time `json:"joined_at"`
}
