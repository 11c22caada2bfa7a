package model

import "time"

// Roles an account may hold. Role is validated against this closed set at
// registration time but stored as a plain string, so values outside the set
// can exist in the database (e.g. inserted by hand). Code that branches on
// role must treat an unknown value as "no permissions", never as an error.
const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
	RoleUser      = "user"
)

// ValidRole reports whether r is one of the recognized account roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleRecruiter || r == RoleUser
}

// Account represents a registered identity as stored in the `accounts`
// table. The password hash never leaves the server.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address, matched case-sensitively.
//  PasswordHash – bcrypt hash of the account secret.
//  Role         – account role (admin, recruiter or user).
//  CreatedAt    – timestamp of registration.
type Account struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
