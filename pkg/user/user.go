// Package user holds the domain model for accounts owned by the external
// authentication system. The API server reads these rows; it never creates
// or mutates them outside of test seeding.
package user

import "time"

// User represents an account managed by the external auth collaborator.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Session represents a bearer session issued by the external auth collaborator.
type Session struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
