package models

import "time"

// SessionDB represents a session record in the database. The token is a
// bearer credential: possession implies authentication as UserID, so it
// must never be logged or exposed outside the owning response.
type SessionDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user, cascade-deleted with it
	Token     string    `json:"-" db:"token"`               // Unique 256-bit hex token
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Valid iff now < ExpiresAt
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	IPAddress *string   `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent *string   `json:"user_agent,omitempty" db:"user_agent"`
}

// SessionState is the per-request view of a live session consumed by the
// request gate: who the session belongs to, whether the owner's email is
// verified, and whether the expiry was just extended (so the cookie must
// be rewritten on the response).
type SessionState struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Verified  bool
	Refreshed bool
}
