package domain

import "time"

// DefaultTTL is how long an admin check stays valid
const DefaultTTL = 5 * time.Minute

// Entry is a cached answer to "is user an admin of chat"
type Entry struct {
	UserID    int64     `json:"user_id"`
	ChatID    int64     `json:"chat_id"`
	IsAdmin   bool      `json:"is_admin"`
	CachedAt  time.Time `json:"cached_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the entry may still be served at now
func (e Entry) Valid(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}
