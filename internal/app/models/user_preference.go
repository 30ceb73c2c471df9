package models

import "time"

// UserPreference stores per-user login auto-fill preferences. This is the
// server-side counterpart of the original's browser local storage: a
// convenience store for "remember me" form values, not an auth mechanism.
type UserPreference struct {
	ID               int64     `json:"id" db:"id"`
	UserKey          string    `json:"userKey" db:"user_key"`
	LoginPreferences []byte    `json:"loginPreferences" db:"login_preferences"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
