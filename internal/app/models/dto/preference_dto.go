package dto

import "encoding/json"

// SaveLoginPreferencesRequest stores arbitrary login auto-fill values for a
// user key. The payload is opaque to the server.
type SaveLoginPreferencesRequest struct {
	Preferences json.RawMessage `json:"preferences" binding:"required"`
}

// LoginPreferencesResponse returns the stored payload, or null when cleared
// or never set.
type LoginPreferencesResponse struct {
	Preferences json.RawMessage `json:"preferences"`
}
