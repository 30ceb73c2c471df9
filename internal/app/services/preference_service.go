package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mathspoint/mathspoint/internal/app/repositories"
)

// PreferenceService defines the interface for login auto-fill preference
// operations. The payload is opaque JSON the server stores verbatim.
type PreferenceService interface {
	Save(ctx context.Context, userKey string, prefs json.RawMessage) error
	Get(ctx context.Context, userKey string) (json.RawMessage, error)
	Clear(ctx context.Context, userKey string) error
}

// preferenceServiceImpl implements PreferenceService
type preferenceServiceImpl struct {
	preferenceRepo *repositories.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(preferenceRepo *repositories.PreferenceRepository) PreferenceService {
	return &preferenceServiceImpl{preferenceRepo: preferenceRepo}
}

// Save stores the remembered form values for a user key
func (s *preferenceServiceImpl) Save(ctx context.Context, userKey string, prefs json.RawMessage) error {
	if !json.Valid(prefs) {
		return fmt.Errorf("preferences payload is not valid JSON")
	}
	return s.preferenceRepo.Upsert(ctx, userKey, prefs)
}

// Get returns the stored payload, or null when nothing is remembered
func (s *preferenceServiceImpl) Get(ctx context.Context, userKey string) (json.RawMessage, error) {
	pref, err := s.preferenceRepo.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if pref == nil || len(pref.LoginPreferences) == 0 {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(pref.LoginPreferences), nil
}

// Clear forgets the remembered values for a user key
func (s *preferenceServiceImpl) Clear(ctx context.Context, userKey string) error {
	return s.preferenceRepo.Clear(ctx, userKey)
}
