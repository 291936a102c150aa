// Package memory implements the profile repository in process memory,
// for development and tests.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/ports/outbound"
	apperrors "github.com/wellplate/v1/pkg/errors"
)

// ProfileRepository keeps profiles in a map. Values are stored and
// returned as copies so callers never share mutable state with the
// repository.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string][]byte
}

var _ outbound.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates an empty in-memory repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string][]byte)}
}

// FindByID returns a copy of the stored profile.
func (r *ProfileRepository) FindByID(_ context.Context, id string) (*profile.Profile, error) {
	r.mu.RLock()
	raw, ok := r.profiles[id]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewProfileNotFoundError(id)
	}
	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save stores a copy of the profile, replacing any previous version.
func (r *ProfileRepository) Save(_ context.Context, p *profile.Profile) error {
	if p.ID == "" {
		return apperrors.NewValidationError("profile id is required")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.profiles[p.ID] = raw
	r.mu.Unlock()
	return nil
}
