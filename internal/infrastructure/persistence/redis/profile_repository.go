// Package redis implements the profile repository on Redis. Each
// profile is stored as a single JSON blob under its own key, read and
// replaced wholesale.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/infrastructure/config"
	"github.com/wellplate/v1/internal/ports/outbound"
	apperrors "github.com/wellplate/v1/pkg/errors"
)

const keyPrefix = "profile:"

// NewClient creates a Redis client from configuration and verifies the
// connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.Database,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

// ProfileRepository persists profiles as JSON blobs.
type ProfileRepository struct {
	client *goredis.Client
	logger *zap.Logger
}

var _ outbound.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a Redis-backed profile repository.
func NewProfileRepository(client *goredis.Client, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{client: client, logger: logger}
}

// FindByID loads and decodes a profile blob.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, apperrors.NewProfileNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get profile %s: %w", id, err)
	}

	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("redis: decode profile %s: %w", id, err)
	}
	return &p, nil
}

// Save replaces the profile blob. No TTL: profiles live until deleted.
func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	if p.ID == "" {
		return apperrors.NewValidationError("profile id is required")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("redis: encode profile %s: %w", p.ID, err)
	}
	if err := r.client.Set(ctx, keyPrefix+p.ID, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: set profile %s: %w", p.ID, err)
	}
	r.logger.Debug("profile saved", zap.String("profile_id", p.ID), zap.Int("bytes", len(raw)))
	return nil
}
