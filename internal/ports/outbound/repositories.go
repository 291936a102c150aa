// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/wellplate/v1/internal/domain/profile"
)

// ProfileRepository defines the interface for profile persistence.
// The profile is stored and replaced as a single blob per user.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*profile.Profile, error)
	Save(ctx context.Context, p *profile.Profile) error
}

// CompletionKind selects the system persona for an AI completion.
type CompletionKind string

const (
	CompletionDietPlan CompletionKind = "diet_plan"
	CompletionMealPlan CompletionKind = "meal_plan"
)

// AIService defines the interface for the chat-completion provider.
// The caller sends one prompt and receives the raw completion text;
// all validation of the response body happens on the caller's side.
type AIService interface {
	Complete(ctx context.Context, kind CompletionKind, prompt string) (string, error)
}
