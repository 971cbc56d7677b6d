// Package gateway is the client-side data access layer: one interface over
// the remote mood API and the on-device store, so the session layer never
// knows which one it is talking to.
package gateway

import (
	"context"

	"github.com/mindease/mindease/internal"
)

// Gateway is stateless between calls; ordering is whatever the caller
// imposes by sequencing.
type Gateway interface {
	// FetchMoods returns all known entries, newest first.
	FetchMoods(ctx context.Context) ([]internal.MoodEntry, error)
	// CreateMood persists a draft (ID ignored) and returns the stored record.
	CreateMood(ctx context.Context, draft internal.MoodEntry) (*internal.MoodEntry, error)
	// Login is the idempotent upsert by email.
	Login(ctx context.Context, name, email string) (*internal.User, error)
	// UpdateUser full-replaces the profile keyed by email.
	UpdateUser(ctx context.Context, user internal.User) (*internal.User, error)
}

func validateDraft(draft *internal.MoodEntry) error {
	if draft.Date == "" {
		return &internal.ValidationError{Field: "date", Reason: "required"}
	}
	if draft.Mood == "" {
		return &internal.ValidationError{Field: "mood", Reason: "required"}
	}
	return nil
}
