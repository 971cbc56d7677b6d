package storage

import (
	"context"

	"github.com/mindease/mindease/internal"
)

type MoodRepository interface {
	// SaveMood persists one entry. The caller assigns the ID.
	SaveMood(ctx context.Context, entry *internal.MoodEntry) error
	// ListMoods returns all entries, newest first.
	ListMoods(ctx context.Context) ([]internal.MoodEntry, error)
}

type UserRepository interface {
	// LoginUser is the atomic get-or-create keyed by email. Two concurrent
	// calls with the same email must resolve to one record.
	LoginUser(ctx context.Context, name, email string) (*internal.User, error)
	// UpdateUser full-replaces name/bio/avatar keyed by email. Returns
	// NotFoundError when no such user exists.
	UpdateUser(ctx context.Context, user *internal.User) (*internal.User, error)
	GetUserByEmail(ctx context.Context, email string) (*internal.User, error)
}

// Closer is implemented by backends that flush state on shutdown.
type Closer interface {
	Close() error
}
