package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mindease/mindease/internal"
)

// Fixed keys the on-device store persists under, one file per collection.
const (
	localMoodsKey = "mindease_moods.json"
	localUsersKey = "mindease_user.json"
)

// LocalGateway persists the journal on the device itself, no server
// involved. Every write is a read-modify-write of the full collection, and
// each call sleeps for a short artificial latency so the calling code
// behaves the same against either gateway.
type LocalGateway struct {
	dir     string
	latency time.Duration
	mu      sync.Mutex
	logger  internal.Logger
}

func NewLocalGateway(dir string, logger internal.Logger) (*LocalGateway, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &LocalGateway{dir: dir, latency: 150 * time.Millisecond, logger: logger}, nil
}

// SetLatency overrides the emulated network delay. Zero disables it.
func (g *LocalGateway) SetLatency(d time.Duration) { g.latency = d }

// delay emulates network behavior; it respects cancellation so a closed
// screen never completes a stale call.
func (g *LocalGateway) delay(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (g *LocalGateway) readMoods() ([]internal.MoodEntry, error) {
	entries := []internal.MoodEntry{}
	if err := g.readJSON(localMoodsKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (g *LocalGateway) readUsers() ([]internal.User, error) {
	users := []internal.User{}
	if err := g.readJSON(localUsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *LocalGateway) readJSON(key string, out interface{}) error {
	f, err := os.Open(filepath.Join(g.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &internal.TransportError{Err: err}
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &internal.TransportError{Err: err}
	}
	return nil
}

func (g *LocalGateway) writeJSON(key string, data interface{}) error {
	path := filepath.Join(g.dir, key)
	tempFile := path + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return &internal.TransportError{Err: err}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return &internal.TransportError{Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return &internal.TransportError{Err: err}
	}
	if err := os.Rename(tempFile, path); err != nil {
		return &internal.TransportError{Err: err}
	}
	return nil
}

func (g *LocalGateway) FetchMoods(ctx context.Context) ([]internal.MoodEntry, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.readMoods()
}

func (g *LocalGateway) CreateMood(ctx context.Context, draft internal.MoodEntry) (*internal.MoodEntry, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	entries, err := g.readMoods()
	if err != nil {
		return nil, err
	}
	draft.ID = uuid.NewString()
	if draft.Tags == nil {
		draft.Tags = []string{}
	}
	entries = append([]internal.MoodEntry{draft}, entries...)
	if err := g.writeJSON(localMoodsKey, entries); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (g *LocalGateway) Login(ctx context.Context, name, email string) (*internal.User, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	users, err := g.readUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	u := internal.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Bio:   internal.DefaultBio,
	}
	users = append(users, u)
	if err := g.writeJSON(localUsersKey, users); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *LocalGateway) UpdateUser(ctx context.Context, user internal.User) (*internal.User, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	users, err := g.readUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == user.Email {
			users[i].Name = user.Name
			users[i].Bio = user.Bio
			users[i].Avatar = user.Avatar
			if err := g.writeJSON(localUsersKey, users); err != nil {
				return nil, err
			}
			u := users[i]
			return &u, nil
		}
	}
	return nil, &internal.NotFoundError{Kind: "user", Key: user.Email}
}

var _ Gateway = (*LocalGateway)(nil)
