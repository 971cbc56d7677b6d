// Package session holds the single authoritative in-memory copy of what the
// signed-in user currently sees. All mutation goes through the enumerated
// operations below; reads get copies, so consumers never observe a list
// mid-update.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/gateway"
)

type Store struct {
	mu      sync.RWMutex
	user    *internal.User
	moods   []internal.MoodEntry // newest first
	page    internal.Page
	loading bool
	lastErr error

	gw          gateway.Gateway
	emailDomain string
	logger      internal.Logger
}

func NewStore(gw gateway.Gateway, emailDomain string, logger internal.Logger) *Store {
	return &Store{
		gw:          gw,
		emailDomain: emailDomain,
		page:        internal.PageLanding,
		logger:      logger,
	}
}

// DeriveEmail maps a display name to its placeholder login email: lowercase,
// whitespace runs collapsed to dots, fixed domain suffix. No password is
// collected, so the name is the whole identity.
func DeriveEmail(name, domain string) string {
	local := strings.ToLower(strings.TrimSpace(name))
	local = strings.Join(strings.Fields(local), ".")
	return local + "@" + domain
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Login resolves the user, fetches their journal, and lands on the
// dashboard. The fetch never starts before the login completes; on any
// failure no partial session state is set.
func (s *Store) Login(ctx context.Context, name string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	email := DeriveEmail(name, s.emailDomain)
	user, err := s.gw.Login(ctx, name, email)
	if err != nil {
		s.fail("login", err)
		return err
	}

	moods, err := s.gw.FetchMoods(ctx)
	if err != nil {
		s.fail("login fetch", err)
		return err
	}

	s.mu.Lock()
	s.user = user
	s.moods = moods
	s.page = internal.PageDashboard
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// RefreshMoods replaces the whole in-memory list.
func (s *Store) RefreshMoods(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	moods, err := s.gw.FetchMoods(ctx)
	if err != nil {
		s.fail("refresh moods", err)
		return err
	}

	s.mu.Lock()
	s.moods = moods
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// AddMood persists the draft and prepends the stored record. The list is
// never refetched for this; on failure it is left untouched and the entry is
// not retried.
func (s *Store) AddMood(ctx context.Context, draft internal.MoodEntry) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if draft.UserEmail == "" {
		if u := s.User(); u != nil {
			draft.UserEmail = u.Email
		}
	}

	created, err := s.gw.CreateMood(ctx, draft)
	if err != nil {
		s.fail("add mood", err)
		return err
	}

	s.mu.Lock()
	s.moods = append([]internal.MoodEntry{*created}, s.moods...)
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// UpdateUser replaces the current user only when the gateway succeeds.
func (s *Store) UpdateUser(ctx context.Context, user internal.User) error {
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.gw.UpdateUser(ctx, user)
	if err != nil {
		s.fail("update user", err)
		return err
	}

	s.mu.Lock()
	s.user = updated
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// Navigate is a pure state transition; it always succeeds.
func (s *Store) Navigate(page internal.Page) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// Logout clears the user and loaded data, returning to the landing screen.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.moods = nil
	s.page = internal.PageLanding
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *Store) fail(op string, err error) {
	s.logger.Errorf("session: %s: %v", op, err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// --- Read side ---

func (s *Store) User() *internal.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Moods() []internal.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.MoodEntry, len(s.moods))
	copy(out, s.moods)
	return out
}

func (s *Store) Page() internal.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError is the user-visible failure signal of the most recent operation;
// nil after any success.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
