package storage

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

// FileStorage keeps the full data set in memory and persists it as JSON
// files under a data directory. Writes are debounced through background save
// workers so a burst of mood logs costs one disk write.
type FileStorage struct {
	moods          map[string]*internal.MoodEntry // id -> entry
	moodIndex      []*internal.MoodEntry          // newest first
	users          map[string]*internal.User      // email -> user
	mu             sync.RWMutex
	moodsFile      string
	usersFile      string
	saveMoodsChan  chan struct{}
	saveUsersChan  chan struct{}
	shutdownChan   chan struct{}
	saveMoodsDelay time.Duration
	saveUsersDelay time.Duration
	logger         internal.Logger
}

func NewFileStorage(dataDir string, logger internal.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	s := &FileStorage{
		moods:          make(map[string]*internal.MoodEntry),
		users:          make(map[string]*internal.User),
		moodsFile:      filepath.Join(dataDir, "moods.json"),
		usersFile:      filepath.Join(dataDir, "users.json"),
		saveMoodsChan:  make(chan struct{}, 1),
		saveUsersChan:  make(chan struct{}, 1),
		shutdownChan:   make(chan struct{}),
		saveMoodsDelay: 500 * time.Millisecond,
		saveUsersDelay: 500 * time.Millisecond,
		logger:         logger,
	}

	if err := s.loadMoods(); err != nil {
		logger.Errorf("storage: failed to load moods: %v", err)
		return nil, err
	}
	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}

	go s.saveMoodsWorker()
	go s.saveUsersWorker()

	return s, nil
}

// entryAfter orders entries newest-first by their ISO-8601 date. Unparseable
// dates fall back to a lexical compare, which matches RFC 3339 ordering.
func entryAfter(a, b *internal.MoodEntry) bool {
	ta, errA := time.Parse(time.RFC3339, a.Date)
	tb, errB := time.Parse(time.RFC3339, b.Date)
	if errA != nil || errB != nil {
		return a.Date > b.Date
	}
	return ta.After(tb)
}

func (s *FileStorage) loadMoods() error {
	file, err := os.Open(s.moodsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var entries []*internal.MoodEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.moods[e.ID] = e
		s.moodIndex = append(s.moodIndex, e)
	}
	sortEntriesDesc(s.moodIndex)
	return nil
}

func sortEntriesDesc(entries []*internal.MoodEntry) {
	// Insertion sort; data sets here are small and usually already ordered.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entryAfter(entries[j], entries[j-1]); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

func (s *FileStorage) loadUsers() error {
	file, err := os.Open(s.usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.Email] = u
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveMoods() error {
	s.mu.RLock()
	entries := make([]*internal.MoodEntry, len(s.moodIndex))
	copy(entries, s.moodIndex)
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.moodsFile, entries)
}

func (s *FileStorage) saveUsers() error {
	s.mu.RLock()
	users := make([]*internal.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.usersFile, users)
}

func (s *FileStorage) saveMoodsWorker() {
	timer := time.NewTimer(s.saveMoodsDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveMoodsChan:
			timer.Reset(s.saveMoodsDelay)
		case <-timer.C:
			if err := s.saveMoods(); err != nil {
				s.logger.Errorf("storage: error saving moods: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) saveUsersWorker() {
	timer := time.NewTimer(s.saveUsersDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveUsersChan:
			timer.Reset(s.saveUsersDelay)
		case <-timer.C:
			if err := s.saveUsers(); err != nil {
				s.logger.Errorf("storage: error saving users: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// --- MoodRepository ---

func (s *FileStorage) SaveMood(ctx context.Context, entry *internal.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.moods[entry.ID] = entry

	// Insert maintaining newest-first order.
	inserted := false
	for i, existing := range s.moodIndex {
		if entryAfter(entry, existing) {
			s.moodIndex = append(s.moodIndex[:i], append([]*internal.MoodEntry{entry}, s.moodIndex[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		s.moodIndex = append(s.moodIndex, entry)
	}

	select {
	case s.saveMoodsChan <- struct{}{}:
	default:
	}

	return nil
}

func (s *FileStorage) ListMoods(ctx context.Context) ([]internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]internal.MoodEntry, len(s.moodIndex))
	for i, e := range s.moodIndex {
		entries[i] = *e
	}
	return entries, nil
}

// --- UserRepository ---

func (s *FileStorage) LoginUser(ctx context.Context, name, email string) (*internal.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[email]; ok {
		copied := *u
		return &copied, nil
	}

	u := &internal.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Bio:   internal.DefaultBio,
	}
	s.users[email] = u

	select {
	case s.saveUsersChan <- struct{}{}:
	default:
	}

	copied := *u
	return &copied, nil
}

func (s *FileStorage) UpdateUser(ctx context.Context, user *internal.User) (*internal.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.Email]
	if !ok {
		return nil, &internal.NotFoundError{Kind: "user", Key: user.Email}
	}
	existing.Name = user.Name
	existing.Bio = user.Bio
	existing.Avatar = user.Avatar

	select {
	case s.saveUsersChan <- struct{}{}:
	default:
	}

	copied := *existing
	return &copied, nil
}

func (s *FileStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, &internal.NotFoundError{Kind: "user", Key: email}
	}
	copied := *u
	return &copied, nil
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveMoods(); err != nil {
		return err
	}
	return s.saveUsers()
}

var _ MoodRepository = (*FileStorage)(nil)
var _ UserRepository = (*FileStorage)(nil)
