package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindease/mindease/internal"
)

func setupFileStorage(t *testing.T) *FileStorage {
	s, err := NewFileStorage(t.TempDir(), internal.NopLogger{})
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndListMoodsNewestFirst(t *testing.T) {
	s := setupFileStorage(t)
	ctx := context.Background()

	// Inserted out of order on purpose.
	dates := []string{"2026-03-05T09:00:00Z", "2026-03-07T09:00:00Z", "2026-03-06T09:00:00Z"}
	for i, d := range dates {
		err := s.SaveMood(ctx, &internal.MoodEntry{
			ID: dates[i], Date: d, Mood: "Happy", Tags: []string{},
		})
		assert.NoError(t, err)
	}

	entries, err := s.ListMoods(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "2026-03-07T09:00:00Z", entries[0].Date)
	assert.Equal(t, "2026-03-06T09:00:00Z", entries[1].Date)
	assert.Equal(t, "2026-03-05T09:00:00Z", entries[2].Date)
}

func TestLoginUserUpsert(t *testing.T) {
	s := setupFileStorage(t)
	ctx := context.Background()

	first, err := s.LoginUser(ctx, "Jane Doe", "jane.doe@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, internal.DefaultBio, first.Bio)

	second, err := s.LoginUser(ctx, "Different Name", "jane.doe@example.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	// The existing record is returned unchanged.
	assert.Equal(t, "Jane Doe", second.Name)
}

func TestUpdateUserUnknownEmail(t *testing.T) {
	s := setupFileStorage(t)

	_, err := s.UpdateUser(context.Background(), &internal.User{Email: "ghost@example.com", Name: "Ghost"})
	assert.Error(t, err)
	assert.True(t, internal.IsNotFound(err))
}

func TestUpdateUserReplacesFields(t *testing.T) {
	s := setupFileStorage(t)
	ctx := context.Background()

	_, err := s.LoginUser(ctx, "Jane Doe", "jane.doe@example.com")
	assert.NoError(t, err)

	updated, err := s.UpdateUser(ctx, &internal.User{
		Email: "jane.doe@example.com", Name: "Jane D.", Bio: "New bio", Avatar: "av1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane D.", updated.Name)
	assert.Equal(t, "New bio", updated.Bio)

	got, err := s.GetUserByEmail(ctx, "jane.doe@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Jane D.", got.Name)
}

func TestCloseFlushesAndReloadSurvives(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStorage(dir, internal.NopLogger{})
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, s.SaveMood(ctx, &internal.MoodEntry{ID: "m1", Date: "2026-03-05T09:00:00Z", Mood: "Calm", Tags: []string{}}))
	_, err = s.LoginUser(ctx, "Jane Doe", "jane.doe@example.com")
	assert.NoError(t, err)
	assert.NoError(t, s.Close())

	reloaded, err := NewFileStorage(dir, internal.NopLogger{})
	assert.NoError(t, err)
	defer reloaded.Close()

	entries, err := reloaded.ListMoods(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Calm", entries[0].Mood)

	u, err := reloaded.GetUserByEmail(ctx, "jane.doe@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.Name)
}
