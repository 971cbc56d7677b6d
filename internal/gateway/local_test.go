package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mindease/mindease/internal"
)

func setupLocal(t *testing.T) *LocalGateway {
	g, err := NewLocalGateway(t.TempDir(), internal.NopLogger{})
	assert.NoError(t, err)
	g.SetLatency(0)
	return g
}

func TestLocalRoundTrip(t *testing.T) {
	g := setupLocal(t)
	ctx := context.Background()

	user, err := g.Login(ctx, "Jane Doe", "jane.doe@example.com")
	assert.NoError(t, err)
	assert.Equal(t, internal.DefaultBio, user.Bio)

	created, err := g.CreateMood(ctx, internal.MoodEntry{
		Date: "2026-03-05T09:00:00Z", Mood: "Calm",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	moods, err := g.FetchMoods(ctx)
	assert.NoError(t, err)
	assert.Len(t, moods, 1)
	assert.Equal(t, created.ID, moods[0].ID)
}

func TestLocalCreateMoodPrepends(t *testing.T) {
	g := setupLocal(t)
	ctx := context.Background()

	_, err := g.CreateMood(ctx, internal.MoodEntry{Date: "2026-03-05T09:00:00Z", Mood: "Happy"})
	assert.NoError(t, err)
	_, err = g.CreateMood(ctx, internal.MoodEntry{Date: "2026-03-06T09:00:00Z", Mood: "Tired"})
	assert.NoError(t, err)

	moods, err := g.FetchMoods(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Tired", moods[0].Mood)
	assert.Equal(t, "Happy", moods[1].Mood)
}

func TestLocalCreateMoodValidation(t *testing.T) {
	g := setupLocal(t)
	ctx := context.Background()

	_, err := g.CreateMood(ctx, internal.MoodEntry{Mood: "Happy"})
	assert.True(t, internal.IsValidation(err))

	_, err = g.CreateMood(ctx, internal.MoodEntry{Date: "2026-03-05T09:00:00Z"})
	assert.True(t, internal.IsValidation(err))
}

func TestLocalLoginIdempotent(t *testing.T) {
	g := setupLocal(t)
	ctx := context.Background()

	first, err := g.Login(ctx, "Jane Doe", "jane.doe@example.com")
	assert.NoError(t, err)
	second, err := g.Login(ctx, "Jane Doe", "jane.doe@example.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestLocalUpdateUnknownUser(t *testing.T) {
	g := setupLocal(t)

	_, err := g.UpdateUser(context.Background(), internal.User{Email: "ghost@example.com"})
	assert.True(t, internal.IsNotFound(err))
}

func TestLocalLatencyHonorsCancellation(t *testing.T) {
	g := setupLocal(t)
	g.SetLatency(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := g.FetchMoods(ctx)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestLocalPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	g1, err := NewLocalGateway(dir, internal.NopLogger{})
	assert.NoError(t, err)
	g1.SetLatency(0)

	ctx := context.Background()
	_, err = g1.CreateMood(ctx, internal.MoodEntry{Date: "2026-03-05T09:00:00Z", Mood: "Calm"})
	assert.NoError(t, err)

	g2, err := NewLocalGateway(dir, internal.NopLogger{})
	assert.NoError(t, err)
	g2.SetLatency(0)

	moods, err := g2.FetchMoods(ctx)
	assert.NoError(t, err)
	assert.Len(t, moods, 1)
}
