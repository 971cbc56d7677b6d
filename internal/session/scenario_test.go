package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/gateway"
	"github.com/mindease/mindease/internal/session"
)

// Walks the first-run flow end to end against the on-device gateway: sign in
// with a display name, log one mood, and confirm both the session copy and an
// independent fetch agree on what was stored.
func TestFirstRunScenario(t *testing.T) {
	gw, err := gateway.NewLocalGateway(t.TempDir(), internal.NopLogger{})
	require.NoError(t, err)
	gw.SetLatency(0)

	store := session.NewStore(gw, "example.com", internal.NopLogger{})
	ctx := context.Background()

	assert.Equal(t, internal.PageLanding, store.Page())
	assert.Nil(t, store.User())

	require.NoError(t, store.Login(ctx, "Jane Doe"))

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, internal.DefaultBio, user.Bio)
	assert.Equal(t, internal.PageDashboard, store.Page())
	assert.Empty(t, store.Moods())

	require.NoError(t, store.AddMood(ctx, internal.MoodEntry{
		Date: "2026-03-05T09:00:00Z",
		Mood: internal.MoodNeutral,
		Note: "Morning check-in",
	}))

	moods := store.Moods()
	require.Len(t, moods, 1)
	assert.Equal(t, internal.MoodNeutral, moods[0].Mood)
	assert.Equal(t, "jane.doe@example.com", moods[0].UserEmail)

	// The stored record, fetched independently, matches the session copy.
	fetched, err := gw.FetchMoods(ctx)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, moods[0].ID, fetched[0].ID)
	assert.Equal(t, moods[0].Mood, fetched[0].Mood)

	// Signing in again with the same name resolves the same account.
	store.Logout()
	assert.Equal(t, internal.PageLanding, store.Page())

	require.NoError(t, store.Login(ctx, "Jane Doe"))
	again := store.User()
	require.NotNil(t, again)
	assert.Equal(t, user.ID, again.ID)
	require.Len(t, store.Moods(), 1)
}
