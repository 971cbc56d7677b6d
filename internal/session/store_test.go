package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindease/mindease/internal"
)

// fakeGateway counts calls and can be told to fail per operation.
type fakeGateway struct {
	users      map[string]*internal.User
	moods      []internal.MoodEntry
	nextID     int
	failFetch  bool
	failCreate bool
	failLogin  bool
	failUpdate bool

	loadingDuringCall []bool
	store             *Store
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{users: map[string]*internal.User{}}
}

var errBoom = errors.New("boom")

func (f *fakeGateway) observeLoading() {
	if f.store != nil {
		f.loadingDuringCall = append(f.loadingDuringCall, f.store.Loading())
	}
}

func (f *fakeGateway) FetchMoods(ctx context.Context) ([]internal.MoodEntry, error) {
	f.observeLoading()
	if f.failFetch {
		return nil, &internal.TransportError{Err: errBoom}
	}
	out := make([]internal.MoodEntry, len(f.moods))
	copy(out, f.moods)
	return out, nil
}

func (f *fakeGateway) CreateMood(ctx context.Context, draft internal.MoodEntry) (*internal.MoodEntry, error) {
	f.observeLoading()
	if f.failCreate {
		return nil, &internal.TransportError{Err: errBoom}
	}
	f.nextID++
	draft.ID = fmt.Sprintf("m%d", f.nextID)
	f.moods = append([]internal.MoodEntry{draft}, f.moods...)
	return &draft, nil
}

func (f *fakeGateway) Login(ctx context.Context, name, email string) (*internal.User, error) {
	f.observeLoading()
	if f.failLogin {
		return nil, &internal.TransportError{Err: errBoom}
	}
	if u, ok := f.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	f.nextID++
	u := &internal.User{ID: fmt.Sprintf("u%d", f.nextID), Name: name, Email: email, Bio: internal.DefaultBio}
	f.users[email] = u
	copied := *u
	return &copied, nil
}

func (f *fakeGateway) UpdateUser(ctx context.Context, user internal.User) (*internal.User, error) {
	f.observeLoading()
	if f.failUpdate {
		return nil, &internal.TransportError{Err: errBoom}
	}
	if _, ok := f.users[user.Email]; !ok {
		return nil, &internal.NotFoundError{Kind: "user", Key: user.Email}
	}
	f.users[user.Email] = &user
	copied := user
	return &copied, nil
}

func newTestStore() (*Store, *fakeGateway) {
	gw := newFakeGateway()
	store := NewStore(gw, "example.com", internal.NopLogger{})
	gw.store = store
	return store, gw
}

func TestDeriveEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", DeriveEmail("Jane Doe", "example.com"))
	assert.Equal(t, "jane.doe@example.com", DeriveEmail("  Jane   Doe  ", "example.com"))
	assert.Equal(t, "solo@example.com", DeriveEmail("Solo", "example.com"))
}

func TestLoginSetsUserMoodsAndPage(t *testing.T) {
	store, gw := newTestStore()
	gw.moods = []internal.MoodEntry{{ID: "m0", Mood: "Happy", Date: "2026-03-05T09:00:00Z"}}

	err := store.Login(context.Background(), "Jane Doe")
	assert.NoError(t, err)

	user := store.User()
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, internal.DefaultBio, user.Bio)
	assert.Len(t, store.Moods(), 1)
	assert.Equal(t, internal.PageDashboard, store.Page())
}

func TestLoginIsIdempotent(t *testing.T) {
	store, _ := newTestStore()

	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))
	first := store.User()

	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))
	second := store.User()

	assert.Equal(t, first.ID, second.ID)
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	store, gw := newTestStore()
	gw.failLogin = true

	err := store.Login(context.Background(), "Jane Doe")
	assert.Error(t, err)
	assert.Nil(t, store.User())
	assert.Equal(t, internal.PageLanding, store.Page())
	assert.False(t, store.Loading())
	assert.Error(t, store.LastError())
}

func TestLoginFetchFailureSetsNoPartialUser(t *testing.T) {
	store, gw := newTestStore()
	gw.failFetch = true

	err := store.Login(context.Background(), "Jane Doe")
	assert.Error(t, err)
	assert.Nil(t, store.User())
	assert.Empty(t, store.Moods())
	assert.Equal(t, internal.PageLanding, store.Page())
}

func TestAddMoodPrependsNewestFirst(t *testing.T) {
	store, _ := newTestStore()
	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))

	for i := 0; i < 3; i++ {
		err := store.AddMood(context.Background(), internal.MoodEntry{
			Date: fmt.Sprintf("2026-03-0%dT09:00:00Z", i+1),
			Mood: fmt.Sprintf("Mood%d", i),
		})
		assert.NoError(t, err)
	}

	moods := store.Moods()
	assert.Len(t, moods, 3)
	assert.Equal(t, "Mood2", moods[0].Mood)
	assert.Equal(t, "Mood0", moods[2].Mood)

	// The logged-in user's email rides along on the write.
	assert.Equal(t, "jane.doe@example.com", moods[0].UserEmail)
}

func TestAddMoodFailureLeavesListUnchanged(t *testing.T) {
	store, gw := newTestStore()
	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))
	assert.NoError(t, store.AddMood(context.Background(), internal.MoodEntry{Date: "2026-03-05T09:00:00Z", Mood: "Happy"}))

	gw.failCreate = true
	err := store.AddMood(context.Background(), internal.MoodEntry{Date: "2026-03-06T09:00:00Z", Mood: "Sad"})
	assert.Error(t, err)
	assert.Len(t, store.Moods(), 1)
	assert.Equal(t, "Happy", store.Moods()[0].Mood)
}

func TestRefreshMoodsReplacesWholeList(t *testing.T) {
	store, gw := newTestStore()
	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))

	gw.moods = []internal.MoodEntry{
		{ID: "m8", Mood: "Calm", Date: "2026-03-08T09:00:00Z"},
		{ID: "m7", Mood: "Tired", Date: "2026-03-07T09:00:00Z"},
	}
	assert.NoError(t, store.RefreshMoods(context.Background()))
	moods := store.Moods()
	assert.Len(t, moods, 2)
	assert.Equal(t, "m8", moods[0].ID)
}

func TestUpdateUserReplacesOnSuccessOnly(t *testing.T) {
	store, gw := newTestStore()
	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))

	updated := *store.User()
	updated.Bio = "New bio"
	assert.NoError(t, store.UpdateUser(context.Background(), updated))
	assert.Equal(t, "New bio", store.User().Bio)

	gw.failUpdate = true
	updated.Bio = "Should not land"
	assert.Error(t, store.UpdateUser(context.Background(), updated))
	assert.Equal(t, "New bio", store.User().Bio)
}

func TestLoadingFlagLifecycle(t *testing.T) {
	store, gw := newTestStore()

	assert.False(t, store.Loading())
	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))
	assert.False(t, store.Loading())

	// The gateway saw loading=true during every call.
	assert.NotEmpty(t, gw.loadingDuringCall)
	for _, loading := range gw.loadingDuringCall {
		assert.True(t, loading)
	}

	// Cleared on the failure path too.
	gw.failFetch = true
	assert.Error(t, store.RefreshMoods(context.Background()))
	assert.False(t, store.Loading())
}

func TestNavigateAndLogout(t *testing.T) {
	store, _ := newTestStore()
	assert.NoError(t, store.Login(context.Background(), "Jane Doe"))

	store.Navigate(internal.PageToolkit)
	assert.Equal(t, internal.PageToolkit, store.Page())

	store.Logout()
	assert.Nil(t, store.User())
	assert.Empty(t, store.Moods())
	assert.Equal(t, internal.PageLanding, store.Page())
}
