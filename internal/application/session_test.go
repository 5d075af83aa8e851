package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperksph/perks-api/internal/catalog"
	"github.com/studentperksph/perks-api/internal/domain/entity"
	repo "github.com/studentperksph/perks-api/internal/domain/repository"
)

// fakeRecords is an in-memory RecordStore.
type fakeRecords struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{data: map[string][]byte{}}
}

func (f *fakeRecords) Load(_ context.Context, userID string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	b, ok := f.data[userID]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (f *fakeRecords) Save(_ context.Context, userID string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[userID] = data
	return nil
}

func (f *fakeRecords) Delete(_ context.Context, userID string) error {
	delete(f.data, userID)
	return nil
}

func (f *fakeRecords) put(t *testing.T, userID string, u entity.User) {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	f.data[userID] = b
}

// fakeGateway records upserts and serves a canned profile map.
type fakeGateway struct {
	profiles  map[string]*repo.Profile
	fetchErr  error
	upsertErr error
	upserts   []repo.ProfileUpdate
	upsertIDs []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{profiles: map[string]*repo.Profile{}}
}

func (f *fakeGateway) FetchProfile(_ context.Context, id string) (*repo.Profile, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, repo.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeGateway) UpsertProfile(_ context.Context, id string, upd repo.ProfileUpdate) error {
	f.upserts = append(f.upserts, upd)
	f.upsertIDs = append(f.upsertIDs, id)
	return f.upsertErr
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestInitializeAnonymousVisitor(t *testing.T) {
	s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
	assert.False(t, s.Ready())
	assert.Equal(t, StateUninitialized, s.State())

	s.Initialize(context.Background())

	assert.True(t, s.Ready())
	assert.Nil(t, s.User())
	assert.Equal(t, StateLoggedOut, s.State())
}

func TestInitializeRestoresLocalRecord(t *testing.T) {
	records := newFakeRecords()
	records.put(t, "u1", entity.User{ID: "u1", Email: "ana@x.io", Name: "Ana", Favorites: []string{"6"}})

	s := NewSessionStore(records, nil, testLogger(), "u1")
	s.Initialize(context.Background())

	require.NotNil(t, s.User())
	assert.Equal(t, "Ana", s.User().Name)
	assert.Equal(t, []string{"6"}, s.User().Favorites)
	assert.Equal(t, StateLoggedInUnverified, s.State())
}

func TestInitializeDiscardsCorruptRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"not json", []byte("{{{")},
		{"missing id", []byte(`{"email":"x@y.z"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := newFakeRecords()
			records.data["u1"] = tt.raw

			s := NewSessionStore(records, nil, testLogger(), "u1")
			s.Initialize(context.Background())

			assert.Nil(t, s.User())
			assert.Equal(t, StateLoggedOut, s.State())
			_, stillThere := records.data["u1"]
			assert.False(t, stillThere, "corrupt record must be purged")
		})
	}
}

func TestInitializeRecordLoadFailureIsNonFatal(t *testing.T) {
	records := newFakeRecords()
	records.loadErr = errors.New("redis down")

	s := NewSessionStore(records, nil, testLogger(), "u1")
	s.Initialize(context.Background())

	assert.Nil(t, s.User())
	assert.Equal(t, StateLoggedOut, s.State())
}

func TestInitializeAdoptsRemoteProfile(t *testing.T) {
	records := newFakeRecords()
	gw := newFakeGateway()
	gw.profiles["u1"] = &repo.Profile{
		ID: "u1", Email: "ana@up.edu.ph", FullName: "Ana",
		IsVerified: true, University: "up.edu.ph", Favorites: []string{"1"},
	}

	s := NewSessionStore(records, gw, testLogger(), "u1")
	s.Initialize(context.Background())

	require.NotNil(t, s.User())
	assert.Equal(t, StateLoggedInVerified, s.State())
	assert.Equal(t, "up.edu.ph", s.User().University)
	_, cached := records.data["u1"]
	assert.True(t, cached, "remote profile must be mirrored locally")
}

func TestInitializeCreatesMinimalRemoteProfileOnNotFound(t *testing.T) {
	records := newFakeRecords()
	gw := newFakeGateway()

	s := NewSessionStore(records, gw, testLogger(), "u1")
	s.Initialize(context.Background())

	require.NotNil(t, s.User())
	assert.Equal(t, DefaultDisplayName, s.User().Name)
	assert.Equal(t, StateLoggedInUnverified, s.State())
	require.Len(t, gw.upserts, 1)
	assert.Equal(t, "u1", gw.upsertIDs[0])
}

func TestInitializeFallsBackToLocalOnGatewayFailure(t *testing.T) {
	records := newFakeRecords()
	records.put(t, "u1", entity.User{ID: "u1", Name: "Ana", Favorites: []string{}})
	gw := newFakeGateway()
	gw.fetchErr = errors.New("pg down")

	s := NewSessionStore(records, gw, testLogger(), "u1")
	s.Initialize(context.Background())

	require.NotNil(t, s.User())
	assert.Equal(t, "Ana", s.User().Name)
}

func TestLogin(t *testing.T) {
	t.Run("requires an email", func(t *testing.T) {
		s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
		_, err := s.Login(context.Background(), "   ", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("defaults the display name", func(t *testing.T) {
		records := newFakeRecords()
		s := NewSessionStore(records, nil, testLogger(), "")
		u, err := s.Login(context.Background(), "ana@x.io", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultDisplayName, u.Name)
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.IsVerified)
		assert.Equal(t, []string{}, u.Favorites)
		assert.Equal(t, StateLoggedInUnverified, s.State())
	})

	t.Run("persists a restorable record", func(t *testing.T) {
		records := newFakeRecords()
		s := NewSessionStore(records, nil, testLogger(), "")
		u, err := s.Login(context.Background(), "ana@x.io", "Ana")
		require.NoError(t, err)

		s2 := NewSessionStore(records, nil, testLogger(), u.ID)
		s2.Initialize(context.Background())
		require.NotNil(t, s2.User())
		assert.Equal(t, u.ID, s2.User().ID)
		assert.Equal(t, "Ana", s2.User().Name)
	})

	t.Run("mirrors to the gateway as unverified", func(t *testing.T) {
		gw := newFakeGateway()
		s := NewSessionStore(newFakeRecords(), gw, testLogger(), "")
		_, err := s.Login(context.Background(), "ana@x.io", "Ana")
		require.NoError(t, err)
		require.Len(t, gw.upserts, 1)
		require.NotNil(t, gw.upserts[0].IsVerified)
		assert.False(t, *gw.upserts[0].IsVerified)
	})
}

func TestLogout(t *testing.T) {
	t.Run("without a session is a no-op", func(t *testing.T) {
		s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
		s.Initialize(context.Background())
		s.Logout(context.Background())
		s.Logout(context.Background())
		assert.Equal(t, StateLoggedOut, s.State())
	})

	t.Run("clears the record and resets only the category", func(t *testing.T) {
		records := newFakeRecords()
		s := NewSessionStore(records, nil, testLogger(), "")
		u, err := s.Login(context.Background(), "ana@x.io", "Ana")
		require.NoError(t, err)

		filters := catalog.FilterState{Query: "spotify", Category: entity.CategoryFavorites}
		s.BindFilters(&filters)

		s.Logout(context.Background())

		assert.Nil(t, s.User())
		assert.Equal(t, StateLoggedOut, s.State())
		_, there := records.data[u.ID]
		assert.False(t, there)
		assert.Equal(t, entity.CategoryAll, filters.Category)
		assert.Equal(t, "spotify", filters.Query, "logout must not clear the query")
	})

	t.Run("fresh initialize after logout stays logged out", func(t *testing.T) {
		records := newFakeRecords()
		s := NewSessionStore(records, nil, testLogger(), "")
		u, err := s.Login(context.Background(), "ana@x.io", "Ana")
		require.NoError(t, err)
		s.Logout(context.Background())

		s2 := NewSessionStore(records, nil, testLogger(), u.ID)
		s2.Initialize(context.Background())
		assert.Nil(t, s2.User())
		assert.Equal(t, StateLoggedOut, s2.State())
	})
}

func TestVerify(t *testing.T) {
	login := func(t *testing.T, gw repo.ProfileGateway) *SessionStore {
		t.Helper()
		s := NewSessionStore(newFakeRecords(), gw, testLogger(), "")
		_, err := s.Login(context.Background(), "ana@gmail.com", "Ana")
		require.NoError(t, err)
		return s
	}

	t.Run("requires a session", func(t *testing.T) {
		s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
		err := s.Verify(context.Background(), "juan@up.edu.ph")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("rejects non school addresses", func(t *testing.T) {
		bad := []string{
			"juan@example.com",
			"juan@edu.ph",       // no school label
			"juan@up.edu.ph.co", // suffix must terminate the domain
			"juan@up.edu",
			"not-an-email",
			"",
		}
		s := login(t, nil)
		for _, email := range bad {
			err := s.Verify(context.Background(), email)
			assert.ErrorIs(t, err, ErrInvalidSchoolEmail, "email %q", email)
		}
		assert.Equal(t, StateLoggedInUnverified, s.State())
	})

	t.Run("accepts edu.ph and derives the university", func(t *testing.T) {
		s := login(t, nil)
		err := s.Verify(context.Background(), "juan@example.edu.ph")
		require.NoError(t, err)

		u := s.User()
		assert.True(t, u.IsVerified)
		assert.Equal(t, "juan@example.edu.ph", u.Email)
		assert.Equal(t, "example.edu.ph", u.University)
		assert.Equal(t, StateLoggedInVerified, s.State())
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		s := login(t, nil)
		require.NoError(t, s.Verify(context.Background(), "Juan.DelaCruz@UP.edu.PH"))
		assert.Equal(t, "UP.edu.PH", s.User().University)
	})

	t.Run("re-verifying is harmless", func(t *testing.T) {
		s := login(t, nil)
		require.NoError(t, s.Verify(context.Background(), "juan@dlsu.edu.ph"))
		require.NoError(t, s.Verify(context.Background(), "juan@dlsu.edu.ph"))
		assert.Equal(t, StateLoggedInVerified, s.State())
	})

	t.Run("mirrors verification to the gateway", func(t *testing.T) {
		gw := newFakeGateway()
		s := login(t, gw)
		require.NoError(t, s.Verify(context.Background(), "juan@up.edu.ph"))

		last := gw.upserts[len(gw.upserts)-1]
		require.NotNil(t, last.IsVerified)
		assert.True(t, *last.IsVerified)
		require.NotNil(t, last.University)
		assert.Equal(t, "up.edu.ph", *last.University)
	})
}

func TestToggleFavorite(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
		s.Initialize(context.Background())
		_, err := s.ToggleFavorite(context.Background(), "6")
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("toggling twice restores the original set", func(t *testing.T) {
		s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
		_, err := s.Login(context.Background(), "ana@x.io", "Ana")
		require.NoError(t, err)

		on, err := s.ToggleFavorite(context.Background(), "6")
		require.NoError(t, err)
		assert.True(t, on)
		assert.Equal(t, []string{"6"}, s.User().Favorites)

		off, err := s.ToggleFavorite(context.Background(), "6")
		require.NoError(t, err)
		assert.False(t, off)
		assert.Empty(t, s.User().Favorites)
	})

	t.Run("keeps the local change when the gateway write fails", func(t *testing.T) {
		gw := newFakeGateway()
		gw.upsertErr = errors.New("pg down")

		var hookOp string
		var hookErr error
		s := NewSessionStore(newFakeRecords(), gw, testLogger(), "")
		s.OnSyncError(func(op string, err error) { hookOp, hookErr = op, err })

		_, err := s.Login(context.Background(), "ana@x.io", "Ana")
		require.NoError(t, err)

		on, err := s.ToggleFavorite(context.Background(), "6")
		require.NoError(t, err, "a remote failure must not surface to the caller")
		assert.True(t, on)
		assert.Equal(t, []string{"6"}, s.User().Favorites)
		assert.Equal(t, "favorite", hookOp)
		assert.ErrorContains(t, hookErr, "pg down")
	})
}
