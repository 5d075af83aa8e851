package application

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/studentperksph/perks-api/internal/catalog"
	"github.com/studentperksph/perks-api/internal/domain/entity"
	repo "github.com/studentperksph/perks-api/internal/domain/repository"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrAuthRequired       = errors.New("authentication required")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidSchoolEmail = errors.New("must be a valid school email ending in .edu.ph")
)

// schoolEmailRe gates verification: standard local part, any domain under
// .edu.ph, case-insensitive.
var schoolEmailRe = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.edu\.ph$`)

// DefaultDisplayName is used when login omits a name.
const DefaultDisplayName = "Student"

// SessionState is the lifecycle phase of the session store.
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateLoading
	StateLoggedOut
	StateLoggedInUnverified
	StateLoggedInVerified
)

// RecordStore is the local durable key-value store holding the serialized
// session record. Load returns (nil, nil) when no record exists.
type RecordStore interface {
	Load(ctx context.Context, userID string) ([]byte, error)
	Save(ctx context.Context, userID string, data []byte) error
	Delete(ctx context.Context, userID string) error
}

// SyncErrorHook observes remote profile write failures so a caller can
// reconcile or retry later. The store itself never retries or rolls back.
type SyncErrorHook func(op string, err error)

// SessionStore owns the current user's lifecycle and is the single place
// that mutates it. It persists every change to the local record store and
// mirrors it best-effort to the remote profile gateway when one is
// configured (gateway == nil means local-only mode).
//
// A store instance serves one session at a time; HTTP handlers build one
// per request, so no locking is needed.
type SessionStore struct {
	records RecordStore
	gateway repo.ProfileGateway
	logger  *logrus.Logger

	// filters, when set, is the UI's filter state; Logout resets its
	// category per the session contract.
	filters *catalog.FilterState

	onSyncError SyncErrorHook

	key   string
	user  *entity.User
	state SessionState
}

// NewSessionStore builds a store bound to the given record key (the user
// id once known; empty for an anonymous visitor). gateway may be nil.
func NewSessionStore(records RecordStore, gateway repo.ProfileGateway, logger *logrus.Logger, key string) *SessionStore {
	return &SessionStore{
		records: records,
		gateway: gateway,
		logger:  logger,
		key:     key,
		state:   StateUninitialized,
	}
}

// BindFilters attaches the UI-owned filter state so session transitions
// can adjust it.
func (s *SessionStore) BindFilters(f *catalog.FilterState) { s.filters = f }

// OnSyncError registers the remote-drift observer.
func (s *SessionStore) OnSyncError(fn SyncErrorHook) { s.onSyncError = fn }

// User returns the current user, or nil when logged out. Callers must
// treat it as read-only and mutate only through store intents.
func (s *SessionStore) User() *entity.User { return s.user }

// Ready reports whether Initialize has completed. Rendering must not
// assume user data before this.
func (s *SessionStore) Ready() bool {
	return s.state != StateUninitialized && s.state != StateLoading
}

// State returns the lifecycle state, folding in the verification flag.
func (s *SessionStore) State() SessionState {
	if s.state == StateUninitialized || s.state == StateLoading {
		return s.state
	}
	switch {
	case s.user == nil:
		return StateLoggedOut
	case s.user.IsVerified:
		return StateLoggedInVerified
	default:
		return StateLoggedInUnverified
	}
}

// Initialize restores a session. With a gateway configured it fetches the
// linked profile (creating a minimal one remotely on NotFound); otherwise
// it adopts the local record. Corrupt or missing local records leave the
// store logged out; nothing here is fatal.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.state = StateLoading
	defer func() {
		if s.user == nil {
			s.state = StateLoggedOut
		} else if s.user.IsVerified {
			s.state = StateLoggedInVerified
		} else {
			s.state = StateLoggedInUnverified
		}
	}()

	if s.key == "" {
		return
	}

	if s.gateway != nil {
		p, err := s.gateway.FetchProfile(ctx, s.key)
		switch {
		case err == nil:
			s.user = userFromProfile(p)
			s.persistLocal(ctx)
			return
		case errors.Is(err, repo.ErrProfileNotFound):
			// First contact for this id: seed from the local record when
			// one survives, then create the minimal remote row.
			s.user = s.loadLocal(ctx)
			if s.user == nil {
				s.user = &entity.User{ID: s.key, Name: DefaultDisplayName, Favorites: []string{}}
			}
			s.persistLocal(ctx)
			upd := repo.ProfileUpdate{
				Email:     &s.user.Email,
				FullName:  &s.user.Name,
				Favorites: &s.user.Favorites,
			}
			if uerr := s.gateway.UpsertProfile(ctx, s.user.ID, upd); uerr != nil {
				s.syncFailed("initialize", uerr)
			}
			return
		default:
			s.logger.WithError(err).WithField("user_id", s.key).
				Warn("profile fetch failed, falling back to local record")
		}
	}

	s.user = s.loadLocal(ctx)
}

// Login creates a fresh session for the given email. Any non-empty email
// is accepted here; format checks and the magic-link round trip belong to
// the authentication collaborator that calls this.
func (s *SessionStore) Login(ctx context.Context, email, name string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if name = strings.TrimSpace(name); name == "" {
		name = DefaultDisplayName
	}

	s.user = &entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Favorites: []string{},
	}
	s.key = s.user.ID
	s.state = StateLoggedInUnverified
	s.persistLocal(ctx)

	if s.gateway != nil {
		verified := false
		upd := repo.ProfileUpdate{
			Email:      &s.user.Email,
			FullName:   &s.user.Name,
			IsVerified: &verified,
			Favorites:  &s.user.Favorites,
		}
		if err := s.gateway.UpsertProfile(ctx, s.user.ID, upd); err != nil {
			s.syncFailed("login", err)
		}
	}
	return s.user, nil
}

// Logout clears the session and its local record. Calling it with no
// active session is a no-op. The category filter is reset to ALL; the
// text query is deliberately left alone.
func (s *SessionStore) Logout(ctx context.Context) {
	if s.user == nil {
		return
	}
	if err := s.records.Delete(ctx, s.key); err != nil {
		s.logger.WithError(err).WithField("user_id", s.key).Warn("session record delete failed")
	}
	s.user = nil
	s.state = StateLoggedOut
	if s.filters != nil {
		s.filters.ResetCategory()
	}
}

// Verify marks the session verified when email is a .edu.ph school
// address. The university is the domain after '@'. Verifying an already
// verified session is a harmless re-assertion. This is the sole gate that
// unlocks outbound benefit links.
func (s *SessionStore) Verify(ctx context.Context, email string) error {
	if s.user == nil {
		return ErrNoSession
	}
	email = strings.TrimSpace(email)
	if !schoolEmailRe.MatchString(email) {
		return ErrInvalidSchoolEmail
	}

	s.user.IsVerified = true
	s.user.Email = email
	s.user.University = email[strings.LastIndexByte(email, '@')+1:]
	s.state = StateLoggedInVerified
	s.persistLocal(ctx)

	if s.gateway != nil {
		verified := true
		upd := repo.ProfileUpdate{
			Email:      &s.user.Email,
			IsVerified: &verified,
			University: &s.user.University,
		}
		if err := s.gateway.UpsertProfile(ctx, s.user.ID, upd); err != nil {
			s.syncFailed("verify", err)
		}
	}
	return nil
}

// ToggleFavorite flips membership of benefitID in the favorites set and
// reports the new membership. The local change applies immediately; the
// remote update is best-effort and never rolled back, so a gateway
// failure leaves accepted drift until the next successful write.
func (s *SessionStore) ToggleFavorite(ctx context.Context, benefitID string) (bool, error) {
	if s.user == nil {
		return false, ErrAuthRequired
	}

	nowFavorite := s.user.ToggleFavorite(benefitID)
	s.persistLocal(ctx)

	if s.gateway != nil {
		upd := repo.ProfileUpdate{Favorites: &s.user.Favorites}
		if err := s.gateway.UpsertProfile(ctx, s.user.ID, upd); err != nil {
			s.syncFailed("favorite", err)
		}
	}
	return nowFavorite, nil
}

func (s *SessionStore) loadLocal(ctx context.Context) *entity.User {
	b, err := s.records.Load(ctx, s.key)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", s.key).Warn("session record load failed")
		return nil
	}
	if b == nil {
		return nil
	}
	var u entity.User
	if err := json.Unmarshal(b, &u); err != nil || u.ID == "" {
		// Corrupt record: discard and carry on logged out.
		s.logger.WithField("user_id", s.key).Debug("discarding corrupt session record")
		_ = s.records.Delete(ctx, s.key)
		return nil
	}
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	return &u
}

func (s *SessionStore) persistLocal(ctx context.Context) {
	b, err := json.Marshal(s.user)
	if err != nil {
		s.logger.WithError(err).Warn("session record encode failed")
		return
	}
	if err := s.records.Save(ctx, s.key, b); err != nil {
		s.logger.WithError(err).WithField("user_id", s.key).Warn("session record save failed")
	}
}

func (s *SessionStore) syncFailed(op string, err error) {
	s.logger.WithError(err).WithFields(logrus.Fields{
		"op":      op,
		"user_id": s.key,
	}).Warn("remote profile sync failed, keeping local state")
	if s.onSyncError != nil {
		s.onSyncError(op, err)
	}
}

func userFromProfile(p *repo.Profile) *entity.User {
	name := p.FullName
	if name == "" {
		name = DefaultDisplayName
	}
	favs := p.Favorites
	if favs == nil {
		favs = []string{}
	}
	return &entity.User{
		ID:         p.ID,
		Email:      p.Email,
		Name:       name,
		IsVerified: p.IsVerified,
		University: p.University,
		Favorites:  favs,
	}
}
