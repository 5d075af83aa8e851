package repository

import (
	"context"
	"errors"
)

// ErrProfileNotFound signals that no profile row exists for the id. It is
// an expected condition, not a transport failure.
var ErrProfileNotFound = errors.New("profile not found")

// Profile is the remote profile row keyed by user id.
type Profile struct {
	ID         string
	Email      string
	FullName   string
	IsVerified bool
	University string
	Favorites  []string
}

// ProfileUpdate is a partial field set for UpsertProfile. Nil fields are
// left untouched on an existing row.
type ProfileUpdate struct {
	Email      *string
	FullName   *string
	IsVerified *bool
	University *string
	Favorites  *[]string
}

// ProfileGateway defines the operations the session store consumes when a
// remote profile backend is configured. Implementations own their wire
// format entirely.
type ProfileGateway interface {
	FetchProfile(ctx context.Context, id string) (*Profile, error)
	UpsertProfile(ctx context.Context, id string, upd ProfileUpdate) error
}
