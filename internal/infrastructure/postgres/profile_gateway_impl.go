package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/studentperksph/perks-api/internal/domain/repository"
)

// callTimeout bounds every gateway round trip; the session core treats a
// failure exactly like any other transport error and stays local.
const callTimeout = 3 * time.Second

// ProfileGateway is the Postgres-backed remote profile store, one row per
// user id in the profiles table.
type ProfileGateway struct {
	pool *pgxpool.Pool
}

func NewProfileGateway(pool *pgxpool.Pool) *ProfileGateway {
	return &ProfileGateway{pool: pool}
}

func (g *ProfileGateway) FetchProfile(ctx context.Context, id string) (*repo.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	p := &repo.Profile{}
	row := g.pool.QueryRow(ctx, `
		SELECT id, email, full_name, is_verified, university, favorites
		FROM profiles
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.IsVerified,
		&p.University, &p.Favorites); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpsertProfile applies a partial field set keyed by id. Nil fields keep
// their current value on an existing row and fall back to defaults on a
// fresh one.
func (g *ProfileGateway) UpsertProfile(ctx context.Context, id string, upd repo.ProfileUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var favorites any
	if upd.Favorites != nil {
		favorites = *upd.Favorites
	}

	_, err := g.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, full_name, is_verified, university, favorites)
		VALUES ($1,
			COALESCE($2::text, ''),
			COALESCE($3::text, 'Student'),
			COALESCE($4::boolean, false),
			COALESCE($5::text, ''),
			COALESCE($6::text[], '{}'))
		ON CONFLICT (id) DO UPDATE SET
			email       = COALESCE($2::text, profiles.email),
			full_name   = COALESCE($3::text, profiles.full_name),
			is_verified = COALESCE($4::boolean, profiles.is_verified),
			university  = COALESCE($5::text, profiles.university),
			favorites   = COALESCE($6::text[], profiles.favorites),
			updated_at  = now()
	`, id, upd.Email, upd.FullName, upd.IsVerified, upd.University, favorites)
	return err
}

var _ repo.ProfileGateway = (*ProfileGateway)(nil)
