package redisrecord

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:record:"

// Store persists session record snapshots in Redis, one JSON value per
// user id. It is the durable local store the session lifecycle reads and
// writes; records have no TTL and live until logout deletes them.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Load(ctx context.Context, userID string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) Save(ctx context.Context, userID string, data []byte) error {
	return s.rdb.Set(ctx, keyPrefix+userID, data, 0).Err()
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, keyPrefix+userID).Err()
}

// Exists reports whether a record is present without decoding it; the
// auth middleware uses this to reject tokens for sessions that were
// logged out elsewhere.
func (s *Store) Exists(ctx context.Context, userID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyPrefix+userID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
