package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-translator/internal/logger"
)

// SessionRepository keeps server-side session records in Redis.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the session with the given lifetime.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, userID.String(), ttl).Err()

	logger.Log.Debugw("session saved",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get returns the user owning the session and whether the session exists.
func (r *SessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, bool, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("session not found", "key", key)
		return uuid.Nil, false, nil
	}
	if err != nil {
		logger.Log.Errorw("session lookup failed", "key", key, "error", err)
		return uuid.Nil, false, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Errorw("corrupt session record", "key", key, "value", val, "error", err)
		return uuid.Nil, false, err
	}

	return userID, true, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("session deleted",
		"key", key,
		"error", err,
	)

	return err
}
