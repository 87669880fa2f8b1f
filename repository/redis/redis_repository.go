package redis

import (
	"context"
	"fmt"
	"time"

	redisclient "github.com/muhammadheryan/agri-market/cmd/redis"
	"github.com/muhammadheryan/agri-market/constant"
)

// SessionRepository maps token ids (jti) to user ids. Each user also owns an index
// of live sessions so an account deletion can revoke all of them.
type SessionRepository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteUserSessions(ctx context.Context, userID uint64) error
}

type redis struct{}

func NewSessionRepository() SessionRepository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return constant.SessionKeyPrefix + sessionID
}

func userSessionsKey(userID uint64) string {
	return fmt.Sprintf("%suser:%d", constant.SessionKeyPrefix, userID)
}

func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return redisclient.ErrNotInitialized
	}

	pipe := client.TxPipeline()
	pipe.Set(ctx, sessionKey(sessionID), userID, ttl)
	pipe.SAdd(ctx, userSessionsKey(userID), sessionID)
	pipe.Expire(ctx, userSessionsKey(userID), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, redisclient.ErrNotInitialized
	}
	return client.Get(ctx, sessionKey(sessionID)).Uint64()
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return redisclient.ErrNotInitialized
	}

	userID, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil && !redisclient.IsNil(err) {
		return err
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	if userID != 0 {
		pipe.SRem(ctx, userSessionsKey(userID), sessionID)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redis) DeleteUserSessions(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return redisclient.ErrNotInitialized
	}

	ids, err := client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))
	return client.Del(ctx, keys...).Err()
}
