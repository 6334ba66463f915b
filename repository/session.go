package repository

import (
	"context"
	"time"

	"gymsphere/domain"

	"github.com/redis/go-redis/v9"
)

type sessionRedisRepository struct {
	client *redis.Client
}

func NewSessionRedisRepository(client *redis.Client) domain.SessionRepository {
	return &sessionRedisRepository{client: client}
}

func sessionKey(userUUID string) string {
	return "session:" + userUUID
}

func (r *sessionRedisRepository) Save(ctx context.Context, userUUID, refreshToken string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(userUUID), refreshToken, ttl).Err()
}

// Validate checks the presented refresh token against the stored one. A
// missing key means the session was revoked or expired.
func (r *sessionRedisRepository) Validate(ctx context.Context, userUUID, refreshToken string) (bool, error) {
	stored, err := r.client.Get(ctx, sessionKey(userUUID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == refreshToken, nil
}

func (r *sessionRedisRepository) Delete(ctx context.Context, userUUID string) error {
	return r.client.Del(ctx, sessionKey(userUUID)).Err()
}
