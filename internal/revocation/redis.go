package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

// minTTL keeps an entry around even when the token is already past its
// expiration, so repeated logout of the same token still reports
// "already invalid".
const minTTL = time.Minute

// Redis is a Store shared across instances. Entries expire together with the
// token they revoke, which bounds growth.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < minTTL {
		ttl = minTTL
	}
	return r.client.Set(ctx, keyPrefix+token, 1, ttl).Err()
}

func (r *Redis) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
