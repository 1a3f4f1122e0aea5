package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "auth:revoked:"

// Revoker stores revoked token ids in Redis until the token would have
// expired anyway. A nil *Revoker disables revocation checks.
type Revoker struct {
	rdb *redis.Client
}

func NewRevoker(rdb *redis.Client) *Revoker {
	return &Revoker{rdb: rdb}
}

func (r *Revoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
