// Package revocation tracks tokens that were explicitly invalidated before
// their natural expiration (logout).
package revocation

import (
	"context"
	"time"
)

// Store is the set of revoked raw token strings. Add is idempotent. The ttl
// bounds how long a revoked token needs to be remembered: once the token has
// expired on its own, the entry may be dropped.
type Store interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}
