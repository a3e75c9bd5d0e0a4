package services

import (
	"context"
	"time"
)

// TokenSvcFacade mints principal tokens for user switching. There is no
// password or session handling; the token only names the acting user.
type TokenSvcFacade interface {
	// MintToken issues a signed token whose subject is the given user.
	MintToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)
}
