package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
)

func TestMintTokenCarriesSubject(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signed, expiresAt, err := env.svc.Token.MintToken(ctx, env.member.UserID)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, env.member.UserID, claims.Subject)
	assert.Equal(t, "timesheet-backend-test", claims.Issuer)
}

func TestMintTokenUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.svc.Token.MintToken(context.Background(), "u-nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
