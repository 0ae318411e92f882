package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(config.Auth{
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
		TokenSignKey:      "unit-test-sign-key",
		TokenIssuer:       "govportal",
		TokenDuration:     time.Hour,
	}, logger.Nop())
}

func TestConsoleAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)
		assert.Equal(t, "admin", token.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "root", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)

		_, err = svc.Login(ctx, "admin", "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestConsoleAuthService_ParseToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		issued, err := svc.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)

		parsed, err := svc.ParseToken(ctx, issued.SignedString)
		require.NoError(t, err)
		assert.Equal(t, "admin", parsed.Username)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ParseToken(ctx, "not.a.token")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)

		short := NewAuthService(config.Auth{
			AdminUser:         "admin",
			AdminPasswordHash: string(hash),
			TokenSignKey:      "unit-test-sign-key",
			TokenIssuer:       "govportal",
			TokenDuration:     time.Nanosecond,
		}, logger.Nop())

		issued, err := short.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = short.ParseToken(ctx, issued.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpired)
	})
}
