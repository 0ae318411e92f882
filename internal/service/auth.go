// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/utils"
	"github.com/vndocs/govportal/models"
)

// AuthService authenticates the management console account and manages the
// JWT session token lifecycle on the backend.
type AuthService interface {
	// Login verifies the console credentials and issues a signed token.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// ParseToken validates a presented token string and returns its
	// parsed form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// consoleAuthService checks credentials against the single configured
// console account. The password is stored only as a bcrypt hash; plaintext
// never appears in configuration or logs.
type consoleAuthService struct {
	adminUser         string
	adminPasswordHash string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService builds the console authenticator from the auth settings.
// All state is read-only after construction; safe for concurrent use.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &consoleAuthService{
		adminUser:         cfg.AdminUser,
		adminPasswordHash: cfg.AdminPasswordHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login implements [AuthService]. The bcrypt comparison runs even for an
// unknown username so both rejection paths cost the same.
func (a *consoleAuthService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(password))
	if username != a.adminUser || compareErr != nil {
		log.Warn().Str("username", username).Msg("console login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return models.Token{}, fmt.Errorf("creation of token failed: %w", err)
	}

	return token, nil
}

// ParseToken implements [AuthService].
func (a *consoleAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("token validation failed")
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}
