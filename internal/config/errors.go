package config

import (
	"errors"
	"time"
)

const (
	defaultRequestTimeout  = 15 * time.Second
	defaultTokenDuration   = time.Hour
	defaultRefreshInterval = 5 * time.Minute
)

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidGatewayConfigs indicates invalid portal gateway settings
	// (for example, missing backend address or zero request timeout).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidStorageConfigs indicates invalid backend storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
