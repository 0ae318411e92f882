// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// backend service and the portal. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds console credentials and token parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds database and file bucket settings for the backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the backend
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Gateway holds the backend endpoint used by the portal's remote data
	// gateway.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Geo holds the external geolocation and public-IP lookup endpoints.
	Geo Geo `envPrefix:"GEO_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds console authentication settings.
type Auth struct {
	// AdminUser is the management console account name.
	// Env: AUTH_ADMIN_USER
	AdminUser string `env:"ADMIN_USER"`

	// AdminPasswordHash is the bcrypt hash of the console password. The
	// plaintext password never appears in configuration.
	// Env: AUTH_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify console JWT
	// tokens. Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a console token remains valid
	// (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the backend persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the on-disk object bucket settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. A postgres:// scheme selects the pgx
	// driver; anything else is treated as an SQLite file path (dev mode).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the uploaded-artifact bucket.
type Files struct {
	// Dir is the directory files are stored under, one subdirectory per
	// bucket.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// PublicBaseURL is the URL prefix under which stored files are served
	// (e.g. "http://localhost:8080/files").
	// Env: STORAGE_FILES_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// Server holds network and timeout settings for the backend HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Gateway holds the portal-side settings for reaching the backend.
type Gateway struct {
	// HTTPAddress is the backend base address.
	// Env: GATEWAY_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound portal requests.
	// Env: GATEWAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadBucket is the bucket name console uploads go to.
	// Env: GATEWAY_UPLOAD_BUCKET
	UploadBucket string `env:"UPLOAD_BUCKET"`
}

// Geo holds endpoints of the two external lookup collaborators. Both are
// best-effort: any failure degrades to the literal "Unknown".
type Geo struct {
	// LocationURL is the IP-geolocation endpoint returning
	// {ip, country_name, city, region}.
	// Env: GEO_LOCATION_URL
	LocationURL string `env:"LOCATION_URL"`

	// IPURL is the public-IP echo endpoint returning {ip}.
	// Env: GEO_IP_URL
	IPURL string `env:"IP_URL"`

	// RequestTimeout bounds each lookup.
	// Env: GEO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the portal re-fetches all
	// collections in the background.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables (a local .env file is loaded first, if present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
