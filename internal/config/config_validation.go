// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package config

// applyDefaults fills in values that have a sane default when no source
// provided them. Secrets never have defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Gateway.HTTPAddress == "" {
		cfg.Gateway.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Gateway.RequestTimeout == 0 {
		cfg.Gateway.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Gateway.UploadBucket == "" {
		cfg.Gateway.UploadBucket = "records"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Files.Dir == "" {
		cfg.Storage.Files.Dir = "uploads"
	}
	if cfg.Storage.Files.PublicBaseURL == "" {
		cfg.Storage.Files.PublicBaseURL = "http://" + cfg.Server.HTTPAddress + "/files"
	}
	if cfg.Geo.LocationURL == "" {
		cfg.Geo.LocationURL = "https://ipapi.co/json/"
	}
	if cfg.Geo.IPURL == "" {
		cfg.Geo.IPURL = "https://api.ipify.org?format=json"
	}
	if cfg.Geo.RequestTimeout == 0 {
		cfg.Geo.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "govportal"
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants both processes need at startup. The backend additionally
// requires a DSN, checked in [StructuredConfig.ValidateServer] because the
// portal shares this loader without a database.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer enforces the backend-only requirements.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *PortalConfig) validate() error {
	if cfg.Gateway.HTTPAddress == "" || cfg.Gateway.RequestTimeout == 0 {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
