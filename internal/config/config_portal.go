package config

import (
	"fmt"
	"time"
)

// PortalGateway holds network settings used by the portal transport layer.
type PortalGateway struct {
	// HTTPAddress is the backend endpoint the gateway talks to.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// UploadBucket is the bucket console uploads are written to.
	UploadBucket string
}

// PortalGeo holds the external lookup endpoints used by the portal.
type PortalGeo struct {
	LocationURL    string
	IPURL          string
	RequestTimeout time.Duration
}

// PortalWorkers contains portal background job settings.
type PortalWorkers struct {
	// RefreshInterval defines how often the background refresh job runs.
	RefreshInterval time.Duration
}

// PortalConfig is the portal-specific view assembled from
// [StructuredConfig].
type PortalConfig struct {
	// Gateway contains transport addresses and timeouts.
	Gateway PortalGateway
	// Geo contains the external lookup endpoints.
	Geo PortalGeo
	// Workers contains background job settings.
	Workers PortalWorkers
}

// GetPortalConfig builds and validates a portal-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the portal runtime, and validates the result.
func GetPortalConfig() (*PortalConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	portalCfg := &PortalConfig{
		Gateway: PortalGateway{
			HTTPAddress:    cfg.Gateway.HTTPAddress,
			RequestTimeout: cfg.Gateway.RequestTimeout,
			UploadBucket:   cfg.Gateway.UploadBucket,
		},
		Geo: PortalGeo{
			LocationURL:    cfg.Geo.LocationURL,
			IPURL:          cfg.Geo.IPURL,
			RequestTimeout: cfg.Geo.RequestTimeout,
		},
		Workers: PortalWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if err := portalCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating portal config: %w", err)
	}

	return portalCfg, nil
}
