// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package geoip resolves the portal's public IP address and approximate
// location from external lookup services. Results feed the device registry;
// every field degrades to a placeholder when a lookup fails, so callers
// never block session tracking on network weather.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/utils"
)

//go:generate mockgen -source=geoip.go -destination=../mock/geoip_mock.go -package=mock

// Unknown is the placeholder used for any location field that could not be
// resolved.
const Unknown = "Unknown"

// Location describes where a portal session appears to originate from.
type Location struct {
	IP      string
	Country string
	City    string
	Region  string
}

// Resolver looks up the current machine's public IP and location.
type Resolver interface {
	// PublicIP returns the machine's public IP address.
	PublicIP(ctx context.Context) (string, error)

	// Locate resolves the current public IP and its approximate location.
	// Fields that cannot be resolved are set to [Unknown]; Locate only
	// returns an error when no usable IP could be obtained at all.
	Locate(ctx context.Context) (Location, error)
}

type httpResolver struct {
	client *utils.HTTPClient

	locationURL string
	ipURL       string

	logger *logger.Logger
}

// NewHTTPResolver builds a [Resolver] backed by the HTTP lookup endpoints
// from geoCfg.
func NewHTTPResolver(geoCfg config.PortalGeo, logger *logger.Logger) Resolver {
	client := utils.NewHTTPClient()
	client.SetTimeout(geoCfg.RequestTimeout)

	return &httpResolver{
		client:      client,
		locationURL: geoCfg.LocationURL,
		ipURL:       geoCfg.IPURL,
		logger:      logger,
	}
}

// PublicIP queries the IP echo endpoint and returns the reported address.
func (r *httpResolver) PublicIP(ctx context.Context) (string, error) {
	resp, err := r.client.R().SetContext(ctx).Get(r.ipURL)
	if err != nil {
		return "", fmt.Errorf("public ip request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("public ip lookup returned status %d", resp.StatusCode())
	}

	var out struct {
		IP string `json:"ip"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode public ip response: %w", err)
	}
	if strings.TrimSpace(out.IP) == "" {
		return "", fmt.Errorf("public ip lookup returned empty address")
	}

	return strings.TrimSpace(out.IP), nil
}

// Locate queries the geolocation endpoint. When the endpoint is unreachable
// it falls back to [PublicIP] for the address and fills the remaining
// fields with [Unknown].
func (r *httpResolver) Locate(ctx context.Context) (Location, error) {
	loc, err := r.lookupLocation(ctx)
	if err == nil {
		return loc, nil
	}
	r.logger.Warn().Err(err).Msg("location lookup failed, falling back to ip echo")

	ip, ipErr := r.PublicIP(ctx)
	if ipErr != nil {
		return Location{}, fmt.Errorf("resolve public ip: %w", ipErr)
	}

	return Location{IP: ip, Country: Unknown, City: Unknown, Region: Unknown}, nil
}

func (r *httpResolver) lookupLocation(ctx context.Context) (Location, error) {
	resp, err := r.client.R().SetContext(ctx).Get(r.locationURL)
	if err != nil {
		return Location{}, fmt.Errorf("location request: %w", err)
	}
	if resp.IsError() {
		return Location{}, fmt.Errorf("location lookup returned status %d", resp.StatusCode())
	}

	var out struct {
		IP          string `json:"ip"`
		City        string `json:"city"`
		Region      string `json:"region"`
		CountryName string `json:"country_name"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return Location{}, fmt.Errorf("decode location response: %w", err)
	}
	if strings.TrimSpace(out.IP) == "" {
		return Location{}, fmt.Errorf("location lookup returned empty address")
	}

	return Location{
		IP:      strings.TrimSpace(out.IP),
		Country: orUnknown(out.CountryName),
		City:    orUnknown(out.City),
		Region:  orUnknown(out.Region),
	}, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return strings.TrimSpace(s)
}
