// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package models

import "github.com/shopspring/decimal"

// SettingsKey is the id of the single settings row holding the serialized
// site configuration.
const SettingsKey = "site_config"

// PaymentMethod is a named settlement channel (bank transfer or crypto
// wallet) offered to applicants. Methods live inside the site configuration
// rather than in their own table.
type PaymentMethod struct {
	// Name is the display label, e.g. "Vietcombank".
	Name string `json:"name"`

	// Kind is "bank" or "crypto".
	Kind string `json:"kind"`

	// AccountName and AccountNumber identify the receiving account; for
	// crypto methods AccountNumber holds the wallet address.
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`

	// Network is the chain for crypto methods ("TRC20", "ERC20"), empty
	// for banks.
	Network string `json:"network,omitempty"`

	// Enabled hides the method from the portal when false.
	Enabled bool `json:"enabled"`
}

// ServiceDesc describes one document service on the portal landing pages.
type ServiceDesc struct {
	// Title is the display name of the service.
	Title string `json:"title"`

	// Fee is the service fee in VND.
	Fee decimal.Decimal `json:"fee"`

	// Open controls whether new applications of this type are accepted.
	Open bool `json:"open"`
}

// Theme holds cosmetic display values used by the portal shell.
type Theme struct {
	PrimaryColor string `json:"primary_color"`
	AccentColor  string `json:"accent_color"`
	BannerText   string `json:"banner_text"`
}

// AppConfig is the singleton site configuration. It is loaded once at portal
// start and replaced wholesale on every update; there are no partial patch
// semantics for settings.
type AppConfig struct {
	// Services maps each document type to its descriptor.
	Services map[DocumentType]ServiceDesc `json:"services"`

	// PaymentMethods lists every configured settlement channel.
	PaymentMethods []PaymentMethod `json:"payment_methods"`

	// Theme holds cosmetic values.
	Theme Theme `json:"theme"`
}

// TableName returns the backend table holding the settings singleton.
func (AppConfig) TableName() string {
	return "settings"
}

// ServiceFor returns the descriptor for the given document type, falling
// back to a closed zero-fee service when the configuration has no entry.
func (c AppConfig) ServiceFor(t DocumentType) ServiceDesc {
	if c.Services != nil {
		if svc, ok := c.Services[t]; ok {
			return svc
		}
	}
	return ServiceDesc{Title: string(t), Fee: decimal.Zero, Open: false}
}

// DefaultConfig returns the configuration used before the first settings
// fetch succeeds and when the settings row has never been written.
func DefaultConfig() AppConfig {
	return AppConfig{
		Services: map[DocumentType]ServiceDesc{
			WorkPermit: {Title: "Work Permit", Fee: decimal.NewFromInt(12_000_000), Open: true},
			Visa:       {Title: "Visa", Fee: decimal.NewFromInt(4_500_000), Open: true},
			TRC:        {Title: "Temporary Residence Card", Fee: decimal.NewFromInt(9_000_000), Open: true},
		},
		PaymentMethods: nil,
		Theme:          Theme{PrimaryColor: "#c8102e", AccentColor: "#ffcd00", BannerText: "SOCIALIST REPUBLIC OF VIETNAM"},
	}
}
