// Package tui implements the terminal front end of the portal: the public
// landing, verification and application screens plus the hidden management
// console, all as one Bubble Tea program.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vndocs/govportal/internal/adapter"
	"github.com/vndocs/govportal/internal/geoip"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/utils"
)

// Services bundles everything the screens need: the in-memory portal state,
// the verification engine, the backend gateway and the location resolver
// backing the console device gate.
type Services struct {
	State    *service.AppState
	Verifier *service.Verifier
	Gateway  adapter.Gateway
	Geo      geoip.Resolver

	// UploadBucket is the storage bucket console uploads go to.
	UploadBucket string

	ids utils.UUIDGenerator
}

// NewID returns a fresh identifier for audit entries.
func (s *Services) NewID() string {
	return s.ids.Generate()
}

type TUI struct {
	services *Services
	logger   *logger.Logger
}

func New(services *Services, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run drives the portal UI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
