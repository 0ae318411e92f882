package client

import (
	"context"
	"fmt"

	"github.com/vndocs/govportal/internal/adapter"
	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/geoip"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/tui"
	"github.com/vndocs/govportal/internal/workers"
)

// Client is the minimal lifecycle contract for runnable portal
// applications.
type Client interface {
	// Run starts the portal and blocks until exit.
	Run() error
}

type App struct {
	cfg      config.PortalConfig
	services *tui.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg config.PortalConfig, log *logger.Logger) (*App, error) {
	gateway, err := adapter.NewHTTPGateway(cfg.Gateway, log)
	if err != nil {
		return nil, fmt.Errorf("create backend gateway: %w", err)
	}

	geo := geoip.NewHTTPResolver(cfg.Geo, log)
	state := service.NewAppState(gateway, geo, log)
	verifier := service.NewVerifier(state, log)

	services := &tui.Services{
		State:        state,
		Verifier:     verifier,
		Gateway:      gateway,
		Geo:          geo,
		UploadBucket: cfg.Gateway.UploadBucket,
	}

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial load is best effort: the portal starts on defaults when the
	// backend is unreachable and the refresh job catches up later.
	a.services.State.RefreshAllData(ctx)

	refresh := workers.NewRefreshJob(ctx, a.services.State, a.cfg.Workers.RefreshInterval, a.logger)
	workers.NewWorkers(refresh).Run()

	return a.ui.Run(ctx)
}
