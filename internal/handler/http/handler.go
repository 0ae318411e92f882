package http

import (
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/store"
)

type Handler struct {
	auth     service.AuthService
	storages *store.Storages

	logger *logger.Logger
}

func NewHandler(auth service.AuthService, storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		auth:     auth,
		storages: storages,
		logger:   logger,
	}
}
