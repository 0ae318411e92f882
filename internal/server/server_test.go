package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
)

func TestNewServer_RequiresAddress(t *testing.T) {
	_, err := NewServer(http.NewServeMux(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddressConfigured)
}

func TestNewServer_ConfiguresTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	}

	srv, err := NewServer(http.NewServeMux(), cfg, logger.Nop())
	require.NoError(t, err)

	s, ok := srv.(*server)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.Addr)
	assert.Equal(t, 5*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.WriteTimeout)
}
