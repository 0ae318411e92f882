package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
)

func newTestResolver(t *testing.T, location, ip http.HandlerFunc) Resolver {
	t.Helper()

	mux := http.NewServeMux()
	if location != nil {
		mux.HandleFunc("/location", location)
	}
	if ip != nil {
		mux.HandleFunc("/ip", ip)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewHTTPResolver(config.PortalGeo{
		LocationURL:    srv.URL + "/location",
		IPURL:          srv.URL + "/ip",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
}

func TestHTTPResolver_PublicIP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestResolver(t, nil, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":"203.0.113.7"}`))
		})

		ip, err := r.PublicIP(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.7", ip)
	})

	t.Run("empty address in response", func(t *testing.T) {
		r := newTestResolver(t, nil, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":""}`))
		})

		_, err := r.PublicIP(context.Background())
		assert.Error(t, err)
	})

	t.Run("upstream error status", func(t *testing.T) {
		r := newTestResolver(t, nil, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := r.PublicIP(context.Background())
		assert.Error(t, err)
	})
}

func TestHTTPResolver_Locate(t *testing.T) {
	t.Run("full location", func(t *testing.T) {
		r := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":"203.0.113.7","city":"Hanoi","region":"Ha Noi","country_name":"Vietnam"}`))
		}, nil)

		loc, err := r.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Location{
			IP:      "203.0.113.7",
			Country: "Vietnam",
			City:    "Hanoi",
			Region:  "Ha Noi",
		}, loc)
	})

	t.Run("missing fields become unknown", func(t *testing.T) {
		r := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":"203.0.113.7"}`))
		}, nil)

		loc, err := r.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Unknown, loc.Country)
		assert.Equal(t, Unknown, loc.City)
		assert.Equal(t, Unknown, loc.Region)
	})

	t.Run("location endpoint down falls back to ip echo", func(t *testing.T) {
		r := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":"203.0.113.7"}`))
		})

		loc, err := r.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.7", loc.IP)
		assert.Equal(t, Unknown, loc.Country)
	})

	t.Run("both endpoints down", func(t *testing.T) {
		r := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := r.Locate(context.Background())
		assert.Error(t, err)
	})
}
