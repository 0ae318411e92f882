package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/models"
)

func TestWithGZip_CompressesResponse(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/rules", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestWithGZip_PlainResponseWithoutAcceptEncoding(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/rules", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "[]", rr.Body.String())
}

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	var gotRow json.RawMessage
	tables := &mockTables{
		insertFn: func(_ context.Context, _ string, row json.RawMessage) error {
			gotRow = row
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(`{"id":"VN-WP-000001"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/data/applications", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"VN-WP-000001"}`, string(gotRow))
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/data/applications",
		strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/rules", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_EchoesProvidedID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/rules", nil)
	req.Header.Set(traceIDHeader, "portal-session-42")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "portal-session-42", rr.Header().Get(traceIDHeader))
}

func TestRequireAuth_HeaderErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ErrEmptyAuthorizationHeader.Error()},
		{"no token", "Bearer", ErrInvalidAuthorizationHeader.Error()},
		{"empty token", "Bearer ", ErrEmptyToken.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/data/logs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	auth := &mockAuthSvc{
		parseFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	router := newAuthRouter(t, auth)

	req := httptest.NewRequest(http.MethodDelete, "/api/data/logs", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ErrTokenIsExpired.Error())
}

func TestRequireAuth_PassesTokenString(t *testing.T) {
	var gotToken string
	auth := &mockAuthSvc{
		parseFn: func(_ context.Context, tokenString string) (models.Token, error) {
			gotToken = tokenString
			return models.Token{Username: "inspector"}, nil
		},
	}
	router := newAuthRouter(t, auth)

	req := httptest.NewRequest(http.MethodDelete, "/api/data/logs", nil)
	req.Header.Set("Authorization", "Bearer signed.jwt.token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "signed.jwt.token", gotToken)
}
