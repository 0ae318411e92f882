package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/store"
	"github.com/vndocs/govportal/models"
)

func newAuthRouter(t *testing.T, auth *mockAuthSvc) http.Handler {
	t.Helper()
	h := NewHandler(auth,
		&store.Storages{Tables: &mockTables{}, Files: &mockFiles{root: t.TempDir()}},
		logger.Nop())
	return h.Init()
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, username, password string) (models.Token, error) {
			assert.Equal(t, "admin", username)
			assert.Equal(t, "s3cret", password)
			return models.Token{SignedString: "signed.jwt.token", Username: username}, nil
		},
	}
	router := newAuthRouter(t, auth)

	body := strings.NewReader(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	router := newAuthRouter(t, &mockAuthSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}
	router := newAuthRouter(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(t, auth)

	body := strings.NewReader(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, errors.New("signing failure")
		},
	}
	router := newAuthRouter(t, auth)

	body := strings.NewReader(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
