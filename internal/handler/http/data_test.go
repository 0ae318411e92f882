// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vndocs/govportal/internal/store"
)

func TestListRows_ReturnsRows(t *testing.T) {
	tables := &mockTables{
		listFn: func(_ context.Context, table, orderBy string, ascending bool) ([]json.RawMessage, error) {
			assert.Equal(t, "applications", table)
			assert.Equal(t, "submission_date", orderBy)
			assert.False(t, ascending)
			return []json.RawMessage{
				json.RawMessage(`{"id":"VN-WP-000002"}`),
				json.RawMessage(`{"id":"VN-WP-000001"}`),
			}, nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodGet,
		"/api/data/applications?order_by=submission_date&ascending=false", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":"VN-WP-000002"},{"id":"VN-WP-000001"}]`, rr.Body.String())
}

func TestListRows_EmptyTableIsEmptyArray(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/rules", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestListRows_UnknownTable(t *testing.T) {
	tables := &mockTables{
		listFn: func(_ context.Context, _, _ string, _ bool) ([]json.RawMessage, error) {
			return nil, store.ErrTableUnknown
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/data/accounts", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetRow_Found(t *testing.T) {
	tables := &mockTables{
		getFn: func(_ context.Context, table, id string) (json.RawMessage, error) {
			assert.Equal(t, "records", table)
			assert.Equal(t, "GV-2024-001", id)
			return json.RawMessage(`{"id":"GV-2024-001","status":"Verified"}`), nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/data/records/GV-2024-001", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"GV-2024-001","status":"Verified"}`, rr.Body.String())
}

func TestGetRow_NotFound(t *testing.T) {
	tables := &mockTables{
		getFn: func(_ context.Context, _, _ string) (json.RawMessage, error) {
			return nil, store.ErrRowNotFound
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/data/records/GV-0000-000", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInsertRow_Created(t *testing.T) {
	var gotRow json.RawMessage
	tables := &mockTables{
		insertFn: func(_ context.Context, table string, row json.RawMessage) error {
			assert.Equal(t, "applications", table)
			gotRow = row
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	body := strings.NewReader(`{"id":"VN-WP-000001","status":"Submitted"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/data/applications", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"VN-WP-000001","status":"Submitted"}`, string(gotRow))
}

func TestInsertRow_Duplicate(t *testing.T) {
	tables := &mockTables{
		insertFn: func(_ context.Context, _ string, _ json.RawMessage) error {
			return store.ErrRowExists
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	body := strings.NewReader(`{"id":"VN-WP-000001"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/data/applications", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestInsertRow_MissingID(t *testing.T) {
	tables := &mockTables{
		insertFn: func(_ context.Context, _ string, _ json.RawMessage) error {
			return store.ErrRowMissingID
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/data/applications",
		strings.NewReader(`{"status":"Submitted"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateRow_Patched(t *testing.T) {
	var gotPatch json.RawMessage
	tables := &mockTables{
		updateFn: func(_ context.Context, table, id string, patch json.RawMessage) error {
			assert.Equal(t, "applications", table)
			assert.Equal(t, "VN-WP-000001", id)
			gotPatch = patch
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	body := strings.NewReader(`{"status":"Approved"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/data/applications/VN-WP-000001", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Approved"}`, string(gotPatch))
}

func TestUpdateRow_NotFound(t *testing.T) {
	tables := &mockTables{
		updateFn: func(_ context.Context, _, _ string, _ json.RawMessage) error {
			return store.ErrRowNotFound
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/data/applications/VN-WP-999999",
		strings.NewReader(`{"status":"Approved"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpsertRow_OK(t *testing.T) {
	var gotTable string
	tables := &mockTables{
		upsertFn: func(_ context.Context, table string, _ json.RawMessage) error {
			gotTable = table
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	body := strings.NewReader(`{"id":"DEV-0a1b2c3d","status":"Active"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/data/devices", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "devices", gotTable)
}

func TestDeleteRow_OK(t *testing.T) {
	var gotID string
	tables := &mockTables{
		deleteFn: func(_ context.Context, _, id string) error {
			gotID = id
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/data/records/GV-2024-001", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "GV-2024-001", gotID)
}

func TestDeleteRow_NotFound(t *testing.T) {
	tables := &mockTables{
		deleteFn: func(_ context.Context, _, _ string) error {
			return store.ErrRowNotFound
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/data/records/GV-0000-000", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteAllRows_WithToken(t *testing.T) {
	var gotTable string
	tables := &mockTables{
		deleteAllFn: func(_ context.Context, table string) error {
			gotTable = table
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/data/logs", nil)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logs", gotTable)
}

func TestDeleteAllRows_NoToken(t *testing.T) {
	called := false
	tables := &mockTables{
		deleteAllFn: func(_ context.Context, _ string) error {
			called = true
			return nil
		},
	}
	router := newTestHandler(t, tables, nil).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/data/logs", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called, "repository must not be reached without a token")
}
