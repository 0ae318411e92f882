package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
)

func newTestGateway(t *testing.T, handler http.Handler) Gateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := NewHTTPGateway(config.PortalGateway{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return gw
}

func TestNewHTTPGateway(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080"},
		{name: "host and port only", address: "localhost:8080"},
		{name: "trailing slash", address: "http://localhost:8080/"},
		{name: "empty address", address: "", wantErr: true},
		{name: "whitespace only", address: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPGateway(config.PortalGateway{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPGateway_Login(t *testing.T) {
	t.Run("success stores bearer token", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "admin", creds["username"])
			assert.Equal(t, "secret", creds["password"])

			w.Header().Set("Authorization", "Bearer test-token-123")
			w.WriteHeader(http.StatusOK)
		}))

		token, err := gw.Login(context.Background(), "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, "test-token-123", token.SignedString)
		assert.Equal(t, "admin", token.Username)
		assert.Equal(t, "test-token-123", gw.Token())
	})

	t.Run("wrong credentials", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := gw.Login(context.Background(), "admin", "wrong")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, gw.Token())
	})

	t.Run("missing authorization header", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		_, err := gw.Login(context.Background(), "admin", "secret")
		assert.Error(t, err)
	})
}

func TestHTTPGateway_List(t *testing.T) {
	t.Run("decodes rows", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/data/applications", r.URL.Path)
			assert.Equal(t, "created_at", r.URL.Query().Get("order_by"))
			assert.Equal(t, "false", r.URL.Query().Get("ascending"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"VN-WP-000001"},{"id":"VN-WP-000002"}]`))
		}))

		rows, err := gw.List(context.Background(), "applications", "created_at", false)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.JSONEq(t, `{"id":"VN-WP-000001"}`, string(rows[0]))
	})

	t.Run("no ordering params when orderBy empty", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("order_by"))
			assert.False(t, r.URL.Query().Has("ascending"))
			_, _ = w.Write([]byte(`[]`))
		}))

		rows, err := gw.List(context.Background(), "audit_logs", "", true)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("server error", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		_, err := gw.List(context.Background(), "applications", "", true)
		assert.ErrorIs(t, err, ErrServerUnavailable)
	})
}

func TestHTTPGateway_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrInvalidRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "internal error", status: http.StatusInternalServerError, want: ErrServerUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrServerUnavailable},
		{name: "service unavailable", status: http.StatusServiceUnavailable, want: ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := gw.GetOne(context.Background(), "records", "REC-1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPGateway_GetOne(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/data/official_records/REC-1", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"REC-1","status":"Verified"}`))
		}))

		row, err := gw.GetOne(context.Background(), "official_records", "REC-1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"REC-1","status":"Verified"}`, string(row))
	})

	t.Run("not found", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "row not found", http.StatusNotFound)
		}))

		_, err := gw.GetOne(context.Background(), "official_records", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHTTPGateway_Writes(t *testing.T) {
	type row struct {
		ID string `json:"id"`
	}

	t.Run("insert", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/data/applications", r.URL.Path)

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"id":"VN-VISA-123456"}`, string(body))
			w.WriteHeader(http.StatusCreated)
		}))

		assert.NoError(t, gw.Insert(context.Background(), "applications", row{ID: "VN-VISA-123456"}))
	})

	t.Run("update sends patch", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/data/applications/VN-VISA-123456", r.URL.Path)

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"status":"Approved"}`, string(body))
		}))

		err := gw.Update(context.Background(), "applications", "VN-VISA-123456",
			map[string]string{"status": "Approved"})
		assert.NoError(t, err)
	})

	t.Run("upsert", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/data/devices", r.URL.Path)
		}))

		assert.NoError(t, gw.Upsert(context.Background(), "devices", row{ID: "DEV-1"}))
	})

	t.Run("delete one", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/data/devices/DEV-1", r.URL.Path)
		}))

		assert.NoError(t, gw.Delete(context.Background(), "devices", "DEV-1"))
	})

	t.Run("writes carry bearer token when set", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer console-token", r.Header.Get("Authorization"))
		}))
		gw.SetToken("console-token")

		assert.NoError(t, gw.Insert(context.Background(), "audit_logs", row{ID: "1"}))
	})
}

func TestHTTPGateway_DeleteAll(t *testing.T) {
	t.Run("authorized", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/data/audit_logs", r.URL.Path)
			assert.Equal(t, "Bearer console-token", r.Header.Get("Authorization"))
		}))
		gw.SetToken("console-token")

		assert.NoError(t, gw.DeleteAll(context.Background(), "audit_logs"))
	})

	t.Run("refused without token", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				http.Error(w, "client unauthorized", http.StatusUnauthorized)
				return
			}
		}))

		assert.ErrorIs(t, gw.DeleteAll(context.Background(), "audit_logs"), ErrUnauthorized)
	})
}

func TestHTTPGateway_Storage(t *testing.T) {
	t.Run("upload returns public url", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/storage/records", r.URL.Path)
			assert.Equal(t, "permit.pdf", r.URL.Query().Get("name"))

			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, []byte{0x25, 0x50, 0x44, 0x46}, body)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"url":"http://files.local/records/abc-permit.pdf"}`))
		}))
		gw.SetToken("console-token")

		url, err := gw.UploadFile(context.Background(), "records", "permit.pdf", []byte{0x25, 0x50, 0x44, 0x46})
		require.NoError(t, err)
		assert.Equal(t, "http://files.local/records/abc-permit.pdf", url)
	})

	t.Run("remove file", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/storage/records/abc-permit.pdf", r.URL.Path)
		}))
		gw.SetToken("console-token")

		assert.NoError(t, gw.RemoveFile(context.Background(), "records", "abc-permit.pdf"))
	})

	t.Run("remove missing file maps to not found", func(t *testing.T) {
		gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "row not found", http.StatusNotFound)
		}))
		gw.SetToken("console-token")

		err := gw.RemoveFile(context.Background(), "records", "gone.pdf")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
