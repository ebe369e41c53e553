// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

func newTestClient(t *testing.T, serverURL string) ShopClient {
	t.Helper()
	c, err := NewHTTPShopClient(config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash trimmed", raw: "https://shop.example/", want: "https://shop.example"},
		{name: "bare host and port", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "surrounding spaces", raw: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPShopClient_InvalidURL(t *testing.T) {
	_, err := NewHTTPShopClient(config.Adapter{}, logger.Nop())

	assert.Error(t, err)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRegister_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/register", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(traceIDHeader))

		var c models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "pw"}, c)

		writeJSON(t, w, http.StatusOK, models.Message{Message: models.MessageUserRegistered})
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
}

func TestLogin_SendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("username"))
		assert.Equal(t, "p&w", r.URL.Query().Get("password"))

		writeJSON(t, w, http.StatusOK, models.Message{Message: models.MessageLoginSuccess})
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice", Password: "p&w"})

	require.NoError(t, err)
}

func TestProfile_Cookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(usernameCookie)
		if err != nil {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Not authenticated"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.Profile{Username: cookie.Value})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	profile, err := c.Profile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)

	_, err = c.Profile(context.Background(), "")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Not authenticated")
}

func TestUpdateProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "bob", r.URL.Query().Get("username"))
		assert.Equal(t, "n3w", r.URL.Query().Get("new_password"))
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "User not found"})
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).UpdateProfile(context.Background(), models.PasswordUpdate{Username: "bob", NewPassword: "n3w"})

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "User not found")
}

// ── products ─────────────────────────────────────────────────────────────────

func TestListProducts_SendsPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("skip"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []models.Product{{ID: 6, Name: "lamp"}})
	}))
	defer srv.Close()

	products, err := newTestClient(t, srv.URL).ListProducts(context.Background(), models.Page{Skip: 5, Limit: 10})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(6), products[0].ID)
}

func TestProductCalls_PathAndMethod(t *testing.T) {
	tests := []struct {
		name       string
		call       func(ShopClient) (models.Product, error)
		wantMethod string
	}{
		{"get", func(c ShopClient) (models.Product, error) { return c.GetProduct(context.Background(), 12) }, http.MethodGet},
		{"update", func(c ShopClient) (models.Product, error) {
			name := "lamp"
			return c.UpdateProduct(context.Background(), 12, models.ProductUpdate{Name: &name})
		}, http.MethodPut},
		{"delete", func(c ShopClient) (models.Product, error) { return c.DeleteProduct(context.Background(), 12) }, http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, "/products/12", r.URL.Path)
				writeJSON(t, w, http.StatusOK, models.Product{ID: 12, Name: "lamp"})
			}))
			defer srv.Close()

			product, err := tt.call(newTestClient(t, srv.URL))

			require.NoError(t, err)
			assert.Equal(t, int64(12), product.ID)
		})
	}
}

func TestUpdateProduct_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{"price": 3.5}, raw)
		writeJSON(t, w, http.StatusOK, models.Product{ID: 1, Price: 3.5})
	}))
	defer srv.Close()

	price := 3.5
	_, err := newTestClient(t, srv.URL).UpdateProduct(context.Background(), 1, models.ProductUpdate{Price: &price})

	require.NoError(t, err)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
	}{
		{"bad request", http.StatusBadRequest, `{"detail":"Invalid credentials"}`, ErrBadRequest, "Invalid credentials"},
		{"unauthorized", http.StatusUnauthorized, `{"detail":"Not authenticated"}`, ErrUnauthorized, "Not authenticated"},
		{"not found", http.StatusNotFound, `{"detail":"Product not found"}`, ErrNotFound, "Product not found"},
		{"username taken", http.StatusBadRequest, `{"detail":"Username already registered"}`, ErrUsernameTaken, "Username already registered"},
		{"username taken is a bad request", http.StatusBadRequest, `{"detail":"Username already registered"}`, ErrBadRequest, "Username already registered"},
		{"unprocessable", http.StatusUnprocessableEntity, `{"detail":"name is required"}`, ErrUnprocessable, "name is required"},
		{"internal", http.StatusInternalServerError, `{"detail":"Internal Server Error"}`, ErrInternalServerError, "Internal Server Error"},
		{"unavailable with non-detail body", http.StatusServiceUnavailable, `{"status":"unavailable"}`, ErrServiceUnavailable, `{"status":"unavailable"}`},
		{"plain text body", http.StatusNotFound, "404 page not found", ErrNotFound, "404 page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(t, srv.URL).Health(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantDetail)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).Logout(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestRequest_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).ListUsers(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
