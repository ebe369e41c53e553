// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-shop/internal/crypto"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/validators"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"duplicate username", store.ErrUsernameAlreadyExists, http.StatusBadRequest, "Username already registered"},
		{"wrapped duplicate username", fmt.Errorf("create user: %w", store.ErrUsernameAlreadyExists), http.StatusBadRequest, "Username already registered"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"not authenticated", ErrNotAuthenticated, http.StatusUnauthorized, "Not authenticated"},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"product not found", store.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"invalid JSON", ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
		{"invalid id", ErrInvalidID, http.StatusUnprocessableEntity, "product_id must be an integer"},
		{"field errors", validators.FieldErrors{"name is required"}, http.StatusUnprocessableEntity, "name is required"},
		{"bare validation sentinel", validators.ErrValidationFailed, http.StatusUnprocessableEntity, "validation failed"},
		{"password too long", crypto.ErrPasswordTooLong, http.StatusUnprocessableEntity, "password is too long"},
		{"storage failure hides driver text", fmt.Errorf("%w: pq: relation missing", store.ErrExecutingQuery), http.StatusInternalServerError, "Internal Server Error"},
		{"request deadline", fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded), http.StatusGatewayTimeout, "Gateway Timeout"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestWriteError_WritesDetailBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	writeError(rec, req, store.ErrProductNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Product not found"}`, rec.Body.String())
}
