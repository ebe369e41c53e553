// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Unset function fields
// return zero values.
type mockAuthService struct {
	registerFn       func(ctx context.Context, c models.Credentials) error
	loginFn          func(ctx context.Context, c models.Credentials) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	updatePasswordFn func(ctx context.Context, u models.PasswordUpdate) error
}

func (m *mockAuthService) Register(ctx context.Context, c models.Credentials) error {
	if m.registerFn == nil {
		return nil
	}
	return m.registerFn(ctx, c)
}

func (m *mockAuthService) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, c)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn == nil {
		return nil, nil
	}
	return m.listUsersFn(ctx)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, u models.PasswordUpdate) error {
	if m.updatePasswordFn == nil {
		return nil
	}
	return m.updatePasswordFn(ctx, u)
}

// mockProductService implements service.ProductService.
type mockProductService struct {
	createFn func(ctx context.Context, p models.ProductCreate) (models.Product, error)
	listFn   func(ctx context.Context, page models.Page) ([]models.Product, error)
	getFn    func(ctx context.Context, id int64) (models.Product, error)
	updateFn func(ctx context.Context, id int64, u models.ProductUpdate) (models.Product, error)
	deleteFn func(ctx context.Context, id int64) (models.Product, error)
}

func (m *mockProductService) Create(ctx context.Context, p models.ProductCreate) (models.Product, error) {
	if m.createFn == nil {
		return models.Product{}, nil
	}
	return m.createFn(ctx, p)
}

func (m *mockProductService) List(ctx context.Context, page models.Page) ([]models.Product, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, page)
}

func (m *mockProductService) Get(ctx context.Context, id int64) (models.Product, error) {
	if m.getFn == nil {
		return models.Product{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockProductService) Update(ctx context.Context, id int64, u models.ProductUpdate) (models.Product, error) {
	if m.updateFn == nil {
		return models.Product{}, nil
	}
	return m.updateFn(ctx, id, u)
}

func (m *mockProductService) Delete(ctx context.Context, id int64) (models.Product, error) {
	if m.deleteFn == nil {
		return models.Product{}, nil
	}
	return m.deleteFn(ctx, id)
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Ping(context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		ProductService: &mockProductService{},
		HealthService:  &mockHealthService{},
	}
}

// newRouter builds the full router over svcs with a no-op logger.
func newRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// serve performs one request against router and returns the recorder.
func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// detailOf decodes the {"detail": ...} body of an error response.
func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

// messageOf decodes the {"message": ...} body of an acknowledgement.
func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}
