// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// ShopClient mirrors the server's REST surface one method per endpoint.
type ShopClient interface {
	Register(ctx context.Context, credentials models.Credentials) error
	Login(ctx context.Context, credentials models.Credentials) error
	ListUsers(ctx context.Context) ([]models.User, error)
	Logout(ctx context.Context) error

	// Profile sends username as the "username" cookie. An empty username
	// sends no cookie.
	Profile(ctx context.Context, username string) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.PasswordUpdate) error

	CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error)
	ListProducts(ctx context.Context, page models.Page) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (models.Product, error)

	// Health returns nil when the server reports a reachable database.
	Health(ctx context.Context) error
}
