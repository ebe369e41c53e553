// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// AuthService implements the account use cases. Each call takes exactly one
// database session.
type AuthService interface {
	// Register creates an account. A taken username yields
	// store.ErrUsernameAlreadyExists.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login checks credentials and returns the matching user. Unknown users
	// and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdatePassword rehashes the password of an existing account.
	// Unknown usernames yield store.ErrUserNotFound.
	UpdatePassword(ctx context.Context, update models.PasswordUpdate) error
}

// ProductService implements the product catalogue use cases.
type ProductService interface {
	Create(ctx context.Context, product models.ProductCreate) (models.Product, error)
	List(ctx context.Context, page models.Page) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)

	// Delete removes the product and returns its last state.
	Delete(ctx context.Context, id int64) (models.Product, error)
}

// HealthService reports whether the backing database is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProductServiceWrapper defines middleware composition for ProductService.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
