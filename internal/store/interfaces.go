// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists accounts in the "users" table. Every method runs
// on the session handle q.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, q Querier, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrUserNotFound] when nothing matches.
	FindUserByUsername(ctx context.Context, q Querier, username string) (models.User, error)

	// ListUsers returns all users ordered by ID.
	ListUsers(ctx context.Context, q Querier) ([]models.User, error)

	// UpdatePasswordHash overwrites the stored digest of username.
	// Returns [ErrUserNotFound] when no row was changed.
	UpdatePasswordHash(ctx context.Context, q Querier, username, hashedPassword string) error
}

// ProductRepository persists catalogue rows in the "products" table.
type ProductRepository interface {
	CreateProduct(ctx context.Context, q Querier, product models.Product) (models.Product, error)
	ListProducts(ctx context.Context, q Querier, page models.Page) ([]models.Product, error)
	GetProduct(ctx context.Context, q Querier, id int64) (models.Product, error)

	// UpdateProduct writes the non-nil fields of update and stamps
	// updatedAt. Returns [ErrProductNotFound] when id does not exist.
	UpdateProduct(ctx context.Context, q Querier, id int64, update models.ProductUpdate, updatedAt time.Time) error

	// DeleteProduct removes the row. Returns [ErrProductNotFound] when id
	// does not exist.
	DeleteProduct(ctx context.Context, q Querier, id int64) error
}
