// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-shop/internal/logger"

// Storages groups the session provider and repositories built over one
// database.
type Storages struct {
	DB                *DB
	Sessions          SessionProvider
	UserRepository    UserRepository
	ProductRepository ProductRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                db,
		Sessions:          NewSessionProvider(db),
		UserRepository:    NewUserRepository(db.Dialect(), logger),
		ProductRepository: NewProductRepository(db.Dialect(), logger),
	}
}
