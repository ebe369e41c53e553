// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/crypto"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ProductService ProductService
	HealthService  HealthService
}

// NewServices builds the use cases over storages. Auth and product
// services are wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewStructValidator()
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)

	authService := NewAuthService(storages.Sessions, storages.UserRepository, hasher, logger)
	productService := NewProductService(storages.Sessions, storages.ProductRepository, logger)

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		ProductService: NewProductValidationService(validator).Wrap(productService),
		HealthService:  NewHealthService(storages.DB),
	}
}
