// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-shop/internal/validators"
	"github.com/MKhiriev/go-shop/models"
)

// AuthValidationService rejects malformed input before it reaches the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) error {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return err
	}

	return v.inner.Register(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *AuthValidationService) UpdatePassword(ctx context.Context, update models.PasswordUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return err
	}

	return v.inner.UpdatePassword(ctx, update)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// ProductValidationService rejects malformed product input and paging.
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService(validator validators.Validator) ProductServiceWrapper {
	return &ProductValidationService{validator: validator}
}

func (v *ProductValidationService) Create(ctx context.Context, product models.ProductCreate) (models.Product, error) {
	if err := v.validator.Validate(ctx, product); err != nil {
		return models.Product{}, err
	}

	return v.inner.Create(ctx, product)
}

func (v *ProductValidationService) List(ctx context.Context, page models.Page) ([]models.Product, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return nil, err
	}

	return v.inner.List(ctx, page)
}

func (v *ProductValidationService) Get(ctx context.Context, id int64) (models.Product, error) {
	return v.inner.Get(ctx, id)
}

func (v *ProductValidationService) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Product{}, err
	}

	return v.inner.Update(ctx, id, update)
}

func (v *ProductValidationService) Delete(ctx context.Context, id int64) (models.Product, error) {
	return v.inner.Delete(ctx, id)
}

func (v *ProductValidationService) Wrap(inner ProductService) ProductService {
	v.inner = inner
	return v
}
