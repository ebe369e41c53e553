// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
)

type productService struct {
	sessions          store.SessionProvider
	productRepository store.ProductRepository

	// now stamps created_at and updated_at.
	now func() time.Time

	logger *logger.Logger
}

func NewProductService(sessions store.SessionProvider, productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		sessions:          sessions,
		productRepository: productRepository,
		now:               utcNow,
		logger:            logger,
	}
}

// utcNow is truncated to microseconds, the finest precision every
// supported database keeps.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (p *productService) Create(ctx context.Context, create models.ProductCreate) (models.Product, error) {
	now := p.now()
	product := models.Product{
		Name:        create.Name,
		Description: create.Description,
		Price:       create.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := p.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		product, err = p.productRepository.CreateProduct(ctx, q, product)
		return err
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("error creating product: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", product.ID).Msg("product created")
	return product, nil
}

func (p *productService) List(ctx context.Context, page models.Page) ([]models.Product, error) {
	var products []models.Product
	err := p.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		products, err = p.productRepository.ListProducts(ctx, q, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	return products, nil
}

func (p *productService) Get(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	err := p.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		product, err = p.productRepository.GetProduct(ctx, q, id)
		return err
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("error getting product %d: %w", id, err)
	}

	return product, nil
}

// Update applies a partial update and returns the stored result. An empty
// update changes nothing, not even updated_at.
func (p *productService) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	var product models.Product
	err := p.sessions.WithTx(ctx, func(ctx context.Context, q store.Querier) error {
		if !update.IsEmpty() {
			if err := p.productRepository.UpdateProduct(ctx, q, id, update, p.now()); err != nil {
				return err
			}
		}

		var err error
		product, err = p.productRepository.GetProduct(ctx, q, id)
		return err
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("error updating product %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Msg("product updated")
	return product, nil
}

func (p *productService) Delete(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	err := p.sessions.WithTx(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		if product, err = p.productRepository.GetProduct(ctx, q, id); err != nil {
			return err
		}

		return p.productRepository.DeleteProduct(ctx, q, id)
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("error deleting product %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Msg("product deleted")
	return product, nil
}
