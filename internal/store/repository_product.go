// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

// productRepository is the SQL implementation of [ProductRepository].
type productRepository struct {
	dialect Dialect
	logger  *logger.Logger
}

func NewProductRepository(dialect Dialect, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		dialect: dialect,
		logger:  logger,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, q Querier, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(r.dialect.builder(), product)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("failed to create query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = q.QueryRowContext(ctx, query, args...).Scan(&product.ID); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

// ListProducts returns one page of products ordered by id. An empty page
// is an empty, non-nil slice.
func (r *productRepository) ListProducts(ctx context.Context, q Querier, page models.Page) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsQuery(r.dialect.builder(), page)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.ListProducts").
			Uint64("skip", page.Skip).
			Uint64("limit", page.Limit).
			Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, page.Limit)
	for rows.Next() {
		var product models.Product
		if err = scanProduct(rows, &product); err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, q Querier, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductQuery(r.dialect.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("failed to create query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	err = scanProduct(q.QueryRowContext(ctx, query, args...), &product)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Int64("product_id", id).Msg("error getting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, q Querier, id int64, update models.ProductUpdate, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(r.dialect.builder(), id, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execSingleRow(ctx, q, "*productRepository.UpdateProduct", id, query, args)
}

func (r *productRepository) DeleteProduct(ctx context.Context, q Querier, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(r.dialect.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execSingleRow(ctx, q, "*productRepository.DeleteProduct", id, query, args)
}

// execSingleRow runs a statement addressed by product id and reports
// [ErrProductNotFound] when it touched no row.
func (r *productRepository) execSingleRow(ctx context.Context, q Querier, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("product_id", id).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, product *models.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}
