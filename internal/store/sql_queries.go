// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop/models"
)

var (
	userColumns    = []string{"id", "username", "hashed_password"}
	productColumns = []string{"id", "name", "description", "price", "created_at", "updated_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "hashed_password").
		Values(user.Username, user.HashedPassword).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, username, hashedPassword string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("hashed_password", hashedPassword).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertProductQuery(b sq.StatementBuilderType, product models.Product) (string, []any, error) {
	return b.Insert(product.TableName()).
		Columns("name", "description", "price", "created_at", "updated_at").
		Values(product.Name, product.Description, product.Price, product.CreatedAt, product.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectProductsQuery(b sq.StatementBuilderType, page models.Page) (string, []any, error) {
	return b.Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Skip).
		ToSql()
}

func buildSelectProductQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateProductQuery sets only the fields present in update.
func buildUpdateProductQuery(b sq.StatementBuilderType, id int64, update models.ProductUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update(models.Product{}.TableName())

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Price != nil {
		query = query.Set("price", *update.Price)
	}

	return query.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteProductQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
