// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product is a catalogue row of the "products" table.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductCreate is the body of a product creation request.
type ProductCreate struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=4096"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// ProductUpdate is the body of a product update request.
// Only non-nil fields are written (partial update).
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=4096"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the update carries no fields.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil
}

// Default paging values of the product list.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page selects a window of an ordered listing.
type Page struct {
	Skip  uint64 `json:"skip" validate:"lte=9223372036854775807"`
	Limit uint64 `json:"limit" validate:"gte=1,lte=1000"`
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultPageLimit}
}
