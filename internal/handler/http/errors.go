// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors raised by the handlers before the service layer is
// reached. They are mapped to HTTP statuses in errors_mapper.go.
var (
	// ErrNotAuthenticated is returned when the "username" cookie is absent
	// or empty.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the product_id path segment is not an
	// integer.
	ErrInvalidID = errors.New("product_id must be an integer")

	// ErrInvalidQuery is returned when a paging query parameter is not a
	// non-negative integer.
	ErrInvalidQuery = errors.New("invalid query parameter")
)
