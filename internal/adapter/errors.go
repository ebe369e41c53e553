// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for the HTTP statuses the server produces.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("not authenticated")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ErrUsernameTaken is the 400 of a registration whose username exists. It
// matches ErrBadRequest as well.
var ErrUsernameTaken = fmt.Errorf("%w: username taken", ErrBadRequest)
