// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed HTTP client for the go-shop REST API.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go with the
// server's "detail" text attached, so callers can branch with [errors.Is].
package adapter
