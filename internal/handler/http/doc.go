// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the go-shop server.
//
// It wires the /users and /products route groups, the health and metrics
// endpoints, and the middleware chain (panic recovery, request tracing,
// access logging, Prometheus metrics, CORS) in front of the service layer.
// Every non-2xx response carries a JSON body of the form {"detail": "..."}.
package http
