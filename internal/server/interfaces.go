// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received or the
// listener fails, then shuts down gracefully.
type Server interface {
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
