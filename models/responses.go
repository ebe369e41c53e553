// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is the acknowledgement body returned by the auth endpoints.
type Message struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

// Acknowledgement messages of the auth endpoints.
const (
	MessageUserRegistered = "User registered successfully"
	MessageLoginSuccess   = "Login successful"
	MessageLogoutSuccess  = "Logout successful"
	MessageProfileUpdated = "Profile updated successfully"
)
