// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable "detail" strings written into error
// response bodies, keeping the API wording in one place.
package app

const (
	// MsgUsernameAlreadyRegistered answers a registration with a taken
	// username.
	MsgUsernameAlreadyRegistered = "Username already registered"

	// MsgInvalidCredentials answers a login with an unknown username or a
	// wrong password. The two cases are not told apart.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNotAuthenticated answers a profile request without the username
	// cookie.
	MsgNotAuthenticated = "Not authenticated"

	MsgUserNotFound    = "User not found"
	MsgProductNotFound = "Product not found"

	// MsgInvalidJSON answers a request whose body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	MsgPasswordTooLong = "password is too long"
)
