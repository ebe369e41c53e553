// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an account row of the "users" table.
//
// HashedPassword is an opaque bcrypt digest and is never serialized, so a
// User can be written to a response as the public {id, username} pair.
type User struct {
	// ID is assigned by the database on insert.
	ID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// HashedPassword holds the bcrypt digest of the user's password.
	HashedPassword string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of a registration request and the query of a
// login request.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PasswordUpdate carries the query parameters of a profile update.
type PasswordUpdate struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// Profile is the response of the profile endpoint.
type Profile struct {
	Username string `json:"username"`
}
