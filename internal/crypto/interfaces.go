// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted digests and
// checks candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns an encoded digest of password. Two calls with the same
	// password return different digests.
	Hash(password string) (string, error)

	// Compare reports whether password matches hashed. A mismatch is
	// reported as ErrPasswordMismatch; any other error means hashed is
	// not a digest produced by Hash.
	Compare(hashed, password string) error
}
