// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop/internal/crypto"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with a [crypto.PasswordHasher] and persists accounts
// through a UserRepository, one session per call.
type authService struct {
	// sessions hands out the database session of each call.
	sessions store.SessionProvider

	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks password digests.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(sessions store.SessionProvider, userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		sessions:       sessions,
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The username is looked up first and a hit yields
// store.ErrUsernameAlreadyExists, whatever the password. The check is not
// atomic with the insert; a concurrent registration that wins the race is
// rejected by the unique constraint and reported with the same error.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	return a.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		_, err := a.userRepository.FindUserByUsername(ctx, q, credentials.Username)
		switch {
		case err == nil:
			log.Debug().Str("username", credentials.Username).Msg("username is already registered")
			return store.ErrUsernameAlreadyExists
		case !errors.Is(err, store.ErrUserNotFound):
			return fmt.Errorf("user search by username failed: %w", err)
		}

		hashed, err := a.hasher.Hash(credentials.Password)
		if err != nil {
			log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
			return fmt.Errorf("error hashing password: %w", err)
		}

		user := models.User{
			Username:       credentials.Username,
			HashedPassword: hashed,
		}
		if _, err = a.userRepository.CreateUser(ctx, q, user); err != nil {
			return fmt.Errorf("user creation ended with error: %w", err)
		}

		log.Info().Str("username", credentials.Username).Msg("user registered")
		return nil
	})
}

// Login authenticates an existing user. No token or session artifact is
// produced.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := a.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		user, err = a.userRepository.FindUserByUsername(ctx, q, credentials.Username)
		return err
	})
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", credentials.Username).Msg("login of unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = a.hasher.Compare(user.HashedPassword, credentials.Password)
	if errors.Is(err, crypto.ErrPasswordMismatch) {
		log.Debug().Str("username", credentials.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.ID).Msg("stored password digest is unusable")
		return models.User{}, fmt.Errorf("error checking password: %w", err)
	}

	return user, nil
}

func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := a.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		users, err = a.userRepository.ListUsers(ctx, q)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// UpdatePassword overwrites the password digest of update.Username. The
// caller is not authenticated. An unknown username is reported as
// store.ErrUserNotFound before the new password is looked at.
func (a *authService) UpdatePassword(ctx context.Context, update models.PasswordUpdate) error {
	log := logger.FromContext(ctx)

	err := a.sessions.WithSession(ctx, func(ctx context.Context, q store.Querier) error {
		if _, err := a.userRepository.FindUserByUsername(ctx, q, update.Username); err != nil {
			return err
		}

		hashed, err := a.hasher.Hash(update.NewPassword)
		if err != nil {
			log.Err(err).Str("func", "*authService.UpdatePassword").Msg("error hashing password")
			return fmt.Errorf("error hashing password: %w", err)
		}

		return a.userRepository.UpdatePasswordHash(ctx, q, update.Username, hashed)
	})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("username", update.Username).Msg("password updated")
	return nil
}
