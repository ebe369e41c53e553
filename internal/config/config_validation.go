// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var supportedDSNSchemes = []string{"sqlite", "postgres", "postgresql"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.DB.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cost := cfg.App.BcryptCost; cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d is out of [%d, %d]", ErrInvalidAppConfigs, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.AccessTokenExpireMinutes < 0 {
		return fmt.Errorf("%w: negative token lifetime", ErrInvalidAppConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
	}

	return nil
}

func (db DB) validate() error {
	if db.DSN == "" {
		return fmt.Errorf("%w: empty database url", ErrInvalidStorageConfigs)
	}

	scheme, _, found := strings.Cut(db.DSN, "://")
	if !found {
		// a bare path is an sqlite file
		return nil
	}

	for _, supported := range supportedDSNSchemes {
		if scheme == supported {
			return nil
		}
	}

	return fmt.Errorf("%w: unsupported database url scheme %q", ErrInvalidStorageConfigs, scheme)
}
