// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultSecretKey, cfg.App.SecretKey)
	assert.Equal(t, DefaultAlgorithm, cfg.App.Algorithm)
	assert.Equal(t, DefaultAccessTokenExpireMinutes, cfg.App.AccessTokenExpireMinutes)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Logger.Level)
	assert.Equal(t, DefaultAdapterBaseURL, cfg.Adapter.BaseURL)
}

func TestConfigBuilder_LaterSourceWins(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"DATABASE_URL":   "sqlite:///./env.db",
		"SERVER_ADDRESS": "127.0.0.1:7000",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-d", "sqlite:///./flag.db"}).
		build()
	require.NoError(t, err)

	assert.Equal(t, "sqlite:///./flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultSecretKey, cfg.App.SecretKey)
}

func TestConfigBuilder_JSONFromLastPath(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()

	envJSON := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(envJSON, []byte(`{"logger": {"level": "info"}}`), 0o600))
	flagJSON := filepath.Join(dir, "flag.json")
	require.NoError(t, os.WriteFile(flagJSON, []byte(`{"logger": {"level": "error"}}`), 0o600))

	setEnvVars(t, map[string]string{"CONFIG": envJSON})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-config", flagJSON}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logger.Level)
	assert.Equal(t, flagJSON, cfg.JSONFilePath)
}

func TestConfigBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", filepath.Join(t.TempDir(), "nope.json")}).
		withJSON().
		build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_FlagError(t *testing.T) {
	_, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-unknown"}).
		build()

	assert.Error(t, err)
}

func TestConfigBuilder_DotEnv(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("SECRET_KEY=from_dotenv\n"), 0o600))

	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(p).
		withEnv().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from_dotenv", cfg.App.SecretKey)
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:   "bare sqlite path",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "./shop.db" },
		},
		{
			name:   "postgresql scheme",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "postgresql://u:p@localhost/shop" },
		},
		{
			name:    "empty database url",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "mysql://localhost/shop" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = 99 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token lifetime",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AccessTokenExpireMinutes = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Logger.Level = "loud" },
			wantErr: ErrInvalidLoggerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_MarshalZerologObjectRedactsSecret(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)

	log.Info().Object("config", *defaultConfig()).Send()

	assert.NotContains(t, buf.String(), DefaultSecretKey)
	assert.Contains(t, buf.String(), `"secret_key":"***"`)
}

func TestStructuredConfig_MarshalZerologObjectRedactsDatabasePassword(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		want    string
		secrets []string
	}{
		{
			name:    "postgres with password",
			dsn:     "postgres://shop:hunter2@db/shop",
			want:    `"database_url":"postgres://shop:xxxxx@db/shop"`,
			secrets: []string{"hunter2"},
		},
		{
			name: "sqlite path",
			dsn:  "sqlite:///./shop.db",
			want: `"database_url":"sqlite:///./shop.db"`,
		},
		{
			name:    "unparsable",
			dsn:     "postgres://shop:pa ss@db:port/shop",
			want:    `"database_url":"***"`,
			secrets: []string{"pa ss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			cfg := *defaultConfig()
			cfg.Storage.DB.DSN = tt.dsn

			log := zerolog.New(&buf)
			log.Info().Object("config", cfg).Send()

			assert.Contains(t, buf.String(), tt.want)
			for _, secret := range tt.secrets {
				assert.NotContains(t, buf.String(), secret)
			}
		})
	}
}
