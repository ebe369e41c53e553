// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a read-only probe of a running go-shop server. It checks
// health and prints the users and the first page of products as JSON.
//
// The server is addressed by ADAPTER_BASE_URL (default http://localhost:8000).
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/MKhiriev/go-shop/internal/adapter"
	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

type report struct {
	Health   string           `json:"health"`
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
}

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-shop-client", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-shop-client", cfg.Logger.Level)

	client, err := adapter.NewHTTPShopClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()
	out := report{Health: "ok"}

	if err = client.Health(ctx); err != nil {
		log.Error().Err(err).Msg("server is unhealthy")
		out.Health = err.Error()
	}
	if out.Users, err = client.ListUsers(ctx); err != nil {
		log.Fatal().Err(err).Msg("error listing users")
	}
	if out.Products, err = client.ListProducts(ctx, models.DefaultPage()); err != nil {
		log.Fatal().Err(err).Msg("error listing products")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("error writing report")
	}
}
