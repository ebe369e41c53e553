// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. CORS admits every origin with credentials, so
// the request origin is reflected instead of answering "*".
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(h.withTraceID, withLogging, withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/users", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Get("/login", h.login)
		r.Get("/users/", h.listUsers)
		r.Get("/logout", h.logout)
		r.Get("/profile", h.profile)
		r.Put("/profile", h.updateProfile)
	})

	router.Route("/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Get("/", h.listProducts)
		r.Get("/{product_id}", h.getProduct)
		r.Put("/{product_id}", h.updateProduct)
		r.Delete("/{product_id}", h.deleteProduct)
	})

	router.Get("/health", h.health)
	router.Handle("/metrics", promhttp.Handler())

	return router
}
