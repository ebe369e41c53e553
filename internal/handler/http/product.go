// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-shop/internal/metrics"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

const productIDParam = "product_id"

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var create models.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	product, err := h.services.ProductService.Create(ctx, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.ProductMutationsTotal.WithLabelValues(metrics.OperationCreate).Inc()

	utils.WriteJSON(w, product, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.ProductService.List(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProductUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	product, err := h.services.ProductService.Update(ctx, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.ProductMutationsTotal.WithLabelValues(metrics.OperationUpdate).Inc()

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.Delete(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.ProductMutationsTotal.WithLabelValues(metrics.OperationDelete).Inc()

	utils.WriteJSON(w, product, http.StatusOK)
}

func productIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, productIDParam), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// pageFromQuery reads skip and limit, falling back to models.DefaultPage
// for absent parameters. Range checks on limit are left to validation.
func pageFromQuery(r *http.Request) (models.Page, error) {
	page := models.DefaultPage()
	query := r.URL.Query()

	skip, err := uintQuery(query.Get("skip"), "skip", page.Skip)
	if err != nil {
		return models.Page{}, err
	}
	limit, err := uintQuery(query.Get("limit"), "limit", page.Limit)
	if err != nil {
		return models.Page{}, err
	}

	return models.Page{Skip: skip, Limit: limit}, nil
}

// uintQuery parses a non-negative paging parameter. Values are capped at
// math.MaxInt64, the largest OFFSET and LIMIT the databases accept.
func uintQuery(raw, name string, fallback uint64) (uint64, error) {
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidQuery, name)
	}
	return uint64(v), nil
}
