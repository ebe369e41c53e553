// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/metrics"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

// usernameCookie is the cookie read by the profile endpoint and cleared by
// logout. The server never sets it.
const usernameCookie = "username"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := h.services.AuthService.Register(ctx, credentials); err != nil {
		writeError(w, r, err)
		return
	}

	metrics.UsersRegisteredTotal.Inc()

	utils.WriteJSON(w, models.Message{Message: models.MessageUserRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	credentials := models.Credentials{
		Username: query.Get("username"),
		Password: query.Get("password"),
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.Message{Message: models.MessageLoginSuccess}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// logout only expires the username cookie on the client.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   usernameCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	utils.WriteJSON(w, models.Message{Message: models.MessageLogoutSuccess}, http.StatusOK)
}

// profile echoes the username cookie. The cookie is not checked against
// stored accounts.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(usernameCookie)
	if err != nil || cookie.Value == "" {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	utils.WriteJSON(w, models.Profile{Username: cookie.Value}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	update := models.PasswordUpdate{
		Username:    query.Get("username"),
		NewPassword: query.Get("new_password"),
	}

	if err := h.services.AuthService.UpdatePassword(ctx, update); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: models.MessageProfileUpdated}, http.StatusOK)
}
