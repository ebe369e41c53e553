// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/app"
	"github.com/MKhiriev/go-shop/internal/crypto"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/internal/validators"
	"github.com/MKhiriev/go-shop/models"
)

// errorResponse is the HTTP rendering of a sentinel error. An empty detail
// means the error text itself is reported.
type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, app.MsgUsernameAlreadyRegistered},
	store.ErrUserNotFound:          {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrProductNotFound:       {http.StatusNotFound, app.MsgProductNotFound},

	service.ErrInvalidCredentials: {http.StatusBadRequest, app.MsgInvalidCredentials},

	validators.ErrValidationFailed: {http.StatusUnprocessableEntity, ""},
	crypto.ErrPasswordTooLong:      {http.StatusUnprocessableEntity, app.MsgPasswordTooLong},

	ErrNotAuthenticated: {http.StatusUnauthorized, app.MsgNotAuthenticated},
	ErrInvalidJSON:      {http.StatusBadRequest, app.MsgInvalidJSON},
	ErrInvalidID:        {http.StatusUnprocessableEntity, ""},
	ErrInvalidQuery:     {http.StatusUnprocessableEntity, ""},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout)},
}

// responseFromError resolves the status and detail of err. Errors absent
// from errorStatusMap are reported as 500 without their text.
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}

		if resp.detail != "" {
			return resp.status, resp.detail
		}

		var fieldErrors validators.FieldErrors
		if errors.As(err, &fieldErrors) {
			return resp.status, fieldErrors.Error()
		}
		return resp.status, err.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and writes the
// {"detail": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, detail := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
