// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when data cannot be encoded.
const marshalFailureBody = `{"detail":"Internal Server Error"}`

// WriteJSON serializes data and writes it with the given status code and a
// JSON content type. It returns the number of body bytes written.
//
// If marshaling fails, a 500 response with a generic {"detail": ...} body is
// written instead and the marshal error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.HealthStatus{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
