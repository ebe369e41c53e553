// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "map with 200",
			data:       map[string]string{"status": "ok"},
			statusCode: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "detail with 404",
			data:       map[string]string{"detail": "Product not found"},
			statusCode: http.StatusNotFound,
			wantBody:   `{"detail":"Product not found"}`,
		},
		{
			name:       "nil data",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "empty slice",
			data:       []int{},
			statusCode: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "created status",
			data:       struct{ ID int64 }{ID: 7},
			statusCode: http.StatusCreated,
			wantBody:   `{"ID":7}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["detail"])
}
