// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oelbekkali/colisops/internal/logger"
)

// envelope is the {"success","message","data"} response shape used by
// every endpoint family except the deliveries, which answer bare JSON.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeBare(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writePDF(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeStoreError maps a storage sentinel to its HTTP status, keeping
// the error text verbatim so validation messages reach the client
// unchanged.
func writeStoreError(w http.ResponseWriter, log *logger.Logger, err error) {
	log.Err(err).Send()

	switch {
	case errors.Is(err, errNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errConflict), errors.Is(err, errAgencyNotEmpty):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
