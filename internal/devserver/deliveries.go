// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/models"
)

// The delivery endpoints answer bare JSON, no envelope. The production
// backend grew them separately from the rest of the API and the client
// depends on that shape.

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	writeBare(w, http.StatusOK, h.store.listDeliveries())
}

func (h *Handler) getDelivery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid delivery id", http.StatusBadRequest)
		return
	}

	delivery, err := h.store.getDelivery(id)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeBare(w, http.StatusOK, delivery)
}

func (h *Handler) createDelivery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid delivery JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	delivery, err := h.store.createDelivery(req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeBare(w, http.StatusCreated, delivery)
}

func (h *Handler) updateDelivery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid delivery id", http.StatusBadRequest)
		return
	}

	var req models.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid delivery JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	delivery, err := h.store.updateDelivery(id, req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeBare(w, http.StatusOK, delivery)
}

func (h *Handler) deleteDelivery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid delivery id", http.StatusBadRequest)
		return
	}

	if err := h.store.deleteDelivery(id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
