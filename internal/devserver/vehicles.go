// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/models"
)

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listVehicles(false))
}

func (h *Handler) listAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listVehicles(true))
}

func (h *Handler) getVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	vehicle, err := h.store.getVehicle(pathParam(r, "registration"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "vehicle found", vehicle)
}

func (h *Handler) createVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid vehicle JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	vehicle, err := h.store.createVehicle(req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "vehicle created", vehicle)
}

func (h *Handler) updateVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid vehicle JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	vehicle, err := h.store.updateVehicle(pathParam(r, "registration"), req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "vehicle updated", vehicle)
}

func (h *Handler) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.store.deleteVehicle(pathParam(r, "registration")); err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "vehicle deleted", nil)
}
