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

func (h *Handler) listAgencyAddresses(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listAgencyAddresses())
}

func (h *Handler) agencyDetails(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	details, err := h.store.agencyDetails(pathParam(r, "address"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "agency found", details)
}

func (h *Handler) createAgency(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid agency JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	dto, err := h.store.createAgency(req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "agency created", dto)
}

func (h *Handler) updateAgency(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid agency id", http.StatusBadRequest)
		return
	}

	var req models.CreateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid agency JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	dto, err := h.store.updateAgency(id, req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "agency updated", dto)
}

func (h *Handler) deleteAgency(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid agency id", http.StatusBadRequest)
		return
	}

	if err := h.store.deleteAgency(id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "agency deleted", nil)
}
