// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/models"
)

func (h *Handler) listCouriers(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listCouriers(""))
}

func (h *Handler) listCouriersByStatus(w http.ResponseWriter, r *http.Request) {
	status := models.CourierStatus(pathParam(r, "status"))
	if status.Rank() < 0 {
		http.Error(w, "unknown courier status "+strconv.Quote(string(status)), http.StatusBadRequest)
		return
	}

	writeList(w, h.store.listCouriers(status))
}

func (h *Handler) getCourier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := courierID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	courier, err := h.store.getCourier(id)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "courier found", courier)
}

func (h *Handler) createCourier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateCourierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid courier JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	courier, err := h.store.createCourier(req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "courier created", courier)
}

func (h *Handler) updateCourier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := courierID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CreateCourierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid courier JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	courier, err := h.store.updateCourier(id, req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "courier updated", courier)
}

func (h *Handler) deleteCourier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := courierID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.deleteCourier(id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "courier deleted", nil)
}

func (h *Handler) changeCourierStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := courierID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := models.CourierStatus(r.URL.Query().Get("newStatus"))
	if status.Rank() < 0 {
		http.Error(w, "unknown courier status "+strconv.Quote(string(status)), http.StatusBadRequest)
		return
	}

	courier, err := h.store.changeCourierStatus(id, status)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "courier status updated", courier)
}

func courierID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid courier id")
	}
	return id, nil
}
