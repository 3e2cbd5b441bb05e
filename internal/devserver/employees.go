// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/models"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listEmployees())
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	employee, err := h.store.getEmployee(pathParam(r, "cin"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "employee found", employee)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid employee JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employee, err := h.store.createEmployee(req, nil)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "employee created", employee)
}

func (h *Handler) createEmployeeWithUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEmployeeWithUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid employee JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employee, err := h.store.createEmployee(req.Employee, &req.User)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "employee created", employee)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid employee JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employee, err := h.store.updateEmployee(pathParam(r, "cin"), req, nil)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "employee updated", employee)
}

func (h *Handler) updateEmployeeWithUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEmployeeWithUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid employee JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employee, err := h.store.updateEmployee(pathParam(r, "cin"), req.Employee, &req.User)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "employee updated", employee)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.store.deleteEmployee(pathParam(r, "cin")); err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "employee deleted", nil)
}

func (h *Handler) assignVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	employee, err := h.store.assignVehicle(pathParam(r, "cin"), pathParam(r, "registration"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "vehicle assigned", employee)
}

func (h *Handler) unassignVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	employee, err := h.store.unassignVehicle(pathParam(r, "cin"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "vehicle unassigned", employee)
}
