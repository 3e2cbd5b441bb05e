// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid login JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	acc, err := h.store.authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errNotFound) || errors.Is(err, errWrongPassword) {
			log.Warn().Str("email", req.Email).Msg("login rejected")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		}
		writeStoreError(w, log, err)
		return
	}

	token, err := h.issueToken(acc)
	if err != nil {
		log.Err(err).Msg("token issuance failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeBare(w, http.StatusOK, models.LoginResponse{Token: token})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := h.store.userProfile(pathParam(r, "email"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeBare(w, http.StatusOK, user)
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listRoles())
}
