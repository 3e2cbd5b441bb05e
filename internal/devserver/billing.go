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

// pdfStub is a minimal one-page PDF document. Real rendering is out of
// scope for a development stub; the client only needs bytes a PDF
// viewer accepts.
var pdfStub = []byte("%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 595 842]>>endobj\n" +
	"trailer<</Size 4/Root 1 0 R>>\n" +
	"%%EOF\n")

// ── invoices ────────────────────────────────────────────────────────────────

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.store.listInvoices())
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	invoice, err := h.store.getInvoice(id)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "invoice found", invoice)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid invoice JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	invoice, err := h.store.createInvoice(req)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "invoice created", invoice)
}

func (h *Handler) updateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	var body struct {
		PaymentStatus models.PaymentStatus `json:"statutPaiement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid invoice JSON")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	invoice, err := h.store.updateInvoiceStatus(id, body.PaymentStatus)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "invoice status updated", invoice)
}

func (h *Handler) invoicePDF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	if _, err := h.store.getInvoice(id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	writePDF(w, pdfStub)
}

// ── labels ──────────────────────────────────────────────────────────────────

func (h *Handler) generateLabel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	courierID, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid courier id", http.StatusBadRequest)
		return
	}

	label, err := h.store.generateLabel(courierID)
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusCreated, "label generated", label)
}

func (h *Handler) labelByTracking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	label, err := h.store.labelByTracking(pathParam(r, "code"))
	if err != nil {
		writeStoreError(w, log, err)
		return
	}

	writeData(w, http.StatusOK, "label found", label)
}

func (h *Handler) labelPDF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid label id", http.StatusBadRequest)
		return
	}

	if _, err := h.store.labelByID(id); err != nil {
		writeStoreError(w, log, err)
		return
	}

	writePDF(w, pdfStub)
}
