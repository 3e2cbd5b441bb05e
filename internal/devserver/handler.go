// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package devserver is an in-memory stub of the colisops backend. It
// serves the full REST surface the console consumes (authentication,
// agencies, vehicles, employees, couriers, deliveries, invoices and
// labels) with seeded fixtures, so the console and the integration
// tests can run full login→CRUD→lifecycle flows without a real
// backend.
//
// The wire contract mirrors the production API, quirks included: most
// endpoints answer the {"success","message","data"} envelope, the
// delivery endpoints answer bare JSON, and the PDF endpoints answer
// raw bytes.
package devserver

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oelbekkali/colisops/internal/config"
	"github.com/oelbekkali/colisops/internal/logger"
)

// Handler wires the route handlers to the fixture store and the token
// settings.
type Handler struct {
	store  *memoryStore
	logger *logger.Logger
	cfg    *config.DevServerConfig
}

func NewHandler(cfg *config.DevServerConfig, log *logger.Logger) *Handler {
	return &Handler{
		store:  newMemoryStore(),
		logger: log,
		cfg:    cfg,
	}
}

// Init builds the router. Login is the only route reachable without a
// bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Post("/utilisateur/login", h.login)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/utilisateur/{email}", h.getUser)
		r.Post("/utilisateur/create-with-employe", h.createEmployeeWithUser)

		r.Get("/agence/all", h.listAgencyAddresses)
		r.Get("/agence/details/{address}", h.agencyDetails)
		r.Post("/agence/create", h.createAgency)
		r.Put("/agence/update/{id}", h.updateAgency)
		r.Delete("/agence/delete/{id}", h.deleteAgency)

		r.Get("/vehicule/getAll", h.listVehicles)
		r.Get("/vehicule/available", h.listAvailableVehicles)
		r.Get("/vehicule/{registration}", h.getVehicle)
		r.Post("/vehicule/create", h.createVehicle)
		r.Put("/vehicule/{registration}", h.updateVehicle)
		r.Delete("/vehicule/{registration}", h.deleteVehicle)

		r.Get("/employe", h.listEmployees)
		r.Get("/employe/find/{cin}", h.getEmployee)
		r.Post("/employe/create", h.createEmployee)
		r.Put("/employe/{cin}", h.updateEmployee)
		r.Put("/employe/{cin}/with-user", h.updateEmployeeWithUser)
		r.Delete("/employe/{cin}", h.deleteEmployee)
		r.Put("/employe/{cin}/vehicule/{registration}", h.assignVehicle)
		r.Delete("/employe/{cin}/vehicule", h.unassignVehicle)
		r.Get("/roles", h.listRoles)

		r.Get("/courriers/all", h.listCouriers)
		r.Get("/courriers/statut/{status}", h.listCouriersByStatus)
		r.Get("/courriers/{id}", h.getCourier)
		r.Post("/courriers/create-with-client", h.createCourier)
		r.Put("/courriers/{id}", h.updateCourier)
		r.Delete("/courriers/{id}", h.deleteCourier)
		r.Put("/courriers/status/{id}", h.changeCourierStatus)

		r.Get("/courriers/livraisons", h.listDeliveries)
		r.Get("/courriers/livraison/{id}", h.getDelivery)
		r.Post("/courriers/livraison", h.createDelivery)
		r.Put("/courriers/livraison/{id}", h.updateDelivery)
		r.Delete("/courriers/livraison/{id}", h.deleteDelivery)

		r.Get("/courriers/factures/all", h.listInvoices)
		r.Get("/courriers/facture/{id}", h.getInvoice)
		r.Post("/courriers/facture/create", h.createInvoice)
		r.Put("/courriers/facture/{id}/status", h.updateInvoiceStatus)
		r.Get("/courriers/facture/{id}/pdf", h.invoicePDF)

		r.Post("/courriers/etiquette/generate/{id}", h.generateLabel)
		r.Get("/courriers/etiquette/tracking/{code}", h.labelByTracking)
		r.Get("/courriers/etiquette/{id}/pdf", h.labelPDF)
	})

	return router
}

// withLogging attaches the handler logger to the request context and
// logs one line per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := h.logger.WithContext(r.Context())
		r = r.WithContext(ctx)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		h.logger.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Send()
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// auth rejects requests without a valid bearer token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("missing authorization header")
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			log.Warn().Msg("malformed authorization header")
			http.Error(w, "malformed authorization header", http.StatusUnauthorized)
			return
		}

		if _, err := h.parseToken(tokenString); err != nil {
			log.Warn().Err(err).Msg("invalid token")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// pathParam reads a chi URL parameter and unescapes it: chi matches on
// the raw path, so encoded spaces and commas in agency addresses would
// otherwise leak through escaped.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
