// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package service implements the business layer of the console: typed
// errors over the raw transport, payload validation before any network
// call, and the client-side guards the backend does not enforce
// (lifecycle direction, dependent checks, invoice eligibility).
package service

import (
	"errors"

	"github.com/oelbekkali/colisops/internal/adapter"
	"github.com/oelbekkali/colisops/internal/logger"
)

// base carries what every entity service needs: the adapter, the
// logger and the teardown hook fired when the backend answers 401.
type base struct {
	adapter        adapter.BackendAdapter
	logger         *logger.Logger
	onUnauthorized func()
}

// mapErr maps a transport error to the business taxonomy and fires the
// teardown hook on an authorization failure.
func (b base) mapErr(err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrUnauthorized) && b.onUnauthorized != nil {
		b.onUnauthorized()
	}
	return mapped
}

// Services bundles the entity services over one backend adapter.
type Services struct {
	Agency   *AgencyService
	Vehicle  *VehicleService
	Employee *EmployeeService
	Courier  *CourierService
	Delivery *DeliveryService
	Invoice  *InvoiceService
	Label    *LabelService
}

// NewServices wires every entity service over backend. onUnauthorized
// is invoked once per rejected call before ErrUnauthorized surfaces;
// pass the session manager's Invalidate.
func NewServices(backend adapter.BackendAdapter, log *logger.Logger, onUnauthorized func()) *Services {
	b := base{adapter: backend, logger: log, onUnauthorized: onUnauthorized}

	courier := &CourierService{base: b}

	return &Services{
		Agency:   &AgencyService{base: b},
		Vehicle:  &VehicleService{base: b},
		Employee: &EmployeeService{base: b},
		Courier:  courier,
		Delivery: &DeliveryService{base: b, couriers: courier},
		Invoice:  &InvoiceService{base: b},
		Label:    &LabelService{base: b},
	}
}
