// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package console

import "github.com/oelbekkali/colisops/internal/service"

// Screens bundles one controller per board so front ends can carry a
// single value around.
type Screens struct {
	Agencies   *AgencyScreen
	Vehicles   *VehicleScreen
	Employees  *EmployeeScreen
	Couriers   *CourierScreen
	Deliveries *DeliveryScreen
	Invoices   *InvoiceScreen
}

func NewScreens(services *service.Services) Screens {
	return Screens{
		Agencies:   NewAgencyScreen(services),
		Vehicles:   NewVehicleScreen(services),
		Employees:  NewEmployeeScreen(services),
		Couriers:   NewCourierScreen(services),
		Deliveries: NewDeliveryScreen(services),
		Invoices:   NewInvoiceScreen(services),
	}
}
