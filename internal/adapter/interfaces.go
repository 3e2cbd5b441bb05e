// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package adapter provides the transport layer for talking to the
// logistics backend REST API.
//
// The primary abstraction is [BackendAdapter], which decouples the
// service layer from HTTP details: URL construction, bearer-token
// injection, per-endpoint envelope parsing, and mapping of HTTP status
// codes onto the sentinel errors in errors.go (so callers can use
// [errors.Is] for transport-agnostic handling, e.g. [ErrUnauthorized]
// for 401).
//
// The backend is not uniform: most endpoints wrap payloads in a
// {success,message,data} envelope, list endpoints in {success,data},
// while the delivery endpoints return bare JSON. Each adapter method
// decodes exactly the shape its endpoint is documented to return and
// fails loudly with [ErrUnexpectedPayload] on anything else.
package adapter

import (
	"context"

	"github.com/oelbekkali/colisops/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the transport-agnostic client of the logistics
// backend. Implementations own serialization, the Authorization header,
// and error mapping; they perform no business checks.
type BackendAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// ClearToken drops the held bearer token.
	ClearToken()

	// Login posts the credentials and returns the raw signed token.
	// The token is NOT stored; session management decides that.
	Login(ctx context.Context, email, password string) (string, error)

	// GetUser fetches the profile of the user identified by email.
	GetUser(ctx context.Context, email string) (models.User, error)

	// ListAgencyAddresses returns the address list driving the agency
	// fan-out. An empty data field is an empty list, never an error.
	ListAgencyAddresses(ctx context.Context) ([]string, error)

	// GetAgencyDetails fetches one agency's details by address.
	GetAgencyDetails(ctx context.Context, address string) (models.AgencyDetailsDTO, error)

	CreateAgency(ctx context.Context, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error)
	UpdateAgency(ctx context.Context, id int64, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error)
	DeleteAgency(ctx context.Context, id int64) error

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	// ListAvailableVehicles returns vehicles without an assigned
	// transporter, for assignment pickers.
	ListAvailableVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, registration string) (models.Vehicle, error)
	CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, registration string, req models.CreateVehicleRequest) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, registration string) error

	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, cin string) (models.Employee, error)
	CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (models.Employee, error)
	// CreateEmployeeWithUser creates an employee together with their
	// login account in one call (operator onboarding).
	CreateEmployeeWithUser(ctx context.Context, req models.CreateEmployeeWithUserRequest) (models.Employee, error)
	UpdateEmployee(ctx context.Context, cin string, req models.CreateEmployeeRequest) (models.Employee, error)
	UpdateEmployeeWithUser(ctx context.Context, cin string, req models.CreateEmployeeWithUserRequest) (models.Employee, error)
	DeleteEmployee(ctx context.Context, cin string) error
	// AssignVehicle binds a vehicle to a transporter employee.
	AssignVehicle(ctx context.Context, cin, registration string) (models.Employee, error)
	// UnassignVehicle releases the transporter's vehicle.
	UnassignVehicle(ctx context.Context, cin string) (models.Employee, error)
	ListRoles(ctx context.Context) ([]models.RoleEntity, error)

	ListCouriers(ctx context.Context) ([]models.Courier, error)
	ListCouriersByStatus(ctx context.Context, status models.CourierStatus) ([]models.Courier, error)
	GetCourier(ctx context.Context, id int64) (models.Courier, error)
	// CreateCourier posts the combined sender+shipment payload to the
	// create-with-client endpoint.
	CreateCourier(ctx context.Context, req models.CreateCourierRequest) (models.Courier, error)
	UpdateCourier(ctx context.Context, id int64, req models.CreateCourierRequest) (models.Courier, error)
	DeleteCourier(ctx context.Context, id int64) error
	// ChangeCourierStatus issues the raw transition call. Lifecycle
	// rules live in the service layer.
	ChangeCourierStatus(ctx context.Context, id int64, status models.CourierStatus) (models.Courier, error)

	ListDeliveries(ctx context.Context) ([]models.Delivery, error)
	GetDelivery(ctx context.Context, id int64) (models.Delivery, error)
	CreateDelivery(ctx context.Context, req models.CreateDeliveryRequest) (models.Delivery, error)
	UpdateDelivery(ctx context.Context, id int64, req models.CreateDeliveryRequest) (models.Delivery, error)
	DeleteDelivery(ctx context.Context, id int64) error

	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (models.Invoice, error)
	CreateInvoice(ctx context.Context, req models.CreateInvoiceRequest) (models.Invoice, error)
	// UpdateInvoiceStatus mutates the payment status only.
	UpdateInvoiceStatus(ctx context.Context, id int64, status models.PaymentStatus) (models.Invoice, error)
	// InvoicePDF fetches the rendered invoice as binary PDF bytes.
	InvoicePDF(ctx context.Context, id int64) ([]byte, error)

	// GenerateLabel creates a tracking label for a courier.
	GenerateLabel(ctx context.Context, courierID int64) (models.Label, error)
	GetLabelByTracking(ctx context.Context, code string) (models.Label, error)
	LabelPDF(ctx context.Context, id int64) ([]byte, error)
}
