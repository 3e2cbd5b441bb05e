package models

// Role is the name of an authorization role as issued by the backend.
type Role string

const (
	// RoleAdmin manages agencies, vehicles and employees.
	RoleAdmin Role = "ADMIN"

	// RoleOperator manages couriers, deliveries and invoices.
	// Only operators own a login account among regular employees.
	RoleOperator Role = "OPERATEUR"

	// RoleTransporter is an employee specialization that can be
	// assigned a vehicle and deliveries. Transporters have no account.
	RoleTransporter Role = "TRANSPORTEUR"
)

// Known reports whether r is one of the roles the backend issues.
// Unrecognized roles must never be granted access.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleTransporter:
		return true
	}
	return false
}

// RoleEntity is the backend representation of a role row.
type RoleEntity struct {
	// ID is the backend role identifier.
	ID int64 `json:"id_role"`

	// Name is the role name (ADMIN, OPERATEUR, TRANSPORTEUR).
	Name Role `json:"nom"`
}
