package models

// Agency is a physical branch location owning employees and vehicles.
//
// The canonical identifier is the numeric backend ID. The address is a
// secondary unique key: the details endpoint is keyed by it, and the
// address listing drives the list fan-out. Entries produced by the
// fan-out derive their ID from the 1-based list position because the
// details payload carries no numeric ID.
type Agency struct {
	// ID is the canonical numeric identifier.
	ID int64 `json:"id_agence"`

	// Name is the display name of the agency.
	Name string `json:"nomAgence"`

	// Address is the unique postal address, used as the details
	// endpoint lookup key.
	Address string `json:"adresse_agence"`

	// Employees working at this agency. An agency with employees
	// must not be deleted.
	Employees []Employee `json:"employes,omitempty"`

	// Vehicles attached to this agency. An agency with vehicles
	// must not be deleted.
	Vehicles []Vehicle `json:"vehicules,omitempty"`
}

// HasDependents reports whether the agency still owns employees or
// vehicles and therefore must not be deleted.
func (a Agency) HasDependents() bool {
	return len(a.Employees) > 0 || len(a.Vehicles) > 0
}

// CreateAgencyRequest is the body for agency create/update calls.
type CreateAgencyRequest struct {
	Name    string `json:"nomAgence" validate:"required"`
	Address string `json:"adresse_agence" validate:"required"`
}
