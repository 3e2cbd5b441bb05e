package models

// Vehicle is a transport vehicle attached to an agency. The unique key
// is the registration plate.
type Vehicle struct {
	// Registration is the unique plate number identifying the vehicle.
	Registration string `json:"immatriculation"`

	// Type is the vehicle category (van, truck, ...). Free-form.
	Type string `json:"type"`

	// Capacity is the load capacity in kilograms. Always positive.
	Capacity float64 `json:"capacite"`

	// Agency is the owning agency, when the backend includes it.
	Agency *Agency `json:"agence,omitempty"`

	// Transporter is the employee the vehicle is assigned to, if any.
	// An assigned vehicle is neither deletable nor offered as
	// available in assignment pickers.
	Transporter *Transporter `json:"transporteurVehicule,omitempty"`
}

// Available reports whether the vehicle has no assigned transporter.
func (v Vehicle) Available() bool {
	return v.Transporter == nil
}

// CreateVehicleRequest is the body for vehicle create/update calls.
type CreateVehicleRequest struct {
	Registration string  `json:"immatriculation" validate:"required"`
	Type         string  `json:"type" validate:"required"`
	Capacity     float64 `json:"capacite" validate:"gt=0"`
	AgencyID     int64   `json:"idAgence,omitempty"`
}
