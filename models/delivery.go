package models

// Delivery binds a courier to a vehicle, a transporter and a ship date.
// A delivery is active only while the courier is in delivery: creating
// one moves the courier from deposited to in delivery, deleting it
// reverts the courier to deposited.
type Delivery struct {
	ID int64 `json:"id"`

	// CourierID is the bound courier. The binding is 1:1 while the
	// delivery is active.
	CourierID int64 `json:"courrierId"`

	// ShipDate is the departure date in YYYY-MM-DD form.
	ShipDate string `json:"dateEnvoi"`

	// VehicleID is the registration of the carrying vehicle.
	VehicleID string `json:"vehiculeId"`

	// TransporterID is the CIN of the assigned transporter.
	TransporterID string `json:"transporteurId"`

	// Courier is the bound courier record, when the backend joins it.
	Courier *Courier `json:"courrier,omitempty"`
}

// CreateDeliveryRequest is the body for delivery create/update calls.
type CreateDeliveryRequest struct {
	CourierID     int64  `json:"courrierId" validate:"required"`
	ShipDate      string `json:"dateEnvoi" validate:"required"`
	VehicleID     string `json:"vehiculeId" validate:"required"`
	TransporterID string `json:"transporteurId" validate:"required"`
}
