package models

import "encoding/json"

// APIResponse is the enveloped response shape most backend endpoints
// use: {"success": bool, "message": string, "data": ...}. List
// endpoints omit the message; delivery endpoints use no envelope at
// all and return bare JSON. Data stays raw so each endpoint's parser
// can decode it into its own shape and fail loudly on anything else.
type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AgencyDashboardDTO is the shape returned by agency create/update
// and stats endpoints.
type AgencyDashboardDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"nom"`
	Address       string `json:"adresse"`
	EmployeeCount int    `json:"nombreEmployes"`
	VehicleCount  int    `json:"nombreVehicules"`
}

// AgencyDetailsDTO is the shape returned by the per-address details
// endpoint. It carries no numeric agency ID.
type AgencyDetailsDTO struct {
	Name      string       `json:"nomAgence"`
	Employees []Employee   `json:"employes"`
	Vehicles  []VehicleDTO `json:"vehicules"`
}

// VehicleDTO is the reduced vehicle shape embedded in agency details.
type VehicleDTO struct {
	Registration string  `json:"immatriculation"`
	Type         string  `json:"type"`
	Capacity     float64 `json:"capacite"`
}
