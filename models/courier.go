package models

// CourierStatus is the lifecycle state of a courier shipment.
// The lifecycle is forward-only: depose → en_cours_de_livraison → livre.
type CourierStatus string

const (
	// StatusDeposited means the shipment was dropped off at the
	// origin agency and is waiting for a delivery.
	StatusDeposited CourierStatus = "depose"

	// StatusInDelivery means the shipment is bound to an active
	// delivery (vehicle + transporter + date).
	StatusInDelivery CourierStatus = "en_cours_de_livraison"

	// StatusDelivered means the shipment reached its recipient.
	// Only delivered couriers can be invoiced.
	StatusDelivered CourierStatus = "livre"
)

// Rank places the status on the lifecycle order: 0 for deposited,
// 1 for in delivery, 2 for delivered, -1 for an unknown status.
func (s CourierStatus) Rank() int {
	switch s {
	case StatusDeposited:
		return 0
	case StatusInDelivery:
		return 1
	case StatusDelivered:
		return 2
	}
	return -1
}

// Client is the sender of a courier shipment.
type Client struct {
	CIN     string `json:"cin"`
	Name    string `json:"nom_clt"`
	Surname string `json:"prenom_clt"`
	Address string `json:"clt_adress"`
	Phone   string `json:"phone_number"`
}

// Courier is a shipment record.
type Courier struct {
	ID int64 `json:"id"`

	// SendDate is the drop-off date in YYYY-MM-DD form.
	SendDate string `json:"dateEnvoie"`

	// Weight of the shipment in kilograms. Always positive.
	Weight float64 `json:"poids"`

	// Status is the current lifecycle state.
	Status CourierStatus `json:"statut"`

	// Price is the transmission price charged for the shipment.
	Price float64 `json:"prixTransmission"`

	// OriginAgency and DestinationAgency are agency names.
	OriginAgency      string `json:"agenceExped"`
	DestinationAgency string `json:"agenceDest"`

	RecipientName    string `json:"nom_complet_dest"`
	RecipientAddress string `json:"adresse_dest"`
	RecipientCIN     string `json:"cin_dest"`

	// Client is the sender.
	Client Client `json:"client"`
}

// CreateCourierRequest is the body of the create-with-client endpoint:
// sender identity plus shipment fields in one flat payload.
type CreateCourierRequest struct {
	// Sender client fields.
	CIN           string `json:"cin" validate:"required"`
	ClientName    string `json:"nom_clt" validate:"required"`
	ClientSurname string `json:"prenom_clt" validate:"required"`
	ClientAddress string `json:"clt_adress" validate:"required"`
	ClientPhone   string `json:"phone_number" validate:"required"`

	// Shipment fields.
	SendDate          string        `json:"dateEnvoie,omitempty"`
	Weight            float64       `json:"poids" validate:"gt=0"`
	RecipientCIN      string        `json:"cin_dest" validate:"required"`
	RecipientName     string        `json:"nom_complet_dest" validate:"required"`
	RecipientAddress  string        `json:"adresse_dest" validate:"required"`
	OriginAgency      string        `json:"agenceExped" validate:"required"`
	DestinationAgency string        `json:"agenceDest" validate:"required"`
	Status            CourierStatus `json:"statut,omitempty"`
	Price             float64       `json:"prixTransmission,omitempty"`
}
