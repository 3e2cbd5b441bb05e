package models

// PaymentStatus is the settlement state of an invoice.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAYE"
	PaymentUnpaid PaymentStatus = "NON_PAYE"
)

// Invoice is a billing record generated for a delivered courier.
// The payment status is mutable after creation; identity and amount
// are not.
type Invoice struct {
	ID int64 `json:"id"`

	// CourierID is the invoiced courier. Invoices exist only for
	// couriers in the delivered state.
	CourierID int64 `json:"courrierId"`

	// Amount is the invoiced amount.
	Amount float64 `json:"montant"`

	// IssueDate is the emission date in YYYY-MM-DD form.
	IssueDate string `json:"dateEmission"`

	// PaymentStatus is PAYE or NON_PAYE.
	PaymentStatus PaymentStatus `json:"statutPaiement"`

	// Courier is the invoiced courier record, when joined.
	Courier *Courier `json:"courrier,omitempty"`
}

// CreateInvoiceRequest is the body for invoice creation.
type CreateInvoiceRequest struct {
	CourierID     int64         `json:"courrierId" validate:"required"`
	PaymentStatus PaymentStatus `json:"statutPaiement" validate:"required,oneof=PAYE NON_PAYE"`
}
