package service

import (
	"context"
	"fmt"

	"github.com/oelbekkali/colisops/models"
)

// InvoiceService manages invoices. Only delivered couriers are
// invoiceable; the check runs client-side before any POST.
type InvoiceService struct {
	base
}

// List returns every invoice.
func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.adapter.ListInvoices(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return invoices, nil
}

// Get fetches one invoice by id.
func (s *InvoiceService) Get(ctx context.Context, id int64) (models.Invoice, error) {
	invoice, err := s.adapter.GetInvoice(ctx, id)
	if err != nil {
		return models.Invoice{}, s.mapErr(err)
	}
	return invoice, nil
}

// Create validates and issues an invoice for courier, which must be
// delivered. ErrCourierNotDelivered is returned before any network
// call otherwise.
func (s *InvoiceService) Create(ctx context.Context, req models.CreateInvoiceRequest, courier models.Courier) (models.Invoice, error) {
	if courier.Status != models.StatusDelivered {
		return models.Invoice{}, fmt.Errorf("%w: courier %d is %s", ErrCourierNotDelivered, courier.ID, courier.Status)
	}

	if err := validateRequest(req); err != nil {
		return models.Invoice{}, err
	}

	invoice, err := s.adapter.CreateInvoice(ctx, req)
	if err != nil {
		return models.Invoice{}, s.mapErr(err)
	}

	s.logger.Info().Int64("id", invoice.ID).Int64("courier_id", courier.ID).Msg("invoice issued")

	return invoice, nil
}

// UpdateStatus flips the payment status of the invoice identified by
// id. Nothing else about an issued invoice is mutable.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) (models.Invoice, error) {
	if status != models.PaymentPaid && status != models.PaymentUnpaid {
		return models.Invoice{}, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}

	invoice, err := s.adapter.UpdateInvoiceStatus(ctx, id, status)
	if err != nil {
		return models.Invoice{}, s.mapErr(err)
	}

	return invoice, nil
}

// PDF fetches the printable invoice document.
func (s *InvoiceService) PDF(ctx context.Context, id int64) ([]byte, error) {
	pdf, err := s.adapter.InvoicePDF(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return pdf, nil
}
