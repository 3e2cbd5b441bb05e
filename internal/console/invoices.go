package console

import (
	"context"
	"strconv"
	"sync"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// InvoiceScreen drives the billing board: issued invoices plus the
// delivered couriers that can still be invoiced.
type InvoiceScreen struct {
	services *service.Services

	list      listState[models.Invoice]
	delivered listState[models.Courier]
	query     string
}

// NewInvoiceScreen constructs the invoice screen over services.
func NewInvoiceScreen(services *service.Services) *InvoiceScreen {
	return &InvoiceScreen{services: services}
}

// Load refreshes the invoices and the delivered couriers concurrently.
func (s *InvoiceScreen) Load(ctx context.Context) error {
	invGen := s.list.beginLoad()
	delGen := s.delivered.beginLoad()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		invoices, err := s.services.Invoice.List(ctx)
		s.list.complete(invGen, invoices, err)
		errs[0] = err
	}()
	go func() {
		defer wg.Done()
		couriers, err := s.services.Courier.ListByStatus(ctx, models.StatusDelivered)
		s.delivered.complete(delGen, couriers, err)
		errs[1] = err
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// SetQuery sets the search filter.
func (s *InvoiceScreen) SetQuery(query string) {
	s.query = query
}

// Visible returns the invoices matching the current filter.
func (s *InvoiceScreen) Visible() []models.Invoice {
	return filterItems(s.list.snapshot(), s.query, func(inv models.Invoice) string {
		return strconv.FormatInt(inv.ID, 10) + " " +
			strconv.FormatInt(inv.CourierID, 10) + " " +
			string(inv.PaymentStatus)
	})
}

// InvoiceableCouriers returns the delivered couriers a new invoice can
// pick from.
func (s *InvoiceScreen) InvoiceableCouriers() []models.Courier { return s.delivered.snapshot() }

// Create issues an invoice for a delivered courier and patches the
// list locally.
func (s *InvoiceScreen) Create(ctx context.Context, req models.CreateInvoiceRequest, courier models.Courier) error {
	invoice, err := s.services.Invoice.Create(ctx, req, courier)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Invoice) []models.Invoice {
		return append(items, invoice)
	})

	return nil
}

// MarkPaid flips an invoice's payment status and patches the list.
func (s *InvoiceScreen) MarkPaid(ctx context.Context, id int64) error {
	return s.setPaymentStatus(ctx, id, models.PaymentPaid)
}

// MarkUnpaid flips an invoice back to unpaid.
func (s *InvoiceScreen) MarkUnpaid(ctx context.Context, id int64) error {
	return s.setPaymentStatus(ctx, id, models.PaymentUnpaid)
}

func (s *InvoiceScreen) setPaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	updated, err := s.services.Invoice.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Invoice) []models.Invoice {
		for i := range items {
			if items[i].ID == id {
				items[i] = updated
			}
		}
		return items
	})

	return nil
}

// PDF fetches the printable document for an invoice.
func (s *InvoiceScreen) PDF(ctx context.Context, id int64) ([]byte, error) {
	return s.services.Invoice.PDF(ctx, id)
}
