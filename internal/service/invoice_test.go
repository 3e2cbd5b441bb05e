package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/models"
)

// ── invoice eligibility ──────────────────────────────────────────────────────

func TestInvoiceService_Create_RefusesUndeliveredCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	tests := []struct {
		name   string
		status models.CourierStatus
	}{
		{name: "deposited", status: models.StatusDeposited},
		{name: "in delivery", status: models.StatusInDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter expectation: no POST may go out
			req := models.CreateInvoiceRequest{CourierID: 42, PaymentStatus: models.PaymentUnpaid}
			courier := models.Courier{ID: 42, Status: tt.status}

			_, err := svcs.Invoice.Create(context.Background(), req, courier)
			assert.ErrorIs(t, err, ErrCourierNotDelivered)
		})
	}
}

func TestInvoiceService_Create_DeliveredCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	req := models.CreateInvoiceRequest{CourierID: 42, PaymentStatus: models.PaymentUnpaid}
	courier := models.Courier{ID: 42, Status: models.StatusDelivered}

	mockAdapter.EXPECT().CreateInvoice(ctx, req).
		Return(models.Invoice{ID: 7, CourierID: 42, PaymentStatus: models.PaymentUnpaid}, nil)

	invoice, err := svcs.Invoice.Create(ctx, req, courier)
	require.NoError(t, err)
	assert.Equal(t, int64(7), invoice.ID)
}

func TestInvoiceService_Create_InvalidPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	req := models.CreateInvoiceRequest{CourierID: 42, PaymentStatus: "EN_ATTENTE"}
	courier := models.Courier{ID: 42, Status: models.StatusDelivered}

	_, err := svcs.Invoice.Create(context.Background(), req, courier)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── payment status ───────────────────────────────────────────────────────────

func TestInvoiceService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateInvoiceStatus(ctx, int64(7), models.PaymentPaid).
		Return(models.Invoice{ID: 7, PaymentStatus: models.PaymentPaid}, nil)

	invoice, err := svcs.Invoice.UpdateStatus(ctx, 7, models.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, invoice.PaymentStatus)
}

func TestInvoiceService_UpdateStatus_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	_, err := svcs.Invoice.UpdateStatus(context.Background(), 7, "EN_ATTENTE")
	assert.ErrorIs(t, err, ErrValidation)
}

// ── labels ───────────────────────────────────────────────────────────────────

func TestLabelService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GenerateLabel(ctx, int64(42)).
		Return(models.Label{ID: 3, CourierID: 42, TrackingCode: "b2f1c0de"}, nil)

	label, err := svcs.Label.Generate(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, label.TrackingCode)
}

func TestLabelService_ByTracking_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	_, err := svcs.Label.ByTracking(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLabelService_PDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().LabelPDF(ctx, int64(3)).Return([]byte("%PDF-1.7"), nil)

	pdf, err := svcs.Label.PDF(ctx, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
