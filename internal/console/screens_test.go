package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// ── vehicles ─────────────────────────────────────────────────────────────────

func TestVehicleScreen_CreatePatchesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListVehicles(ctx).Return([]models.Vehicle{{Registration: "AB-1", Type: "camion"}}, nil)

	screen := NewVehicleScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	req := models.CreateVehicleRequest{Registration: "CD-2", Type: "fourgon", Capacity: 8}
	mockAdapter.EXPECT().CreateVehicle(ctx, req).
		Return(models.Vehicle{Registration: "CD-2", Type: "fourgon", Capacity: 8}, nil)

	require.NoError(t, screen.Create(ctx, req))
	assert.Len(t, screen.Visible(), 2)
}

func TestVehicleScreen_RefusedDeleteLeavesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListVehicles(ctx).Return([]models.Vehicle{{Registration: "AB-1"}}, nil)

	screen := NewVehicleScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	// the pre-delete check finds a transporter, the delete never happens
	mockAdapter.EXPECT().GetVehicle(ctx, "AB-1").
		Return(models.Vehicle{Registration: "AB-1", Transporter: &models.Transporter{CIN: "K1"}}, nil)

	err := screen.Delete(ctx, "AB-1")
	assert.ErrorIs(t, err, service.ErrVehicleAssigned)
	assert.Len(t, screen.Visible(), 1)
}

func TestVehicleScreen_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListVehicles(ctx).Return([]models.Vehicle{
		{Registration: "AB-123", Type: "camion"},
		{Registration: "CD-456", Type: "fourgon"},
	}, nil)

	screen := NewVehicleScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	screen.SetQuery("camion")
	require.Len(t, screen.Visible(), 1)
	assert.Equal(t, "AB-123", screen.Visible()[0].Registration)

	screen.SetQuery("")
	assert.Len(t, screen.Visible(), 2)
}

// ── couriers ─────────────────────────────────────────────────────────────────

func TestCourierScreen_StatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListCouriersByStatus(ctx, models.StatusDeposited).
		Return([]models.Courier{{ID: 1, Status: models.StatusDeposited}}, nil)

	screen := NewCourierScreen(svcs)
	screen.SetStatusFilter(models.StatusDeposited)
	require.NoError(t, screen.Load(ctx))
	assert.Len(t, screen.Visible(), 1)
}

func TestCourierScreen_BackwardChangeLeavesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	delivered := models.Courier{ID: 1, Status: models.StatusDelivered}
	mockAdapter.EXPECT().ListCouriers(ctx).Return([]models.Courier{delivered}, nil)

	screen := NewCourierScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	err := screen.ChangeStatus(ctx, delivered, models.StatusDeposited)
	assert.ErrorIs(t, err, service.ErrBackwardTransition)

	require.Len(t, screen.Visible(), 1)
	assert.Equal(t, models.StatusDelivered, screen.Visible()[0].Status)
}

// ── deliveries ───────────────────────────────────────────────────────────────

func TestDeliveryScreen_Load_JoinsCourierLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListDeliveries(ctx).Return([]models.Delivery{{ID: 9, CourierID: 2}}, nil)
	mockAdapter.EXPECT().ListCouriersByStatus(ctx, models.StatusDeposited).
		Return([]models.Courier{{ID: 1, Status: models.StatusDeposited}}, nil)
	mockAdapter.EXPECT().ListCouriersByStatus(ctx, models.StatusInDelivery).
		Return([]models.Courier{{ID: 2, Status: models.StatusInDelivery}}, nil)

	screen := NewDeliveryScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	assert.Len(t, screen.Visible(), 1)
	assert.Len(t, screen.ShippableCouriers(), 1)
	assert.Len(t, screen.RidingCouriers(), 1)
}

// ── invoices ─────────────────────────────────────────────────────────────────

func TestInvoiceScreen_CreateForUndeliveredCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInvoices(ctx).Return(nil, nil)
	mockAdapter.EXPECT().ListCouriersByStatus(ctx, models.StatusDelivered).Return(nil, nil)

	screen := NewInvoiceScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	req := models.CreateInvoiceRequest{CourierID: 1, PaymentStatus: models.PaymentUnpaid}
	err := screen.Create(ctx, req, models.Courier{ID: 1, Status: models.StatusDeposited})
	assert.ErrorIs(t, err, service.ErrCourierNotDelivered)
	assert.Empty(t, screen.Visible())
}

func TestInvoiceScreen_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInvoices(ctx).
		Return([]models.Invoice{{ID: 7, PaymentStatus: models.PaymentUnpaid}}, nil)
	mockAdapter.EXPECT().ListCouriersByStatus(ctx, models.StatusDelivered).Return(nil, nil)

	screen := NewInvoiceScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	mockAdapter.EXPECT().UpdateInvoiceStatus(ctx, int64(7), models.PaymentPaid).
		Return(models.Invoice{ID: 7, PaymentStatus: models.PaymentPaid}, nil)

	require.NoError(t, screen.MarkPaid(ctx, 7))
	assert.Equal(t, models.PaymentPaid, screen.Visible()[0].PaymentStatus)
}
