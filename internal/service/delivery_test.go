package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/models"
)

func validDeliveryReq() models.CreateDeliveryRequest {
	return models.CreateDeliveryRequest{
		CourierID:     42,
		ShipDate:      "2026-03-01",
		VehicleID:     "AB-123-CD",
		TransporterID: "K123456",
	}
}

// ── create advances the courier ──────────────────────────────────────────────

func TestDeliveryService_Create_AdvancesCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	req := validDeliveryReq()
	courier := models.Courier{ID: 42, Status: models.StatusDeposited}

	gomock.InOrder(
		mockAdapter.EXPECT().CreateDelivery(ctx, req).Return(models.Delivery{ID: 9, CourierID: 42}, nil),
		mockAdapter.EXPECT().ChangeCourierStatus(ctx, int64(42), models.StatusInDelivery).
			Return(models.Courier{ID: 42, Status: models.StatusInDelivery}, nil),
	)

	delivery, err := svcs.Delivery.Create(ctx, req, courier)
	require.NoError(t, err)
	assert.Equal(t, int64(9), delivery.ID)
}

func TestDeliveryService_Create_RefusesNonDepositedCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	tests := []struct {
		name   string
		status models.CourierStatus
	}{
		{name: "already in delivery", status: models.StatusInDelivery},
		{name: "already delivered", status: models.StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter expectation: nothing may reach the network
			courier := models.Courier{ID: 42, Status: tt.status}
			_, err := svcs.Delivery.Create(context.Background(), validDeliveryReq(), courier)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDeliveryService_Create_AdvanceFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	req := validDeliveryReq()
	courier := models.Courier{ID: 42, Status: models.StatusDeposited}

	mockAdapter.EXPECT().CreateDelivery(ctx, req).Return(models.Delivery{ID: 9, CourierID: 42}, nil)
	mockAdapter.EXPECT().ChangeCourierStatus(ctx, int64(42), models.StatusInDelivery).
		Return(models.Courier{}, assert.AnError)

	delivery, err := svcs.Delivery.Create(ctx, req, courier)
	require.Error(t, err)
	// the created delivery is still returned so the caller can show it
	assert.Equal(t, int64(9), delivery.ID)
}

// ── delete reverts the courier ───────────────────────────────────────────────

func TestDeliveryService_Delete_RevertsCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteDelivery(ctx, int64(9)).Return(nil),
		mockAdapter.EXPECT().ChangeCourierStatus(ctx, int64(42), models.StatusDeposited).
			Return(models.Courier{ID: 42, Status: models.StatusDeposited}, nil),
	)

	err := svcs.Delivery.Delete(ctx, models.Delivery{ID: 9, CourierID: 42})
	assert.NoError(t, err)
}

func TestDeliveryService_Delete_BackendFailureSkipsRevert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteDelivery(ctx, int64(9)).Return(assert.AnError)

	err := svcs.Delivery.Delete(ctx, models.Delivery{ID: 9, CourierID: 42})
	assert.Error(t, err)
}
