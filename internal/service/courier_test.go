package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/models"
)

// ── ChangeStatus guard ───────────────────────────────────────────────────────

func TestCourierService_ChangeStatus_Forward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	courier := models.Courier{ID: 42, Status: models.StatusDeposited}
	mockAdapter.EXPECT().ChangeCourierStatus(ctx, int64(42), models.StatusInDelivery).
		Return(models.Courier{ID: 42, Status: models.StatusInDelivery}, nil)

	updated, err := svcs.Courier.ChangeStatus(ctx, courier, models.StatusInDelivery)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInDelivery, updated.Status)
}

func TestCourierService_ChangeStatus_SkipIsLegal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	courier := models.Courier{ID: 42, Status: models.StatusDeposited}
	mockAdapter.EXPECT().ChangeCourierStatus(ctx, int64(42), models.StatusDelivered).
		Return(models.Courier{ID: 42, Status: models.StatusDelivered}, nil)

	_, err := svcs.Courier.ChangeStatus(ctx, courier, models.StatusDelivered)
	assert.NoError(t, err)
}

func TestCourierService_ChangeStatus_BackwardRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	tests := []struct {
		name string
		from models.CourierStatus
		to   models.CourierStatus
	}{
		{name: "delivered back to in delivery", from: models.StatusDelivered, to: models.StatusInDelivery},
		{name: "delivered back to deposited", from: models.StatusDelivered, to: models.StatusDeposited},
		{name: "in delivery back to deposited", from: models.StatusInDelivery, to: models.StatusDeposited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter expectation: the guard must cut before the network
			courier := models.Courier{ID: 42, Status: tt.from}
			_, err := svcs.Courier.ChangeStatus(context.Background(), courier, tt.to)
			assert.ErrorIs(t, err, ErrBackwardTransition)
		})
	}
}

func TestCourierService_ChangeStatus_SameStatusIsLocalNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	courier := models.Courier{ID: 42, Status: models.StatusInDelivery}
	updated, err := svcs.Courier.ChangeStatus(context.Background(), courier, models.StatusInDelivery)
	require.NoError(t, err)
	assert.Equal(t, courier, updated)
}

func TestCourierService_ChangeStatus_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	courier := models.Courier{ID: 42, Status: models.StatusDeposited}
	_, err := svcs.Courier.ChangeStatus(context.Background(), courier, models.CourierStatus("retourne"))
	assert.ErrorIs(t, err, ErrValidation)
}

// ── revert path ──────────────────────────────────────────────────────────────

func TestCourierService_RevertToDeposited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	// the revert bypasses the forward-only guard
	mockAdapter.EXPECT().ChangeCourierStatus(ctx, int64(42), models.StatusDeposited).
		Return(models.Courier{ID: 42, Status: models.StatusDeposited}, nil)

	courier, err := svcs.Courier.RevertToDeposited(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeposited, courier.Status)
}

// ── listing / create ─────────────────────────────────────────────────────────

func TestCourierService_ListByStatus_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	_, err := svcs.Courier.ListByStatus(context.Background(), models.CourierStatus("perdu"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCourierService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	// weight must be strictly positive
	req := validCourierReq()
	req.Weight = 0

	_, err := svcs.Courier.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func validCourierReq() models.CreateCourierRequest {
	return models.CreateCourierRequest{
		CIN:               "C111111",
		ClientName:        "Benali",
		ClientSurname:     "Sara",
		ClientAddress:     "12 rue des Fleurs",
		ClientPhone:       "0611111111",
		Weight:            3.2,
		RecipientCIN:      "C222222",
		RecipientName:     "Omar Tazi",
		RecipientAddress:  "5 avenue Hassan II",
		OriginAgency:      "1 rue A",
		DestinationAgency: "2 rue B",
	}
}

func TestCourierService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	req := validCourierReq()
	mockAdapter.EXPECT().CreateCourier(ctx, req).
		Return(models.Courier{ID: 1, Status: models.StatusDeposited}, nil)

	courier, err := svcs.Courier.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeposited, courier.Status)
}
