package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/models"
)

func TestVehicleService_Delete_RefusesAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	// assigned vehicle: DeleteVehicle must never be called
	mockAdapter.EXPECT().GetVehicle(ctx, "AB-123-CD").Return(models.Vehicle{
		Registration: "AB-123-CD",
		Transporter:  &models.Transporter{CIN: "K1"},
	}, nil)

	err := svcs.Vehicle.Delete(ctx, "AB-123-CD")
	assert.ErrorIs(t, err, ErrVehicleAssigned)
}

func TestVehicleService_Delete_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetVehicle(ctx, "AB-123-CD").
		Return(models.Vehicle{Registration: "AB-123-CD"}, nil)
	mockAdapter.EXPECT().DeleteVehicle(ctx, "AB-123-CD").Return(nil)

	assert.NoError(t, svcs.Vehicle.Delete(ctx, "AB-123-CD"))
}

func TestVehicleService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	tests := []struct {
		name string
		req  models.CreateVehicleRequest
	}{
		{name: "missing registration", req: models.CreateVehicleRequest{Type: "camion", Capacity: 10}},
		{name: "zero capacity", req: models.CreateVehicleRequest{Registration: "AB-1", Type: "camion"}},
		{name: "negative capacity", req: models.CreateVehicleRequest{Registration: "AB-1", Type: "camion", Capacity: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svcs.Vehicle.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestVehicleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	req := models.CreateVehicleRequest{Registration: "AB-123-CD", Type: "camion", Capacity: 12.5}
	mockAdapter.EXPECT().CreateVehicle(ctx, req).
		Return(models.Vehicle{Registration: "AB-123-CD", Type: "camion", Capacity: 12.5}, nil)

	vehicle, err := svcs.Vehicle.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, vehicle.Available())
}

func TestVehicleService_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListAvailableVehicles(ctx).
		Return([]models.Vehicle{{Registration: "AB-1"}}, nil)

	vehicles, err := svcs.Vehicle.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
}
