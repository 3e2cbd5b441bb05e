package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/internal/adapter"
	"github.com/oelbekkali/colisops/models"
)

// ── List fan-out ─────────────────────────────────────────────────────────────

func TestAgencyService_List_FanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	addresses := []string{"1 rue A", "2 rue B", "3 rue C"}
	mockAdapter.EXPECT().ListAgencyAddresses(ctx).Return(addresses, nil)
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "1 rue A").
		Return(models.AgencyDetailsDTO{Name: "Agence A", Employees: []models.Employee{{CIN: "K1"}}}, nil)
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "2 rue B").
		Return(models.AgencyDetailsDTO{Name: "Agence B", Vehicles: []models.VehicleDTO{{Registration: "AB-1"}}}, nil)
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "3 rue C").
		Return(models.AgencyDetailsDTO{Name: "Agence C"}, nil)

	agencies, err := svcs.Agency.List(ctx)
	require.NoError(t, err)
	require.Len(t, agencies, 3)

	// order and IDs follow the address list, not fetch completion
	assert.Equal(t, int64(1), agencies[0].ID)
	assert.Equal(t, "Agence A", agencies[0].Name)
	assert.Equal(t, "1 rue A", agencies[0].Address)
	assert.Len(t, agencies[0].Employees, 1)

	assert.Equal(t, int64(2), agencies[1].ID)
	assert.Equal(t, "AB-1", agencies[1].Vehicles[0].Registration)

	assert.Equal(t, int64(3), agencies[2].ID)
}

func TestAgencyService_List_PlaceholderOnFailedDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListAgencyAddresses(ctx).Return([]string{"1 rue A", "2 rue B"}, nil)
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "1 rue A").
		Return(models.AgencyDetailsDTO{}, fmt.Errorf("%w: status 500", adapter.ErrInternalServerError))
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "2 rue B").
		Return(models.AgencyDetailsDTO{Name: "Agence B"}, nil)

	agencies, err := svcs.Agency.List(ctx)
	require.NoError(t, err, "one broken agency must not fail the board")
	require.Len(t, agencies, 2)

	// placeholder keeps position, ID and address, nothing else
	assert.Equal(t, models.Agency{ID: 1, Address: "1 rue A"}, agencies[0])
	assert.Equal(t, "Agence B", agencies[1].Name)
}

func TestAgencyService_List_AddressListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListAgencyAddresses(ctx).
		Return(nil, fmt.Errorf("%w: dial refused", adapter.ErrNetwork))

	_, err := svcs.Agency.List(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestAgencyService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListAgencyAddresses(ctx).Return([]string{}, nil)

	agencies, err := svcs.Agency.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, agencies)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestAgencyService_Create_ValidationBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _ := newTestServices(t, ctrl)

	// no adapter expectation: an invalid payload never reaches it
	_, err := svcs.Agency.Create(context.Background(), models.CreateAgencyRequest{Name: "Agence X"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAgencyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	req := models.CreateAgencyRequest{Name: "Agence X", Address: "9 rue X"}
	mockAdapter.EXPECT().CreateAgency(ctx, req).
		Return(models.AgencyDashboardDTO{ID: 4, Name: "Agence X"}, nil)

	dto, err := svcs.Agency.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(4), dto.ID)
}

// ── Delete guard ─────────────────────────────────────────────────────────────

func TestAgencyService_Delete_RefusesWithDependents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	// live details show an employee; DeleteAgency must never be called
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "1 rue A").
		Return(models.AgencyDetailsDTO{Employees: []models.Employee{{CIN: "K1"}}}, nil)

	err := svcs.Agency.Delete(ctx, 1, "1 rue A")
	assert.ErrorIs(t, err, ErrHasDependents)
}

func TestAgencyService_Delete_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, _ := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetAgencyDetails(ctx, "1 rue A").Return(models.AgencyDetailsDTO{}, nil)
	mockAdapter.EXPECT().DeleteAgency(ctx, int64(1)).Return(nil)

	assert.NoError(t, svcs.Agency.Delete(ctx, 1, "1 rue A"))
}

// ── 401 hook ─────────────────────────────────────────────────────────────────

func TestAgencyService_UnauthorizedFiresTeardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, teardowns := newTestServices(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListAgencyAddresses(ctx).
		Return(nil, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))

	_, err := svcs.Agency.List(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, *teardowns)
}
