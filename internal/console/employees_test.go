package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/mock"
	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

func newTestScreens(t *testing.T, ctrl *gomock.Controller) (*service.Services, *mock.MockBackendAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svcs := service.NewServices(mockAdapter, logger.Nop(), nil)

	return svcs, mockAdapter
}

func baseEmployee() models.CreateEmployeeRequest {
	return models.CreateEmployeeRequest{
		CIN:      "K123456",
		Name:     "Alaoui",
		Surname:  "Yassine",
		Phone:    "0600000000",
		Address:  "rue des Oliviers",
		AgencyID: 1,
		RoleID:   2,
	}
}

// ── form variants ────────────────────────────────────────────────────────────

func TestEmployeeForm_VariantMustMatchRole(t *testing.T) {
	tests := []struct {
		name    string
		form    EmployeeForm
		wantErr bool
	}{
		{
			name: "operator with account",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleOperator,
				OperatorAccount: &OperatorAccount{Email: "a@b.c", Password: "secret1"}},
		},
		{
			name: "operator without account",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleOperator},
		},
		{
			name: "transporter with assignment",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleTransporter,
				TransporterAssignment: &TransporterAssignment{VehicleRegistration: "AB-1"}},
		},
		{
			name: "admin without variants",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleAdmin},
		},
		{
			name: "admin with login account",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleAdmin,
				OperatorAccount: &OperatorAccount{Email: "a@b.c", Password: "secret1"}},
			wantErr: true,
		},
		{
			name: "operator with vehicle assignment",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleOperator,
				TransporterAssignment: &TransporterAssignment{VehicleRegistration: "AB-1"}},
			wantErr: true,
		},
		{
			name: "transporter with login account",
			form: EmployeeForm{Base: baseEmployee(), Role: models.RoleTransporter,
				OperatorAccount: &OperatorAccount{Email: "a@b.c", Password: "secret1"}},
			wantErr: true,
		},
		{
			name:    "unknown role",
			form:    EmployeeForm{Base: baseEmployee(), Role: models.Role("STAGIAIRE")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.form.payload()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEmployeeForm_AccountInheritsRoleID(t *testing.T) {
	form := EmployeeForm{
		Base: baseEmployee(),
		Role: models.RoleOperator,
		OperatorAccount: &OperatorAccount{
			Email:    "yassine@colisops.test",
			Password: "secret1",
		},
	}

	_, account, err := form.payload()
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, form.Base.RoleID, account.RoleID)
}

// ── screen behavior ──────────────────────────────────────────────────────────

func TestEmployeeScreen_Load_JoinsReferenceLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListEmployees(ctx).Return([]models.Employee{{CIN: "K1"}}, nil)
	mockAdapter.EXPECT().ListAgencyAddresses(ctx).Return([]string{"1 rue A"}, nil)
	mockAdapter.EXPECT().GetAgencyDetails(ctx, "1 rue A").Return(models.AgencyDetailsDTO{Name: "Agence A"}, nil)
	mockAdapter.EXPECT().ListAvailableVehicles(ctx).Return([]models.Vehicle{{Registration: "AB-1"}}, nil)
	mockAdapter.EXPECT().ListRoles(ctx).Return([]models.RoleEntity{{ID: 2, Name: "OPERATEUR"}}, nil)

	screen := NewEmployeeScreen(svcs)
	require.NoError(t, screen.Load(ctx))

	assert.Len(t, screen.Visible(), 1)
	assert.Len(t, screen.Agencies(), 1)
	assert.Len(t, screen.AvailableVehicles(), 1)
	assert.Len(t, screen.Roles(), 1)
}

func TestEmployeeScreen_Create_TransporterAssignsVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	base := baseEmployee()
	base.RoleID = 3

	gomock.InOrder(
		mockAdapter.EXPECT().CreateEmployee(ctx, base).Return(models.Employee{CIN: base.CIN}, nil),
		mockAdapter.EXPECT().AssignVehicle(ctx, base.CIN, "AB-1").
			Return(models.Employee{CIN: base.CIN, Transporter: &models.Transporter{CIN: base.CIN}}, nil),
	)

	screen := NewEmployeeScreen(svcs)
	err := screen.Create(ctx, EmployeeForm{
		Base:                  base,
		Role:                  models.RoleTransporter,
		TransporterAssignment: &TransporterAssignment{VehicleRegistration: "AB-1"},
	})
	require.NoError(t, err)
	assert.Len(t, screen.Visible(), 1)
}

func TestEmployeeScreen_FailedCreateLeavesListUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestScreens(t, ctrl)
	ctx := context.Background()

	base := baseEmployee()
	mockAdapter.EXPECT().CreateEmployee(ctx, base).Return(models.Employee{}, assert.AnError)

	screen := NewEmployeeScreen(svcs)
	err := screen.Create(ctx, EmployeeForm{Base: base, Role: models.RoleOperator})
	assert.Error(t, err)
	assert.Empty(t, screen.Visible())
}
