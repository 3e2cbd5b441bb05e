package service

import (
	"context"

	"github.com/oelbekkali/colisops/models"
)

// EmployeeService manages employees and their user accounts. An
// employee may or may not carry a login account; the backend exposes
// separate endpoints for the two shapes and the service picks the
// right one from the payload.
type EmployeeService struct {
	base
}

// List returns every employee.
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.adapter.ListEmployees(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return employees, nil
}

// Get fetches one employee by CIN.
func (s *EmployeeService) Get(ctx context.Context, cin string) (models.Employee, error) {
	employee, err := s.adapter.GetEmployee(ctx, cin)
	if err != nil {
		return models.Employee{}, s.mapErr(err)
	}
	return employee, nil
}

// ListRoles returns the role catalog used by the employee forms.
func (s *EmployeeService) ListRoles(ctx context.Context) ([]models.RoleEntity, error) {
	roles, err := s.adapter.ListRoles(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return roles, nil
}

// Create creates an employee. When account is non-nil the combined
// with-user endpoint is used, creating the employee and its login in
// one backend transaction; otherwise the plain employee endpoint.
func (s *EmployeeService) Create(ctx context.Context, employee models.CreateEmployeeRequest, account *models.CreateUserRequest) (models.Employee, error) {
	if err := validateRequest(employee); err != nil {
		return models.Employee{}, err
	}

	if account == nil {
		created, err := s.adapter.CreateEmployee(ctx, employee)
		if err != nil {
			return models.Employee{}, s.mapErr(err)
		}
		return created, nil
	}

	if err := validateRequest(*account); err != nil {
		return models.Employee{}, err
	}

	created, err := s.adapter.CreateEmployeeWithUser(ctx, models.CreateEmployeeWithUserRequest{
		Employee: employee,
		User:     *account,
	})
	if err != nil {
		return models.Employee{}, s.mapErr(err)
	}

	s.logger.Info().Str("cin", created.CIN).Msg("employee created with account")

	return created, nil
}

// Update updates the employee identified by cin, routing to the
// with-user endpoint when account is non-nil.
func (s *EmployeeService) Update(ctx context.Context, cin string, employee models.CreateEmployeeRequest, account *models.CreateUserRequest) (models.Employee, error) {
	if err := validateRequest(employee); err != nil {
		return models.Employee{}, err
	}

	if account == nil {
		updated, err := s.adapter.UpdateEmployee(ctx, cin, employee)
		if err != nil {
			return models.Employee{}, s.mapErr(err)
		}
		return updated, nil
	}

	if err := validateRequest(*account); err != nil {
		return models.Employee{}, err
	}

	updated, err := s.adapter.UpdateEmployeeWithUser(ctx, cin, models.CreateEmployeeWithUserRequest{
		Employee: employee,
		User:     *account,
	})
	if err != nil {
		return models.Employee{}, s.mapErr(err)
	}

	return updated, nil
}

// Delete removes the employee identified by cin.
func (s *EmployeeService) Delete(ctx context.Context, cin string) error {
	if err := s.adapter.DeleteEmployee(ctx, cin); err != nil {
		return s.mapErr(err)
	}

	s.logger.Info().Str("cin", cin).Msg("employee deleted")

	return nil
}

// AssignVehicle binds a vehicle to a transporter employee.
func (s *EmployeeService) AssignVehicle(ctx context.Context, cin, registration string) (models.Employee, error) {
	employee, err := s.adapter.AssignVehicle(ctx, cin, registration)
	if err != nil {
		return models.Employee{}, s.mapErr(err)
	}
	return employee, nil
}

// UnassignVehicle releases a transporter's vehicle.
func (s *EmployeeService) UnassignVehicle(ctx context.Context, cin string) (models.Employee, error) {
	employee, err := s.adapter.UnassignVehicle(ctx, cin)
	if err != nil {
		return models.Employee{}, s.mapErr(err)
	}
	return employee, nil
}
