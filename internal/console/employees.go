// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// EmployeeScreen drives the staff list together with the reference
// lists its form needs (agencies, available vehicles, roles).
type EmployeeScreen struct {
	services *service.Services

	list     listState[models.Employee]
	agencies listState[models.Agency]
	vehicles listState[models.Vehicle]
	roles    listState[models.RoleEntity]
	query    string
}

// NewEmployeeScreen constructs the employee screen over services.
func NewEmployeeScreen(services *service.Services) *EmployeeScreen {
	return &EmployeeScreen{services: services}
}

// Load refreshes the employee list and the three reference lists
// concurrently. The screen is unusable without any of them, so the
// first failure wins and nothing partial is kept authoritative.
func (s *EmployeeScreen) Load(ctx context.Context) error {
	empGen := s.list.beginLoad()
	agGen := s.agencies.beginLoad()
	vehGen := s.vehicles.beginLoad()
	roleGen := s.roles.beginLoad()

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		employees, err := s.services.Employee.List(ctx)
		s.list.complete(empGen, employees, err)
		errs[0] = err
	}()
	go func() {
		defer wg.Done()
		agencies, err := s.services.Agency.List(ctx)
		s.agencies.complete(agGen, agencies, err)
		errs[1] = err
	}()
	go func() {
		defer wg.Done()
		vehicles, err := s.services.Vehicle.ListAvailable(ctx)
		s.vehicles.complete(vehGen, vehicles, err)
		errs[2] = err
	}()
	go func() {
		defer wg.Done()
		roles, err := s.services.Employee.ListRoles(ctx)
		s.roles.complete(roleGen, roles, err)
		errs[3] = err
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
func (s *EmployeeScreen) SetQuery(query string) {
	s.query = query
}

// Visible returns the employees matching the current filter.
func (s *EmployeeScreen) Visible() []models.Employee {
	return filterItems(s.list.snapshot(), s.query, func(e models.Employee) string {
		return e.CIN + " " + e.Name + " " + e.Surname
	})
}

// Agencies returns the agency choices for the form.
func (s *EmployeeScreen) Agencies() []models.Agency { return s.agencies.snapshot() }

// AvailableVehicles returns the vehicle choices for the form.
func (s *EmployeeScreen) AvailableVehicles() []models.Vehicle { return s.vehicles.snapshot() }

// Roles returns the role catalog for the form.
func (s *EmployeeScreen) Roles() []models.RoleEntity { return s.roles.snapshot() }

// OperatorAccount is the login-account variant of the employee form.
type OperatorAccount struct {
	Email    string
	Password string
}

// TransporterAssignment is the vehicle variant of the employee form.
type TransporterAssignment struct {
	VehicleRegistration string
}

// EmployeeForm is a tagged variant: Role is the discriminant and at
// most the matching variant may be set. Only an operator form may
// carry an OperatorAccount, only a transporter form a
// TransporterAssignment; a variant that disagrees with the role is a
// bug in the caller and refused.
type EmployeeForm struct {
	Base models.CreateEmployeeRequest
	Role models.Role

	OperatorAccount       *OperatorAccount
	TransporterAssignment *TransporterAssignment
}

// payload turns the form into the employee request plus the optional
// account request, enforcing the variant/discriminant agreement.
func (f EmployeeForm) payload() (models.CreateEmployeeRequest, *models.CreateUserRequest, error) {
	switch f.Role {
	case models.RoleAdmin, models.RoleOperator:
		if f.TransporterAssignment != nil {
			return models.CreateEmployeeRequest{}, nil,
				fmt.Errorf("employee form: %s role cannot carry a vehicle assignment", f.Role)
		}
		if f.Role == models.RoleAdmin && f.OperatorAccount != nil {
			return models.CreateEmployeeRequest{}, nil,
				fmt.Errorf("employee form: admin role cannot carry a login account")
		}
	case models.RoleTransporter:
		if f.OperatorAccount != nil {
			return models.CreateEmployeeRequest{}, nil,
				fmt.Errorf("employee form: transporter role cannot carry a login account")
		}
	default:
		return models.CreateEmployeeRequest{}, nil, fmt.Errorf("employee form: unknown role %q", f.Role)
	}

	var account *models.CreateUserRequest
	if f.OperatorAccount != nil {
		account = &models.CreateUserRequest{
			Email:    f.OperatorAccount.Email,
			Password: f.OperatorAccount.Password,
			RoleID:   f.Base.RoleID,
		}
	}

	return f.Base, account, nil
}

// Create submits the form. A transporter form with a vehicle picked
// also assigns the vehicle after the employee exists.
func (s *EmployeeScreen) Create(ctx context.Context, form EmployeeForm) error {
	req, account, err := form.payload()
	if err != nil {
		return err
	}

	created, err := s.services.Employee.Create(ctx, req, account)
	if err != nil {
		return err
	}

	if form.TransporterAssignment != nil && form.TransporterAssignment.VehicleRegistration != "" {
		created, err = s.services.Employee.AssignVehicle(ctx, created.CIN, form.TransporterAssignment.VehicleRegistration)
		if err != nil {
			return fmt.Errorf("employee created but vehicle not assigned: %w", err)
		}
	}

	s.list.mutate(func(items []models.Employee) []models.Employee {
		return append(items, created)
	})

	return nil
}

// Update submits the form for an existing employee.
func (s *EmployeeScreen) Update(ctx context.Context, cin string, form EmployeeForm) error {
	req, account, err := form.payload()
	if err != nil {
		return err
	}

	updated, err := s.services.Employee.Update(ctx, cin, req, account)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Employee) []models.Employee {
		for i := range items {
			if items[i].CIN == cin {
				items[i] = updated
			}
		}
		return items
	})

	return nil
}

// Delete removes an employee from the backend and the list.
func (s *EmployeeScreen) Delete(ctx context.Context, cin string) error {
	if err := s.services.Employee.Delete(ctx, cin); err != nil {
		return err
	}

	s.list.mutate(func(items []models.Employee) []models.Employee {
		out := items[:0]
		for _, e := range items {
			if e.CIN != cin {
				out = append(out, e)
			}
		}
		return out
	})

	return nil
}
