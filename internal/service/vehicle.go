package service

import (
	"context"

	"github.com/oelbekkali/colisops/models"
)

// VehicleService manages the vehicle fleet.
type VehicleService struct {
	base
}

// List returns every vehicle.
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.adapter.ListVehicles(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return vehicles, nil
}

// ListAvailable returns the vehicles with no assigned transporter.
func (s *VehicleService) ListAvailable(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.adapter.ListAvailableVehicles(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return vehicles, nil
}

// Get fetches one vehicle by registration.
func (s *VehicleService) Get(ctx context.Context, registration string) (models.Vehicle, error) {
	vehicle, err := s.adapter.GetVehicle(ctx, registration)
	if err != nil {
		return models.Vehicle{}, s.mapErr(err)
	}
	return vehicle, nil
}

// Create validates and creates a vehicle.
func (s *VehicleService) Create(ctx context.Context, req models.CreateVehicleRequest) (models.Vehicle, error) {
	if err := validateRequest(req); err != nil {
		return models.Vehicle{}, err
	}

	vehicle, err := s.adapter.CreateVehicle(ctx, req)
	if err != nil {
		return models.Vehicle{}, s.mapErr(err)
	}

	s.logger.Info().Str("registration", vehicle.Registration).Msg("vehicle created")

	return vehicle, nil
}

// Update validates and updates the vehicle identified by registration.
func (s *VehicleService) Update(ctx context.Context, registration string, req models.CreateVehicleRequest) (models.Vehicle, error) {
	if err := validateRequest(req); err != nil {
		return models.Vehicle{}, err
	}

	vehicle, err := s.adapter.UpdateVehicle(ctx, registration, req)
	if err != nil {
		return models.Vehicle{}, s.mapErr(err)
	}

	return vehicle, nil
}

// Delete removes the vehicle identified by registration. The live
// record is checked first: a vehicle assigned to a transporter is
// refused with ErrVehicleAssigned before any DELETE goes out.
func (s *VehicleService) Delete(ctx context.Context, registration string) error {
	vehicle, err := s.adapter.GetVehicle(ctx, registration)
	if err != nil {
		return s.mapErr(err)
	}

	if !vehicle.Available() {
		return ErrVehicleAssigned
	}

	if err = s.adapter.DeleteVehicle(ctx, registration); err != nil {
		return s.mapErr(err)
	}

	s.logger.Info().Str("registration", registration).Msg("vehicle deleted")

	return nil
}
