package console

import (
	"context"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// VehicleScreen drives the fleet list.
type VehicleScreen struct {
	services *service.Services

	list  listState[models.Vehicle]
	query string
}

// NewVehicleScreen constructs the vehicle screen over services.
func NewVehicleScreen(services *service.Services) *VehicleScreen {
	return &VehicleScreen{services: services}
}

// Load refreshes the fleet list.
func (s *VehicleScreen) Load(ctx context.Context) error {
	gen := s.list.beginLoad()

	vehicles, err := s.services.Vehicle.List(ctx)
	s.list.complete(gen, vehicles, err)

	return err
}

// SetQuery sets the search filter.
func (s *VehicleScreen) SetQuery(query string) {
	s.query = query
}

// Visible returns the vehicles matching the current filter.
func (s *VehicleScreen) Visible() []models.Vehicle {
	return filterItems(s.list.snapshot(), s.query, func(v models.Vehicle) string {
		return v.Registration + " " + v.Type
	})
}

// Create adds a vehicle and patches it into the list locally; the
// registration is the key and comes from the form, no re-fetch needed.
func (s *VehicleScreen) Create(ctx context.Context, req models.CreateVehicleRequest) error {
	vehicle, err := s.services.Vehicle.Create(ctx, req)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Vehicle) []models.Vehicle {
		return append(items, vehicle)
	})

	return nil
}

// Update updates a vehicle and patches the list in place.
func (s *VehicleScreen) Update(ctx context.Context, registration string, req models.CreateVehicleRequest) error {
	updated, err := s.services.Vehicle.Update(ctx, registration, req)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Vehicle) []models.Vehicle {
		for i := range items {
			if items[i].Registration == registration {
				items[i] = updated
			}
		}
		return items
	})

	return nil
}

// Delete removes a vehicle. The service refuses assigned vehicles;
// a refused delete leaves the list untouched.
func (s *VehicleScreen) Delete(ctx context.Context, registration string) error {
	if err := s.services.Vehicle.Delete(ctx, registration); err != nil {
		return err
	}

	s.list.mutate(func(items []models.Vehicle) []models.Vehicle {
		out := items[:0]
		for _, v := range items {
			if v.Registration != registration {
				out = append(out, v)
			}
		}
		return out
	})

	return nil
}
