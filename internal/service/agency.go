// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package service

import (
	"context"
	"sync"

	"github.com/oelbekkali/colisops/models"
)

// AgencyService manages agencies. The backend has no single "list
// agencies" endpoint: List fans out one details fetch per address and
// degrades per-address failures to placeholders instead of failing the
// whole board.
type AgencyService struct {
	base
}

// List returns the agency board. The address list is authoritative;
// detail fetches run concurrently, and an address whose details fetch
// fails yields a placeholder agency (positional ID, address only) so
// one broken agency never blanks the screen. IDs are assigned from the
// 1-based position in the address list.
func (s *AgencyService) List(ctx context.Context) ([]models.Agency, error) {
	addresses, err := s.adapter.ListAgencyAddresses(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}

	agencies := make([]models.Agency, len(addresses))

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(i int, address string) {
			defer wg.Done()

			id := int64(i + 1)

			details, err := s.adapter.GetAgencyDetails(ctx, address)
			if err != nil {
				s.logger.Warn().Err(err).Str("address", address).Msg("agency details unavailable, using placeholder")
				agencies[i] = models.Agency{ID: id, Address: address}
				return
			}

			agencies[i] = models.Agency{
				ID:        id,
				Name:      details.Name,
				Address:   address,
				Employees: details.Employees,
				Vehicles:  vehiclesFromDTOs(details.Vehicles),
			}
		}(i, address)
	}
	wg.Wait()

	return agencies, nil
}

func vehiclesFromDTOs(dtos []models.VehicleDTO) []models.Vehicle {
	if len(dtos) == 0 {
		return nil
	}

	vehicles := make([]models.Vehicle, len(dtos))
	for i, dto := range dtos {
		vehicles[i] = models.Vehicle{
			Registration: dto.Registration,
			Type:         dto.Type,
			Capacity:     dto.Capacity,
		}
	}
	return vehicles
}

// Details fetches one agency by its address.
func (s *AgencyService) Details(ctx context.Context, address string) (models.AgencyDetailsDTO, error) {
	details, err := s.adapter.GetAgencyDetails(ctx, address)
	if err != nil {
		return models.AgencyDetailsDTO{}, s.mapErr(err)
	}
	return details, nil
}

// Create validates and creates an agency.
func (s *AgencyService) Create(ctx context.Context, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error) {
	if err := validateRequest(req); err != nil {
		return models.AgencyDashboardDTO{}, err
	}

	dto, err := s.adapter.CreateAgency(ctx, req)
	if err != nil {
		return models.AgencyDashboardDTO{}, s.mapErr(err)
	}

	s.logger.Info().Str("name", dto.Name).Msg("agency created")

	return dto, nil
}

// Update validates and updates the agency identified by id.
func (s *AgencyService) Update(ctx context.Context, id int64, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error) {
	if err := validateRequest(req); err != nil {
		return models.AgencyDashboardDTO{}, err
	}

	dto, err := s.adapter.UpdateAgency(ctx, id, req)
	if err != nil {
		return models.AgencyDashboardDTO{}, s.mapErr(err)
	}

	return dto, nil
}

// Delete removes the agency identified by id. The live details for
// address are checked first: an agency that still has employees or
// vehicles is refused with ErrHasDependents before any DELETE goes
// out, the stale in-memory copy is never trusted for this.
func (s *AgencyService) Delete(ctx context.Context, id int64, address string) error {
	details, err := s.adapter.GetAgencyDetails(ctx, address)
	if err != nil {
		return s.mapErr(err)
	}

	if len(details.Employees) > 0 || len(details.Vehicles) > 0 {
		return ErrHasDependents
	}

	if err = s.adapter.DeleteAgency(ctx, id); err != nil {
		return s.mapErr(err)
	}

	s.logger.Info().Int64("id", id).Msg("agency deleted")

	return nil
}
