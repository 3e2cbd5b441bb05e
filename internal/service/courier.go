// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package service

import (
	"context"
	"fmt"

	"github.com/oelbekkali/colisops/models"
)

// CourierService manages courier shipments and their lifecycle. The
// lifecycle only moves forward (depose -> en_cours_de_livraison ->
// livre, skips allowed); the single backward edge belongs to the
// delivery teardown and goes through RevertToDeposited, never through
// ChangeStatus.
type CourierService struct {
	base
}

// List returns every courier.
func (s *CourierService) List(ctx context.Context) ([]models.Courier, error) {
	couriers, err := s.adapter.ListCouriers(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return couriers, nil
}

// ListByStatus returns the couriers currently in status.
func (s *CourierService) ListByStatus(ctx context.Context, status models.CourierStatus) ([]models.Courier, error) {
	if status.Rank() < 0 {
		return nil, fmt.Errorf("%w: unknown courier status %q", ErrValidation, status)
	}

	couriers, err := s.adapter.ListCouriersByStatus(ctx, status)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return couriers, nil
}

// Get fetches one courier by id.
func (s *CourierService) Get(ctx context.Context, id int64) (models.Courier, error) {
	courier, err := s.adapter.GetCourier(ctx, id)
	if err != nil {
		return models.Courier{}, s.mapErr(err)
	}
	return courier, nil
}

// Create validates and registers a courier together with its sending
// client. New couriers start deposited.
func (s *CourierService) Create(ctx context.Context, req models.CreateCourierRequest) (models.Courier, error) {
	if err := validateRequest(req); err != nil {
		return models.Courier{}, err
	}

	courier, err := s.adapter.CreateCourier(ctx, req)
	if err != nil {
		return models.Courier{}, s.mapErr(err)
	}

	s.logger.Info().Int64("id", courier.ID).Msg("courier registered")

	return courier, nil
}

// Update validates and updates the courier identified by id.
func (s *CourierService) Update(ctx context.Context, id int64, req models.CreateCourierRequest) (models.Courier, error) {
	if err := validateRequest(req); err != nil {
		return models.Courier{}, err
	}

	courier, err := s.adapter.UpdateCourier(ctx, id, req)
	if err != nil {
		return models.Courier{}, s.mapErr(err)
	}

	return courier, nil
}

// Delete removes the courier identified by id.
func (s *CourierService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteCourier(ctx, id); err != nil {
		return s.mapErr(err)
	}
	return nil
}

// ChangeStatus moves courier to next. Backward moves are rejected
// before anything reaches the network; a same-status move is a local
// no-op. Skipping forward (depose straight to livre) is legal.
func (s *CourierService) ChangeStatus(ctx context.Context, courier models.Courier, next models.CourierStatus) (models.Courier, error) {
	if next.Rank() < 0 {
		return models.Courier{}, fmt.Errorf("%w: unknown courier status %q", ErrValidation, next)
	}

	if next == courier.Status {
		return courier, nil
	}

	if next.Rank() < courier.Status.Rank() {
		return models.Courier{}, fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, courier.Status, next)
	}

	updated, err := s.adapter.ChangeCourierStatus(ctx, courier.ID, next)
	if err != nil {
		return models.Courier{}, s.mapErr(err)
	}

	s.logger.Info().
		Int64("id", courier.ID).
		Str("from", string(courier.Status)).
		Str("to", string(next)).
		Msg("courier status changed")

	return updated, nil
}

// RevertToDeposited is the delivery teardown's backward edge: it moves
// the courier back to deposited after its delivery is removed. It
// bypasses the forward-only guard on purpose and must not be called
// from anywhere else.
func (s *CourierService) RevertToDeposited(ctx context.Context, id int64) (models.Courier, error) {
	courier, err := s.adapter.ChangeCourierStatus(ctx, id, models.StatusDeposited)
	if err != nil {
		return models.Courier{}, s.mapErr(err)
	}

	s.logger.Info().Int64("id", id).Msg("courier reverted to deposited")

	return courier, nil
}
