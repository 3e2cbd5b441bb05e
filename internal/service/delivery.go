package service

import (
	"context"
	"fmt"

	"github.com/oelbekkali/colisops/models"
)

// DeliveryService manages deliveries. A delivery is the courier's ride:
// creating one puts the courier in delivery, removing one puts it back
// to deposited.
type DeliveryService struct {
	base
	couriers *CourierService
}

// List returns every delivery.
func (s *DeliveryService) List(ctx context.Context) ([]models.Delivery, error) {
	deliveries, err := s.adapter.ListDeliveries(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return deliveries, nil
}

// Get fetches one delivery by id.
func (s *DeliveryService) Get(ctx context.Context, id int64) (models.Delivery, error) {
	delivery, err := s.adapter.GetDelivery(ctx, id)
	if err != nil {
		return models.Delivery{}, s.mapErr(err)
	}
	return delivery, nil
}

// Create validates and creates a delivery for courier, then advances
// the courier to in delivery. The courier must be deposited; a courier
// already riding or already delivered is refused before any call.
// If the status advance fails after the delivery was created, the
// error surfaces so the operator sees the half-applied state instead
// of a silently inconsistent board.
func (s *DeliveryService) Create(ctx context.Context, req models.CreateDeliveryRequest, courier models.Courier) (models.Delivery, error) {
	if err := validateRequest(req); err != nil {
		return models.Delivery{}, err
	}

	if courier.Status != models.StatusDeposited {
		return models.Delivery{}, fmt.Errorf("%w: courier %d is %s, only deposited couriers can be shipped",
			ErrValidation, courier.ID, courier.Status)
	}

	delivery, err := s.adapter.CreateDelivery(ctx, req)
	if err != nil {
		return models.Delivery{}, s.mapErr(err)
	}

	if _, err = s.couriers.ChangeStatus(ctx, courier, models.StatusInDelivery); err != nil {
		return delivery, fmt.Errorf("delivery %d created but courier not advanced: %w", delivery.ID, err)
	}

	s.logger.Info().Int64("id", delivery.ID).Int64("courier_id", courier.ID).Msg("delivery created")

	return delivery, nil
}

// Update validates and updates the delivery identified by id. The
// courier binding does not change here; rebinding is a delete plus a
// new create.
func (s *DeliveryService) Update(ctx context.Context, id int64, req models.CreateDeliveryRequest) (models.Delivery, error) {
	if err := validateRequest(req); err != nil {
		return models.Delivery{}, err
	}

	delivery, err := s.adapter.UpdateDelivery(ctx, id, req)
	if err != nil {
		return models.Delivery{}, s.mapErr(err)
	}

	return delivery, nil
}

// Delete removes the delivery and reverts its courier to deposited,
// the one sanctioned backward move in the courier lifecycle.
func (s *DeliveryService) Delete(ctx context.Context, delivery models.Delivery) error {
	if err := s.adapter.DeleteDelivery(ctx, delivery.ID); err != nil {
		return s.mapErr(err)
	}

	if _, err := s.couriers.RevertToDeposited(ctx, delivery.CourierID); err != nil {
		return fmt.Errorf("delivery %d removed but courier not reverted: %w", delivery.ID, err)
	}

	s.logger.Info().Int64("id", delivery.ID).Int64("courier_id", delivery.CourierID).Msg("delivery removed")

	return nil
}
