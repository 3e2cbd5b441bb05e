package console

import (
	"context"
	"strconv"
	"sync"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// DeliveryScreen drives the delivery board: the deliveries themselves
// plus the couriers eligible for shipping (deposited) and the ones
// currently riding.
type DeliveryScreen struct {
	services *service.Services

	list      listState[models.Delivery]
	deposited listState[models.Courier]
	riding    listState[models.Courier]
	query     string
}

// NewDeliveryScreen constructs the delivery screen over services.
func NewDeliveryScreen(services *service.Services) *DeliveryScreen {
	return &DeliveryScreen{services: services}
}

// Load refreshes the deliveries and the two courier lists
// concurrently.
func (s *DeliveryScreen) Load(ctx context.Context) error {
	delGen := s.list.beginLoad()
	depGen := s.deposited.beginLoad()
	rideGen := s.riding.beginLoad()

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		deliveries, err := s.services.Delivery.List(ctx)
		s.list.complete(delGen, deliveries, err)
		errs[0] = err
	}()
	go func() {
		defer wg.Done()
		couriers, err := s.services.Courier.ListByStatus(ctx, models.StatusDeposited)
		s.deposited.complete(depGen, couriers, err)
		errs[1] = err
	}()
	go func() {
		defer wg.Done()
		couriers, err := s.services.Courier.ListByStatus(ctx, models.StatusInDelivery)
		s.riding.complete(rideGen, couriers, err)
		errs[2] = err
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
func (s *DeliveryScreen) SetQuery(query string) {
	s.query = query
}

// Visible returns the deliveries matching the current filter.
func (s *DeliveryScreen) Visible() []models.Delivery {
	return filterItems(s.list.snapshot(), s.query, func(d models.Delivery) string {
		return strconv.FormatInt(d.ID, 10) + " " +
			strconv.FormatInt(d.CourierID, 10) + " " +
			d.VehicleID + " " + d.TransporterID
	})
}

// ShippableCouriers returns the deposited couriers a new delivery can
// pick from.
func (s *DeliveryScreen) ShippableCouriers() []models.Courier { return s.deposited.snapshot() }

// RidingCouriers returns the couriers currently in delivery.
func (s *DeliveryScreen) RidingCouriers() []models.Courier { return s.riding.snapshot() }

// Create ships a deposited courier, then refreshes: the create moves
// the courier between the two side lists, a local patch would have to
// replay that bookkeeping.
func (s *DeliveryScreen) Create(ctx context.Context, req models.CreateDeliveryRequest, courier models.Courier) error {
	if _, err := s.services.Delivery.Create(ctx, req, courier); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update updates a delivery and patches the list in place.
func (s *DeliveryScreen) Update(ctx context.Context, id int64, req models.CreateDeliveryRequest) error {
	updated, err := s.services.Delivery.Update(ctx, id, req)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Delivery) []models.Delivery {
		for i := range items {
			if items[i].ID == id {
				items[i] = updated
			}
		}
		return items
	})

	return nil
}

// Delete removes a delivery, which reverts its courier to deposited,
// then refreshes the board.
func (s *DeliveryScreen) Delete(ctx context.Context, delivery models.Delivery) error {
	if err := s.services.Delivery.Delete(ctx, delivery); err != nil {
		return err
	}
	return s.Load(ctx)
}
