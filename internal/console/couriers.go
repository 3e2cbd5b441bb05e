package console

import (
	"context"
	"strconv"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// CourierScreen drives the shipment list.
type CourierScreen struct {
	services *service.Services

	list   listState[models.Courier]
	query  string
	status models.CourierStatus
}

// NewCourierScreen constructs the courier screen over services.
func NewCourierScreen(services *service.Services) *CourierScreen {
	return &CourierScreen{services: services}
}

// SetStatusFilter restricts the next Load to one lifecycle status.
// Pass "" to load everything.
func (s *CourierScreen) SetStatusFilter(status models.CourierStatus) {
	s.status = status
}

// Load refreshes the list, honoring the status filter.
func (s *CourierScreen) Load(ctx context.Context) error {
	gen := s.list.beginLoad()

	var (
		couriers []models.Courier
		err      error
	)
	if s.status == "" {
		couriers, err = s.services.Courier.List(ctx)
	} else {
		couriers, err = s.services.Courier.ListByStatus(ctx, s.status)
	}
	s.list.complete(gen, couriers, err)

	return err
}

// SetQuery sets the search filter.
func (s *CourierScreen) SetQuery(query string) {
	s.query = query
}

// Visible returns the couriers matching the current filter.
func (s *CourierScreen) Visible() []models.Courier {
	return filterItems(s.list.snapshot(), s.query, func(c models.Courier) string {
		return strconv.FormatInt(c.ID, 10) + " " +
			c.Client.Name + " " + c.Client.Surname + " " +
			c.RecipientName + " " + string(c.Status)
	})
}

// Create registers a shipment and patches it into the list.
func (s *CourierScreen) Create(ctx context.Context, req models.CreateCourierRequest) error {
	courier, err := s.services.Courier.Create(ctx, req)
	if err != nil {
		return err
	}

	s.list.mutate(func(items []models.Courier) []models.Courier {
		return append(items, courier)
	})

	return nil
}

// Update updates a shipment and patches the list in place.
func (s *CourierScreen) Update(ctx context.Context, id int64, req models.CreateCourierRequest) error {
	updated, err := s.services.Courier.Update(ctx, id, req)
	if err != nil {
		return err
	}

	s.patch(updated)

	return nil
}

// ChangeStatus advances a shipment's lifecycle. The service rejects
// backward moves before the network; a rejected move leaves the list
// untouched.
func (s *CourierScreen) ChangeStatus(ctx context.Context, courier models.Courier, next models.CourierStatus) error {
	updated, err := s.services.Courier.ChangeStatus(ctx, courier, next)
	if err != nil {
		return err
	}

	s.patch(updated)

	return nil
}

// Delete removes a shipment from the backend and the list.
func (s *CourierScreen) Delete(ctx context.Context, id int64) error {
	if err := s.services.Courier.Delete(ctx, id); err != nil {
		return err
	}

	s.list.mutate(func(items []models.Courier) []models.Courier {
		out := items[:0]
		for _, c := range items {
			if c.ID != id {
				out = append(out, c)
			}
		}
		return out
	})

	return nil
}

func (s *CourierScreen) patch(updated models.Courier) {
	s.list.mutate(func(items []models.Courier) []models.Courier {
		for i := range items {
			if items[i].ID == updated.ID {
				items[i] = updated
			}
		}
		return items
	})
}
