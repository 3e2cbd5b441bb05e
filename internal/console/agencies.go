package console

import (
	"context"
	"strings"

	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/models"
)

// AgencyScreen drives the agency board.
type AgencyScreen struct {
	services *service.Services

	list  listState[models.Agency]
	query string
}

// NewAgencyScreen constructs the agency screen over services.
func NewAgencyScreen(services *service.Services) *AgencyScreen {
	return &AgencyScreen{services: services}
}

// Load refreshes the board. A load that finishes after a newer one
// started is dropped.
func (s *AgencyScreen) Load(ctx context.Context) error {
	gen := s.list.beginLoad()

	agencies, err := s.services.Agency.List(ctx)
	s.list.complete(gen, agencies, err)

	return err
}

// SetQuery sets the search filter.
func (s *AgencyScreen) SetQuery(query string) {
	s.query = query
}

// Visible returns the agencies matching the current filter.
func (s *AgencyScreen) Visible() []models.Agency {
	return filterItems(s.list.snapshot(), s.query, func(a models.Agency) string {
		return a.Name + " " + a.Address
	})
}

// Create adds an agency and refreshes the board. Board IDs are
// positional, so a local append would guess wrong; a failed create
// leaves the board untouched.
func (s *AgencyScreen) Create(ctx context.Context, req models.CreateAgencyRequest) error {
	if _, err := s.services.Agency.Create(ctx, req); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update updates an agency and refreshes the board.
func (s *AgencyScreen) Update(ctx context.Context, id int64, req models.CreateAgencyRequest) error {
	if _, err := s.services.Agency.Update(ctx, id, req); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes an agency. The service refuses agencies with live
// dependents; on success the board is refreshed.
func (s *AgencyScreen) Delete(ctx context.Context, agency models.Agency) error {
	if err := s.services.Agency.Delete(ctx, agency.ID, agency.Address); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Details fetches the detail view of one agency by address.
func (s *AgencyScreen) Details(ctx context.Context, address string) (models.AgencyDetailsDTO, error) {
	return s.services.Agency.Details(ctx, strings.TrimSpace(address))
}
