package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/oelbekkali/colisops/models"
)

// LabelService manages shipping labels and tracking lookups.
type LabelService struct {
	base
}

// Generate issues a label with a fresh tracking code for the courier.
func (s *LabelService) Generate(ctx context.Context, courierID int64) (models.Label, error) {
	label, err := s.adapter.GenerateLabel(ctx, courierID)
	if err != nil {
		return models.Label{}, s.mapErr(err)
	}

	s.logger.Info().Int64("courier_id", courierID).Str("tracking", label.TrackingCode).Msg("label generated")

	return label, nil
}

// ByTracking looks a label up by its tracking code.
func (s *LabelService) ByTracking(ctx context.Context, code string) (models.Label, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Label{}, fmt.Errorf("%w: empty tracking code", ErrValidation)
	}

	label, err := s.adapter.GetLabelByTracking(ctx, code)
	if err != nil {
		return models.Label{}, s.mapErr(err)
	}

	return label, nil
}

// PDF fetches the printable label document.
func (s *LabelService) PDF(ctx context.Context, id int64) ([]byte, error) {
	pdf, err := s.adapter.LabelPDF(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return pdf, nil
}
