package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/internal/adapter"
	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/mock"
)

// newTestServices builds the service bundle over a mock adapter and a
// counter tracking teardown hook invocations.
func newTestServices(t *testing.T, ctrl *gomock.Controller) (*Services, *mock.MockBackendAdapter, *int) {
	t.Helper()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	teardowns := 0
	svcs := NewServices(mockAdapter, logger.Nop(), func() { teardowns++ })

	return svcs, mockAdapter, &teardowns
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "network", in: fmt.Errorf("%w: dial refused", adapter.ErrNetwork), want: ErrNetwork},
		{name: "bad request", in: fmt.Errorf("%w: poids manquant", adapter.ErrBadRequest), want: ErrValidation},
		{name: "conflict", in: fmt.Errorf("%w: immatriculation exists", adapter.ErrConflict), want: ErrValidation},
		{name: "unauthorized", in: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized), want: ErrUnauthorized},
		{name: "forbidden", in: fmt.Errorf("%w: admin only", adapter.ErrForbidden), want: ErrForbidden},
		{name: "not found", in: fmt.Errorf("%w: no such courier", adapter.ErrNotFound), want: ErrNotFound},
		{name: "server error", in: fmt.Errorf("%w: status 500", adapter.ErrInternalServerError), want: ErrServer},
		{name: "unexpected payload", in: fmt.Errorf("%w: bare array", adapter.ErrUnexpectedPayload), want: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_KeepsBackendMessage(t *testing.T) {
	err := mapAdapterError(fmt.Errorf("%w: le poids doit être positif", adapter.ErrBadRequest))
	assert.ErrorContains(t, err, "le poids doit être positif")
}
