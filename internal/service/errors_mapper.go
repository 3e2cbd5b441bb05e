// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oelbekkali/colisops/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a
// service business error. Backend messages survive verbatim so the
// console can show what the server actually said.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %s", ErrNetwork, msg)

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %s", ErrValidation, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrUnauthorized

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, msg)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrUnexpectedPayload):
		return fmt.Errorf("%w: %s", ErrServer, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
