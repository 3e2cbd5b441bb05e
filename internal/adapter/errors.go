package adapter

import "errors"

// Transport-level sentinel errors. mapHTTPError wraps the response body
// (or the envelope message when present) around one of these so callers
// can branch with errors.Is while still surfacing the backend's own
// message verbatim.
var (
	// ErrNetwork means no response reached the client at all.
	ErrNetwork = errors.New("connection error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedPayload means the response body matched none of the
	// documented envelope shapes for the endpoint. The adapter never
	// guesses at unrecognized payloads.
	ErrUnexpectedPayload = errors.New("unexpected response payload")
)
