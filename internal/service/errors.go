package service

import "errors"

var (
	// ErrNetwork means the backend could not be reached at all.
	ErrNetwork = errors.New("backend unreachable")

	// ErrUnauthorized means the backend rejected the token. The session
	// teardown hook fires before this is returned.
	ErrUnauthorized = errors.New("not authorized")

	// ErrForbidden means the signed-in role may not perform the operation.
	ErrForbidden = errors.New("operation not allowed for this role")

	// ErrNotFound means the entity does not exist on the backend.
	ErrNotFound = errors.New("not found")

	// ErrServer means the backend failed or answered something unusable.
	ErrServer = errors.New("backend error")

	// ErrValidation means the payload was rejected, either locally
	// before the call or by the backend. The message is kept verbatim.
	ErrValidation = errors.New("validation failed")

	// ErrHasDependents blocks deleting an agency that still has
	// employees or vehicles attached.
	ErrHasDependents = errors.New("agency still has employees or vehicles")

	// ErrVehicleAssigned blocks deleting a vehicle that is assigned to
	// a transporter.
	ErrVehicleAssigned = errors.New("vehicle is assigned to a transporter")

	// ErrBackwardTransition blocks moving a courier backwards in its
	// lifecycle. The only sanctioned backward edge is the delivery
	// teardown revert.
	ErrBackwardTransition = errors.New("courier status cannot move backwards")

	// ErrCourierNotDelivered blocks invoicing a courier that has not
	// reached the delivered status.
	ErrCourierNotDelivered = errors.New("courier is not delivered yet")
)
