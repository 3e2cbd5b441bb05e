package session

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needs an active
	// session and there is none.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthInProgress is returned when Login is called while another
	// login attempt has not finished.
	ErrAuthInProgress = errors.New("authentication already in progress")

	// ErrInvalidToken is returned when a stored or received token cannot
	// be decoded or carries no usable claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrRoleMismatch is returned when the role claim inside the token
	// does not match the role of the fetched profile. The session is
	// rolled back, nothing is persisted.
	ErrRoleMismatch = errors.New("token role does not match profile role")
)
