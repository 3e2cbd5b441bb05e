package models

// User is an account entity returned by the backend for authentication
// and authorization. It is an immutable snapshot per session: it is only
// replaced by a re-login or an explicit profile refetch.
type User struct {
	// Email is the unique login identifier and the JWT subject claim.
	Email string `json:"email"`

	// Password carries the credential only on the way to the backend.
	// Responses from the profile endpoint may echo a hash here; it is
	// never persisted beyond the cached profile snapshot.
	Password string `json:"mot_passe,omitempty"`

	// Role is the account's authorization role.
	Role RoleEntity `json:"role"`

	// Employee is the linked employee profile, present for accounts
	// that belong to a regular employee (operators).
	Employee *Employee `json:"employe,omitempty"`
}

// LoginRequest is the body of POST /utilisateur/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"mot_passe"`
}

// LoginResponse is the body returned by a successful login call.
type LoginResponse struct {
	Token string `json:"token"`
}
