package services

import "errors"

// Sentinel errors shared by the service layer. Handlers map these onto HTTP
// statuses in one place.
var (
	// ErrInvalid marks a validation failure; wrap it with the specific
	// message shown to the caller.
	ErrInvalid = errors.New("invalid input")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is known but not allowed to perform
	// the operation. Distinct from ErrNotFound.
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicate means the operation would create a row that already
	// exists (second application, repeated favorite, taken phone number).
	ErrDuplicate = errors.New("already exists")

	// ErrBadCredentials covers every failed login uniformly, without
	// revealing whether the account exists.
	ErrBadCredentials = errors.New("incorrect phone number or password")
)
