package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an insert fails because an account
	// with the same username already exists, whether detected by a
	// pre-check or by the users_username_key constraint at insert time.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken is returned when an insert fails because an account
	// with the same email already exists, whether detected by a pre-check
	// or by the users_email_key constraint at insert time.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// account produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable is returned (wrapped around the driver error) when
	// the database cannot be reached or the failure is otherwise transient.
	// It is a retriable condition, never to be conflated with an
	// authentication failure.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNoFieldsToUpdate is returned by UpdateProfile when every mutable
	// field in the request is nil.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
