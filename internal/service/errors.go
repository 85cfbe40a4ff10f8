package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed covers wrong username, wrong password and
	// disabled account alike; the cause is deliberately not distinguishable
	// from the outside.
	ErrAuthenticationFailed = errors.New("incorrect username or password")

	// ErrTokenExpired marks a correctly signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenInvalid marks a token whose signature, format or issuer does
	// not verify.
	ErrTokenInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
