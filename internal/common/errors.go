// Package common defines shared constants and sentinel errors used across
// the CubiHealth onboarding engine. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Onboarding errors.
	ErrValidation         = errors.New("validation failed")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrBusy               = errors.New("operation already in progress")

	// Identity errors.
	ErrIdentityProvider = errors.New("identity provider error")
	ErrUnauthorized     = errors.New("unauthorized")

	// Token errors (invalid, malformed or expired access token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
