package domain

import "errors"

// Authentication errors. ErrInvalidCredentials deliberately covers both
// unknown-email and wrong-password so responses cannot be used to probe
// which addresses are registered.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet minimum length")
)

// Token errors.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)
