package auth

import "errors"

// Authentication errors surfaced to the API layer.
var (
	// ErrInvalidToken is returned when a token fails signature or claims
	// validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidCredentials is returned when a login attempt fails,
	// without distinguishing unknown user from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
