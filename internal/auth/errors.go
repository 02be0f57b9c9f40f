package auth

import "errors"

var (
	// ErrInvalidState is returned when the OAuth callback carries an
	// unknown or expired state parameter.
	ErrInvalidState = errors.New("invalid or expired oauth state")

	// ErrMissingCode is returned when the OAuth callback has no
	// authorization code.
	ErrMissingCode = errors.New("missing authorization code")
)
