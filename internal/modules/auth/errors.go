package auth

import "errors"

var (
	// ErrMissingFields and ErrWrongCredentials share the register/login 400
	// path. ErrWrongCredentials is deliberately unspecific: an unknown email
	// and a bad password are indistinguishable to the caller.
	ErrMissingFields    = errors.New("missing email or password")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrEmailTaken       = errors.New("email already registered")

	ErrMissingToken = errors.New("missing refresh token")

	// ErrTokenRevoked covers a token whose signature verified but which is
	// not on the user's allow-list (already rotated, logged out, or stolen).
	// Distinct from jwt.ErrInvalidToken, which is a signature/expiry failure.
	ErrTokenRevoked = errors.New("invalid token")
)
