package auth

import "errors"

var (
	// ErrInvalidCredentials is the single login failure. Unknown phone and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken signals an absent or malformed Authorization header.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken signals a token that failed signature or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
)
