package auth

import "errors"

var (
	ErrMissingToken       = errors.New("no bearer token was provided")
	ErrMalformedToken     = errors.New("the authorization header must have the format 'Bearer <token>'")
	ErrInvalidToken       = errors.New("the token is invalid or expired")
	ErrInvalidCredentials = errors.New("the email or password is wrong")
)
