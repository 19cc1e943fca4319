// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiry is the lifetime of issued tokens.
const DefaultExpiry = 7 * 24 * time.Hour

const issuer = "moneyflow"

// Issuer signs and verifies HMAC-SHA256 tokens whose subject is a user ID.
type Issuer struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewIssuer(secret string, expiresIn time.Duration) Issuer {
	if expiresIn <= 0 {
		expiresIn = DefaultExpiry
	}

	return Issuer{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

// Issue returns a signed token for the user and its expiry.
func (i Issuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.expiresIn)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify returns the user ID of a valid token.
func (i Issuer) Verify(token string) (uuid.UUID, error) {
	claims := jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}

	return id, nil
}
