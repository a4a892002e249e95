package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"techtalks/internal/domain"
)

// adminAudience is set on every admin token and required on verification.
const adminAudience = "techtalks-admin"

type jwtClaims struct {
	jwt.RegisteredClaims
}

// JWT issues and authorizes HS256-signed admin tokens. It implements domain.TokenIssuer and domain.Guard.
type JWT struct {
	secret []byte
	now    func() time.Time
}

// NewJWT returns a JWT issuer/guard using secret as the HMAC key.
func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), now: time.Now}
}

var (
	_ domain.TokenIssuer = (*JWT)(nil)
	_ domain.Guard       = (*JWT)(nil)
)

func (j *JWT) Issue(subject string, expiry time.Duration) (string, error) {
	now := j.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{adminAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Authorize parses and validates credential and returns its subject. Any failure is ErrUnauthorized.
func (j *JWT) Authorize(credential string) (string, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(adminAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", errors.Join(domain.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}
	return claims.Subject, nil
}
