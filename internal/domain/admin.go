package domain

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues admin credentials (e.g. JWT).
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// Guard validates an opaque admin credential and returns the subject it was issued to.
type Guard interface {
	Authorize(credential string) (subject string, err error)
}

// AdminAuthService handles the admin login contract.
type AdminAuthService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
}
