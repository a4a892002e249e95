package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techtalks/internal/domain"
)

func TestJWT_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWT(secret)

	token, err := issuer.Issue("admin", 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, jwt.ClaimStrings{adminAudience}, claims.Audience)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_Authorize(t *testing.T) {
	j := NewJWT("test-secret")
	valid, err := j.Issue("admin", time.Minute)
	require.NoError(t, err)

	expired, err := j.Issue("admin", -time.Minute)
	require.NoError(t, err)

	otherKey, err := NewJWT("other-secret").Issue("admin", time.Minute)
	require.NoError(t, err)

	noAudience, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "admin",
		Audience:  jwt.ClaimStrings{adminAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		credential  string
		wantSubject string
		wantErr     bool
	}{
		{name: "valid", credential: valid, wantSubject: "admin"},
		{name: "expired", credential: expired, wantErr: true},
		{name: "signed with another key", credential: otherKey, wantErr: true},
		{name: "missing audience", credential: noAudience, wantErr: true},
		{name: "unexpected algorithm", credential: wrongAlg, wantErr: true},
		{name: "garbage", credential: "not.a.jwt", wantErr: true},
		{name: "empty", credential: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := j.Authorize(tt.credential)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnauthorized)
				assert.Empty(t, subject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}
