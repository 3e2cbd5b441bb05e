package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oelbekkali/colisops/models"
)

// mintToken signs a throwaway HS256 token. Claims are decoded without
// verification, so the key never matters.
func mintToken(t *testing.T, email string, role models.Role, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": email, "role": string(role)}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	return signed
}

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := mintToken(t, "op@colisops.test", models.RoleOperator, exp)

	claims, err := DecodeClaims(token)
	require.NoError(t, err)

	assert.Equal(t, "op@colisops.test", claims.Email)
	assert.Equal(t, models.RoleOperator, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(exp))
}

func TestDecodeClaims_MissingSubject(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "ADMIN"}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, err = DecodeClaims(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeClaims_Garbage(t *testing.T) {
	_, err := DecodeClaims("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "future expiry", expiresAt: now.Add(time.Minute), want: false},
		{name: "past expiry", expiresAt: now.Add(-time.Minute), want: true},
		{name: "exact boundary counts as expired", expiresAt: now, want: true},
		{name: "no exp claim never expires", expiresAt: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Claims{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, c.Expired(now))
		})
	}
}
