// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oelbekkali/colisops/models"
)

// Claims is the client-side view of the backend token: the subject
// email, the role claim and the expiry. The signature is the backend's
// business, so the token is decoded without verification; the claims
// only drive local routing and expiry bookkeeping.
type Claims struct {
	Email     string
	Role      models.Role
	ExpiresAt time.Time
}

// Expired reports whether the token expiry is in the past. A token
// without an exp claim never expires locally.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// DecodeClaims parses tokenString without verifying its signature and
// extracts the subject, role and expiry claims. A token with no
// subject is unusable and rejected.
func DecodeClaims(tokenString string) (Claims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	claims := Claims{Email: sub}

	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = models.Role(role)
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
