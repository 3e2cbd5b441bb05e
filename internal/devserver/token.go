// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oelbekkali/colisops/models"
)

// tokenClaims is the claim set of devserver-issued tokens: the
// registered claims with the account email as subject, plus the role
// name the client derives its workspace from.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// issueToken signs an HMAC-SHA256 token for the given account.
func (h *Handler) issueToken(acc *account) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    h.cfg.TokenIssuer,
			Subject:   acc.email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.TokenDuration)),
		},
		Role: acc.role.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.TokenSignKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// parseToken verifies the signature and expiry of a bearer token and
// returns its claims.
func (h *Handler) parseToken(tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(h.cfg.TokenSignKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
