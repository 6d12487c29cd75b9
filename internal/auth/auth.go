// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth implements the access gate: stateless JWT bearer
// credentials that resolve to an owner identity. It only verifies
// credentials — file routes consume its verdict, it never touches
// file or share data.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"markshare/internal/models"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for any credential that does not resolve
// to an identity: bad signature, expired, malformed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload for an authenticated owner.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// Gate issues and verifies bearer tokens with an HMAC secret.
type Gate struct {
	secret []byte
}

// NewGate creates a gate signing with the given secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// IssueToken creates a signed bearer token for the user.
func (g *Gate) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "markshare",
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (g *Gate) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
