// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"markshare/internal/auth"
	"markshare/internal/models"
	"markshare/internal/store"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// IdentityKey is the context key for the resolved owner identity.
	IdentityKey contextKey = "identity"
)

// RequireAuth resolves the Authorization bearer credential to an owner
// identity and stores it in the request context. Requests without a
// valid credential are rejected with 401 before reaching the handler —
// mutations never run for an unresolved identity.
func RequireAuth(gate *auth.Gate, users *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := gate.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			// The token is valid but the account may be gone.
			user, err := users.FindByID(claims.UserID)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				unauthorized(w, "unknown user")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromCtx extracts the authenticated owner from the request
// context. Returns nil outside RequireAuth-guarded routes.
func IdentityFromCtx(ctx context.Context) *models.User {
	user, _ := ctx.Value(IdentityKey).(*models.User)
	return user
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
