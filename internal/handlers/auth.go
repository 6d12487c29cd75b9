// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"markshare/internal/auth"
	"markshare/internal/middleware"
	"markshare/internal/store"
)

// Auth groups the access-gate handlers: login, token verification,
// password change, and optional TOTP enrollment.
type Auth struct {
	gate      *auth.Gate
	userStore *store.UserStore
}

// NewAuth creates the Auth handler group.
func NewAuth(gate *auth.Gate, userStore *store.UserStore) *Auth {
	return &Auth{gate: gate, userStore: userStore}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totpCode"`
}

// Login verifies credentials and issues a bearer token. Accounts with
// 2FA enabled must also present a valid TOTP code.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := a.userStore.FindByUsername(req.Username)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	// Identical message for unknown user and wrong password.
	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if user.TOTPEnabled {
		if user.TOTPSecret == nil || !totp.Validate(req.TOTPCode, *user.TOTPSecret) {
			writeError(w, http.StatusUnauthorized, "invalid two-factor code")
			return
		}
	}

	token, err := a.gate.IssueToken(user)
	if err != nil {
		slog.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	slog.Info("login", "username", user.Username)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"admin":   user.Summary(),
		"token":   token,
		"message": "signed in",
	})
}

// Verify reports the identity behind a bearer token. The route is
// guarded by RequireAuth, so reaching here means the token resolved.
func (a *Auth) Verify(w http.ResponseWriter, r *http.Request) {
	user := middleware.IdentityFromCtx(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"admin":   user.Summary(),
		"message": "authenticated",
	})
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword replaces the caller's password after re-verifying the
// current one.
func (a *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.IdentityFromCtx(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req passwordChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "current and new password are required")
		return
	}
	if len(req.NewPassword) < 6 {
		writeError(w, http.StatusBadRequest, "new password must be at least 6 characters")
		return
	}

	if !a.userStore.CheckPassword(user, req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	if err := a.userStore.UpdatePassword(user.ID, req.NewPassword); err != nil {
		slog.Error("password update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to change the password")
		return
	}

	slog.Info("password changed", "username", user.Username)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "password changed",
	})
}

// TwoFASetup generates a fresh TOTP secret for the caller and returns
// it with a provisioning QR code. 2FA becomes mandatory for login only
// after TwoFAVerify confirms the authenticator.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	user := middleware.IdentityFromCtx(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "markshare",
		AccountName: user.Username,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to set up two-factor authentication")
		return
	}

	if err := a.userStore.SetTOTPSecret(user.ID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to set up two-factor authentication")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to set up two-factor authentication")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"secret":     key.Secret(),
		"otpauthUrl": key.URL(),
		"qrCode":     base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify confirms the enrolled authenticator and switches 2FA on.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	user := middleware.IdentityFromCtx(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "two-factor setup has not been started")
		return
	}
	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "invalid two-factor code")
		return
	}

	if err := a.userStore.EnableTOTP(user.ID); err != nil {
		slog.Error("enable totp failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to enable two-factor authentication")
		return
	}

	slog.Info("2fa enabled", "username", user.Username)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "two-factor authentication enabled",
	})
}
