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

	"foliocms/internal/auth"
	"foliocms/internal/middleware"
	"foliocms/internal/store"
)

// totpIssuer is the account issuer shown in authenticator apps.
const totpIssuer = "Portfolio Admin"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	tokens *auth.Tokens
	users  *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(tokens *auth.Tokens, users *store.UserStore) *Auth {
	return &Auth{tokens: tokens, users: users}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// Login validates credentials (and the TOTP code when 2FA is enabled)
// and sets the admin token cookie. Wrong username, wrong password and
// wrong code all produce the same 401 body.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.FindByUsername(req.Username)
	if err != nil {
		serverError(w, err)
		return
	}
	if user == nil || !h.users.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if user.TOTPEnabled {
		if user.TOTPSecret == nil || !totp.Validate(req.Code, *user.TOTPSecret) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
	}

	signed, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		serverError(w, err)
		return
	}
	h.tokens.SetCookie(w, signed)

	slog.Info("admin login", "username", user.Username)
	writeJSON(w, http.StatusOK, user)
}

// Logout clears the admin token cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the authenticated admin account.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.users.FindByID(claims.UserID)
	if err != nil {
		serverError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// TOTPSetup generates a new TOTP secret for the authenticated admin and
// returns it with a QR code (base64 PNG) for authenticator apps. The
// secret stays inactive until TOTPEnable verifies a code.
func (h *Auth) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: claims.Username,
	})
	if err != nil {
		serverError(w, err)
		return
	}

	if err := h.users.SetTOTPSecret(claims.UserID, key.Secret()); err != nil {
		serverError(w, err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qrCode": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type totpCodeRequest struct {
	Code string `json:"code"`
}

// TOTPEnable verifies a code against the pending secret and activates 2FA.
func (h *Auth) TOTPEnable(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req totpCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.FindByID(claims.UserID)
	if err != nil {
		serverError(w, err)
		return
	}
	if user == nil || user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "run setup before enabling 2FA")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusBadRequest, "invalid code")
		return
	}

	if err := h.users.EnableTOTP(user.ID); err != nil {
		serverError(w, err)
		return
	}

	slog.Info("2fa enabled", "username", user.Username)
	writeJSON(w, http.StatusOK, map[string]string{"status": "enabled"})
}

// TOTPDisable clears the secret and turns 2FA off.
func (h *Auth) TOTPDisable(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.users.ResetTOTP(claims.UserID); err != nil {
		serverError(w, err)
		return
	}

	slog.Info("2fa disabled", "username", claims.Username)
	writeJSON(w, http.StatusOK, map[string]string{"status": "disabled"})
}
