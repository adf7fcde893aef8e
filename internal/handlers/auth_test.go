// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"foliocms/internal/auth"
	"foliocms/internal/middleware"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	cleanUsers(t, env.DB, "login-test")
	t.Cleanup(func() { cleanUsers(t, env.DB, "login-test") })

	if _, err := env.Users.Create("login-test", "correct-horse"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Auth.Login(rec, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"username": "login-test",
			"password": "correct-horse",
		}))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}

		var cookie *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == auth.CookieName {
				cookie = c
			}
		}
		if cookie == nil {
			t.Fatal("admin token cookie not set")
		}
		if !cookie.HttpOnly {
			t.Error("cookie is not http-only")
		}
		if _, err := env.Tokens.Verify(cookie.Value); err != nil {
			t.Errorf("cookie token does not verify: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Auth.Login(rec, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"username": "login-test",
			"password": "wrong",
		}))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Auth.Login(rec, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"username": "no-such-user",
			"password": "whatever",
		}))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}

		var resp map[string]string
		decodeResponse(t, rec, &resp)
		if resp["error"] != "invalid credentials" {
			t.Errorf("error = %q, want uniform message", resp["error"])
		}
	})
}

func TestLoginWithTOTP(t *testing.T) {
	env := newTestEnv(t)
	cleanUsers(t, env.DB, "totp-login-test")
	t.Cleanup(func() { cleanUsers(t, env.DB, "totp-login-test") })

	user, err := env.Users.Create("totp-login-test", "correct-horse")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	secret := "JBSWY3DPEHPK3PXP"
	if err := env.Users.SetTOTPSecret(user.ID, secret); err != nil {
		t.Fatalf("set secret: %v", err)
	}
	if err := env.Users.EnableTOTP(user.ID); err != nil {
		t.Fatalf("enable totp: %v", err)
	}

	t.Run("missing code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Auth.Login(rec, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"username": "totp-login-test",
			"password": "correct-horse",
		}))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid code", func(t *testing.T) {
		code, err := totp.GenerateCode(secret, time.Now())
		if err != nil {
			t.Fatalf("generate code: %v", err)
		}

		rec := httptest.NewRecorder()
		env.Auth.Login(rec, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"username": "totp-login-test",
			"password": "correct-horse",
			"code":     code,
		}))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Auth.Logout(rec, httptest.NewRequest("POST", "/api/auth/logout", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cleared = c
		}
	}
	if cleared == nil {
		t.Fatal("logout did not touch the token cookie")
	}
	if cleared.MaxAge >= 0 && cleared.Value != "" {
		t.Errorf("cookie not cleared: MaxAge=%d Value=%q", cleared.MaxAge, cleared.Value)
	}
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	cleanUsers(t, env.DB, "me-test")
	t.Cleanup(func() { cleanUsers(t, env.DB, "me-test") })

	if _, err := env.Users.Create("me-test", "correct-horse"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	protected := middleware.RequireAuth(env.Tokens)(http.HandlerFunc(env.Auth.Me))

	t.Run("authenticated", func(t *testing.T) {
		req := authedRequest(t, env, httptest.NewRequest("GET", "/api/auth/me", nil), "me-test")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}

		var resp map[string]any
		decodeResponse(t, rec, &resp)
		if resp["username"] != "me-test" {
			t.Errorf("username = %v", resp["username"])
		}
		if _, leaked := resp["passwordHash"]; leaked {
			t.Error("password hash leaked in response")
		}
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/me", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

func TestTOTPLifecycle(t *testing.T) {
	env := newTestEnv(t)
	cleanUsers(t, env.DB, "totp-setup-test")
	t.Cleanup(func() { cleanUsers(t, env.DB, "totp-setup-test") })

	user, err := env.Users.Create("totp-setup-test", "correct-horse")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	guard := middleware.RequireAuth(env.Tokens)
	setup := guard(http.HandlerFunc(env.Auth.TOTPSetup))
	enable := guard(http.HandlerFunc(env.Auth.TOTPEnable))
	disable := guard(http.HandlerFunc(env.Auth.TOTPDisable))

	// Setup issues a secret and QR code.
	rec := httptest.NewRecorder()
	setup.ServeHTTP(rec, authedRequest(t, env, httptest.NewRequest("POST", "/api/auth/totp/setup", nil), "totp-setup-test"))
	if rec.Code != http.StatusOK {
		t.Fatalf("setup status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var setupResp map[string]string
	decodeResponse(t, rec, &setupResp)
	if setupResp["secret"] == "" || setupResp["qrCode"] == "" {
		t.Fatalf("setup response incomplete: %v", setupResp)
	}

	// The secret is pending: the account is still marked 2FA-off.
	fresh, err := env.Users.FindByID(user.ID)
	if err != nil || fresh == nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.TOTPEnabled {
		t.Error("2FA active before a code was verified")
	}

	// Enable with a wrong code fails.
	rec = httptest.NewRecorder()
	enable.ServeHTTP(rec, authedRequest(t, env,
		jsonRequest(t, "POST", "/api/auth/totp/enable", map[string]string{"code": "000000"}), "totp-setup-test"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("enable with bad code: status = %d", rec.Code)
	}

	// Enable with a valid code activates 2FA.
	code, err := totp.GenerateCode(setupResp["secret"], time.Now())
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}
	rec = httptest.NewRecorder()
	enable.ServeHTTP(rec, authedRequest(t, env,
		jsonRequest(t, "POST", "/api/auth/totp/enable", map[string]string{"code": code}), "totp-setup-test"))
	if rec.Code != http.StatusOK {
		t.Fatalf("enable status = %d, body = %s", rec.Code, rec.Body.String())
	}

	fresh, _ = env.Users.FindByID(user.ID)
	if fresh == nil || !fresh.TOTPEnabled {
		t.Fatal("2FA not active after enable")
	}

	// Disable clears the secret again.
	rec = httptest.NewRecorder()
	disable.ServeHTTP(rec, authedRequest(t, env, httptest.NewRequest("POST", "/api/auth/totp/disable", nil), "totp-setup-test"))
	if rec.Code != http.StatusOK {
		t.Fatalf("disable status = %d", rec.Code)
	}
	fresh, _ = env.Users.FindByID(user.ID)
	if fresh == nil || fresh.TOTPEnabled || fresh.TOTPSecret != nil {
		t.Fatal("2FA still active after disable")
	}
}
