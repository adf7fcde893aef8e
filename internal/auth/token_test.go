// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", false)
	userID := uuid.New()

	signed, err := tokens.Issue(userID, "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want %q", claims.Username, "admin")
	}

	exp := claims.ExpiresAt.Time
	want := time.Now().Add(TokenTTL)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Errorf("expiry = %v, want ~%v", exp, want)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a", false).Issue(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewTokens("secret-b", false).Verify(signed); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", false)
	for _, tc := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(tc); err == nil {
			t.Errorf("expected error for %q", tc)
		}
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	// Sign an already-expired token with the same secret.
	claims := Claims{
		UserID:   uuid.New(),
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokens("test-secret", false).Verify(signed); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	// alg: none tokens must never pass verification.
	claims := Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokens("test-secret", false).Verify(signed); err == nil {
		t.Error("expected error for alg=none token")
	}
}

func TestSetAndClearCookie(t *testing.T) {
	tokens := NewTokens("test-secret", true)

	rec := httptest.NewRecorder()
	tokens.SetCookie(rec, "signed-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Errorf("cookie name = %q, want %q", c.Name, CookieName)
	}
	if !c.HttpOnly {
		t.Error("cookie should be http-only")
	}
	if !c.Secure {
		t.Error("cookie should be secure")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("cookie should be SameSite=Strict")
	}
	if c.MaxAge != int(TokenTTL.Seconds()) {
		t.Errorf("MaxAge = %d, want %d", c.MaxAge, int(TokenTTL.Seconds()))
	}

	rec = httptest.NewRecorder()
	tokens.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("clear cookie MaxAge = %d, want negative", cookies[0].MaxAge)
	}
}
