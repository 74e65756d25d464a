package main

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateTokenPairAndVerify(t *testing.T) {
	user := jwtUser{ID: 7, Name: "Alice", Email: "a@x.com"}

	tokens, err := app.auth.GenerateTokenPair(&user)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}
	if tokens.Token == "" || tokens.RefreshToken == "" {
		t.Fatal("token pair has empty tokens")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.Token)
	rr := httptest.NewRecorder()

	_, claims, err := app.auth.GetTokenFromHeaderAndVerify(rr, req)
	if err != nil {
		t.Fatalf("failed to verify freshly issued token: %v", err)
	}
	if claims.Subject != "7" {
		t.Fatalf("claims subject = %q, want %q", claims.Subject, "7")
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			_, _, err := app.auth.GetTokenFromHeaderAndVerify(rr, req)
			if err == nil {
				t.Fatal("expected verification to fail")
			}
		})
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	other := Auth{
		Issuer:        "someone-else.com",
		Audience:      app.auth.Audience,
		Secret:        app.auth.Secret,
		TokenExpiry:   time.Minute,
		RefreshExpiry: time.Hour,
	}

	tokens, err := other.GenerateTokenPair(&jwtUser{ID: 1, Name: "Alice", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.Token)
	rr := httptest.NewRecorder()

	_, _, err = app.auth.GetTokenFromHeaderAndVerify(rr, req)
	if err == nil {
		t.Fatal("expected token from a different issuer to be rejected")
	}
}

func TestRefreshCookies(t *testing.T) {
	cookie := app.auth.GetRefreshCookie("some-token")
	if cookie.Value != "some-token" {
		t.Fatalf("refresh cookie value = %q, want %q", cookie.Value, "some-token")
	}
	if !cookie.HttpOnly {
		t.Fatal("refresh cookie must be http only")
	}

	expired := app.auth.GetExpiredRefreshCookie()
	if expired.MaxAge != -1 {
		t.Fatalf("expired cookie max age = %d, want -1", expired.MaxAge)
	}
	if expired.Value != "" {
		t.Fatal("expired cookie must have an empty value")
	}
}
