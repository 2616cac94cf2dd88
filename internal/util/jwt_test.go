package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, "user-1", "a@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject: expected user-1, got %q", claims.Subject)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("email: expected a@example.com, got %q", claims.Email)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret-a", "user-1", "a@example.com", time.Hour)
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("token signed with another secret should not parse")
	}
}

func TestParseTokenExpired(t *testing.T) {
	// GenerateToken substitutes a default ttl for non-positive values,
	// so build the expired token by hand
	claims := &Claims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not.a.jwt"); err == nil {
		t.Error("malformed token should not parse")
	}
}
