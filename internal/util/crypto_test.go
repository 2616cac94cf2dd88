package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hashed)
	}

	// empty password is rejected
	if _, err := HashPassword("", 4); err == nil {
		t.Error("empty password should return an error")
	}

	// same password hashes differently (random salt)
	hashed2, _ := HashPassword(password, 4)
	if hashed == hashed2 {
		t.Error("same password should produce different hashes")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password, 4)

	if !CheckPassword(password, hashed) {
		t.Error("correct password should verify")
	}
	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("", hashed) {
		t.Error("empty password should not verify")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash should not verify")
	}
	if CheckPassword(password, "not-a-bcrypt-hash") {
		t.Error("malformed hash should not verify")
	}
}

func TestHashPasswordLowCostFallsBack(t *testing.T) {
	// cost below bcrypt minimum should still produce a usable hash
	hashed, err := HashPassword("Fallback123", 0)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPassword("Fallback123", hashed) {
		t.Error("fallback-cost hash should verify")
	}
}
