package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "pw1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if !VerifyPassword(hash, "pw1") {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestVerifyPasswordEmptyHash(t *testing.T) {
	if VerifyPassword("", "anything") {
		t.Fatal("empty hash must never verify")
	}
	if VerifyPassword("   ", "anything") {
		t.Fatal("blank hash must never verify")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash first: %v", err)
	}
	second, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash second: %v", err)
	}
	if first == second {
		t.Fatal("expected per-hash salt to produce distinct hashes")
	}
}
