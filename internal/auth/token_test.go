package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestIssuer(t *testing.T, secret string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(secret, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("new token issuer: %v", err)
	}
	return issuer
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewTokenIssuer("   ", time.Hour); err == nil {
		t.Fatal("expected error for blank secret")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t, "test-secret")

	token, err := issuer.Mint(42, "alice")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("expected username alice, got %q", claims.Username)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
}

func TestTokenExpiry(t *testing.T) {
	issuer := newTestIssuer(t, "test-secret")
	minted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return minted }

	token, err := issuer.Mint(1, "alice")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("verify before expiry: %v", err)
	}

	issuer.now = func() time.Time { return minted.Add(DefaultTokenTTL + time.Minute) }
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := newTestIssuer(t, "secret-one")
	other := newTestIssuer(t, "secret-two")

	token, err := issuer.Mint(1, "alice")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	issuer := newTestIssuer(t, "test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}
