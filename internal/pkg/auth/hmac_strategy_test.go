package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	staffID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if staffID != 42 {
		t.Fatalf("expected staff 42, got %d", staffID)
	}
}

func TestHMACStrategyRejectsTamperedToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})
	token, _ := strategy.IssueToken(42)

	raw, _ := base64.StdEncoding.DecodeString(token)
	tampered := strings.Replace(string(raw), "42", "43", 1)
	forged := base64.StdEncoding.EncodeToString([]byte(tampered))

	if _, err := strategy.ParseToken(forged); err != ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsWrongSecret(t *testing.T) {
	token, _ := NewHMACStrategy("secret-a", Options{TTL: time.Hour}).IssueToken(1)

	if _, err := NewHMACStrategy("secret-b", Options{TTL: time.Hour}).ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	// Negative TTL falls back to the default in the constructor, so
	// build an expired payload by hand.
	expired := &HMACStrategy{secret: []byte("secret"), ttl: -time.Minute}
	token, _ := expired.IssueToken(1)

	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token for expired session, got %v", err)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	for _, token := range []string{"", "not-base64!!", base64.StdEncoding.EncodeToString([]byte("no-colons"))} {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected invalid token for %q, got %v", token, err)
		}
	}
}
