package jwt

import (
	"errors"
	"testing"
	"time"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedUUID struct{ id string }

func (f fixedUUID) Generate() string { return f.id }

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestJWT(t *testing.T, now time.Time, ttl time.Duration) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    []byte(testSecret),
		Issuer:    "gonote",
		Audiences: []string{"gonote-web"},
		TTL:       ttl,
		Clock:     fixedClock{t: now},
		UUID:      fixedUUID{id: "jti-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}

func TestSymmetricRoundTrip(t *testing.T) {
	now := time.Now()
	s := newTestJWT(t, now, 12*time.Hour)

	token, err := s.Generate(77, "erin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != 77 || claims.UserEmail != "erin@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "77" {
		t.Errorf("expected subject 77, got %q", claims.Subject)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 12*time.Hour {
		t.Errorf("expected 12h ttl, got %v", got)
	}
}

func TestSymmetricVerifyExpired(t *testing.T) {
	issued := newTestJWT(t, time.Now().Add(-13*time.Hour), 12*time.Hour)

	token, err := issued.Generate(77, "erin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verifier := newTestJWT(t, time.Now(), 12*time.Hour)
	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSymmetricVerifyWrongSecret(t *testing.T) {
	s := newTestJWT(t, time.Now(), time.Hour)

	token, err := s.Generate(77, "erin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other, err := NewHS512(Config{
		Secret:    []byte("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210"),
		Issuer:    "gonote",
		Audiences: []string{"gonote-web"},
		TTL:       time.Hour,
		Clock:     fixedClock{t: time.Now()},
		UUID:      fixedUUID{id: "jti-2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}
