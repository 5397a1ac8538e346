package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	hashed, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !h.Verify(string(hashed), "secret123") {
		t.Error("expected matching password to verify")
	}
	if h.Verify(string(hashed), "wrong-pass") {
		t.Error("expected mismatching password to fail")
	}
}

func TestBcryptPepper(t *testing.T) {
	withPepper := NewBcrypt(bcrypt.MinCost, "pepper")

	hashed, err := withPepper.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !withPepper.Verify(string(hashed), "secret123") {
		t.Error("expected verify to succeed with the same pepper")
	}

	withoutPepper := NewBcrypt(bcrypt.MinCost, "")
	if withoutPepper.Verify(string(hashed), "secret123") {
		t.Error("expected verify to fail without the pepper")
	}
}
