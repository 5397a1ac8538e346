package validator

import (
	"errors"
	"strings"
	"testing"
)

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=2,max=100"`
}

func TestV10ValidatorPasswordRule(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"minimum length", "abcdef", false},
		{"typical", "secret123", false},
		{"too short", "abc", true},
		{"over bcrypt limit", strings.Repeat("a", 73), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(registerPayload{
				Email:    "test@example.com",
				Password: tc.password,
				FullName: "Test User",
			})
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestV10ValidatorFieldNames(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = v.Validate(registerPayload{Email: "not-an-email", Password: "secret123", FullName: "Test User"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected V10ValidationError, got %T", err)
	}
	if _, ok := verr.Values()["email"]; !ok {
		t.Errorf("expected snake_case field key, got %v", verr.Values())
	}
}
