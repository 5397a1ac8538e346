package otp

import (
	"strconv"
	"testing"
)

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric()

	for range 200 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range", n)
		}
	}
}
