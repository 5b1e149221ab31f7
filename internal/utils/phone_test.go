package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	t.Run("local format", func(t *testing.T) {
		got, err := NormalizePhone("08012345678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "2348012345678" {
			t.Errorf("expected 2348012345678, got %s", got)
		}
	})

	t.Run("plus prefix with spaces", func(t *testing.T) {
		got, err := NormalizePhone("+234 801 234 5678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "2348012345678" {
			t.Errorf("expected 2348012345678, got %s", got)
		}
	})

	t.Run("dashes and parentheses", func(t *testing.T) {
		got, err := NormalizePhone("(080) 1234-5678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "2348012345678" {
			t.Errorf("expected 2348012345678, got %s", got)
		}
	})

	t.Run("already canonical is a no-op", func(t *testing.T) {
		got, err := NormalizePhone("2348012345678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "2348012345678" {
			t.Errorf("expected 2348012345678, got %s", got)
		}

		// Running the output through again must not change it
		again, err := NormalizePhone(got)
		if err != nil {
			t.Fatalf("unexpected error on second pass: %v", err)
		}
		if again != got {
			t.Errorf("normalization not idempotent: %s != %s", again, got)
		}
	})

	t.Run("all network prefixes", func(t *testing.T) {
		for _, phone := range []string{"07012345678", "08012345678", "09012345678"} {
			if _, err := NormalizePhone(phone); err != nil {
				t.Errorf("expected %s to be valid: %v", phone, err)
			}
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, phone := range []string{
			"",
			"12345",
			"06012345678",    // 6 is not a valid network prefix
			"080123456789",   // too long for local form
			"23480123456789", // too long
			"abc",
			"+1 555 0100", // not Nigerian
		} {
			if _, err := NormalizePhone(phone); err == nil {
				t.Errorf("expected %q to be rejected", phone)
			}
		}
	})
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("08012345678") {
		t.Error("expected local form to be valid")
	}
	if IsValidPhone("12345") {
		t.Error("expected short number to be invalid")
	}
}

func TestFormatPhone(t *testing.T) {
	t.Run("canonical to display", func(t *testing.T) {
		if got := FormatPhone("2348012345678"); got != "0801 234 5678" {
			t.Errorf("expected 0801 234 5678, got %s", got)
		}
	})

	t.Run("invalid returned unchanged", func(t *testing.T) {
		if got := FormatPhone("not a phone"); got != "not a phone" {
			t.Errorf("expected passthrough, got %s", got)
		}
	})
}
