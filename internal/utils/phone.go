package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var nigerianPhone = regexp.MustCompile(`^234[789]\d{9}$`)

// NormalizePhone converts a Nigerian phone number to the canonical
// international digit string (2348012345678). Accepts 08012345678,
// +2348012345678, 2348012345678 and tolerates spaces, dashes and parentheses.
// Normalizing an already-canonical number is a no-op.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	if cleaned == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}

	cleaned = strings.TrimPrefix(cleaned, "+")

	// Convert local 0xxx form to 234xxx
	if strings.HasPrefix(cleaned, "0") && len(cleaned) == 11 {
		cleaned = "234" + cleaned[1:]
	}

	if !nigerianPhone.MatchString(cleaned) {
		return "", fmt.Errorf("invalid Nigerian phone number: %s", phone)
	}

	return cleaned, nil
}

// IsValidPhone reports whether the input normalizes to a valid Nigerian number
func IsValidPhone(phone string) bool {
	_, err := NormalizePhone(phone)
	return err == nil
}

// FormatPhone renders a canonical number for display: 2348012345678 -> 0801 234 5678.
// Inputs that don't normalize are returned unchanged.
func FormatPhone(phone string) string {
	canonical, err := NormalizePhone(phone)
	if err != nil {
		return phone
	}
	local := "0" + canonical[3:]
	return local[:4] + " " + local[4:7] + " " + local[7:]
}
