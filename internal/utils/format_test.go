package utils

import (
	"testing"
	"time"
)

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{1500, "₦1,500"},
		{1234567, "₦1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatNaira(tc.amount); got != tc.want {
			t.Errorf("FormatNaira(%v) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestFormatNairaCompact(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{500, "₦500"},
		{15000, "₦15.0K"},
		{2500000, "₦2.5M"},
	}
	for _, tc := range cases {
		if got := FormatNairaCompact(tc.amount); got != tc.want {
			t.Errorf("FormatNairaCompact(%v) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-2 * time.Hour), "2 hours ago"},
		{now.Add(-26 * time.Hour), "1 day ago"},
		{now.Add(-72 * time.Hour), "3 days ago"},
	}
	for _, tc := range cases {
		if got := FormatRelativeTime(tc.t); got != tc.want {
			t.Errorf("FormatRelativeTime(%v) = %s, want %s", tc.t, got, tc.want)
		}
	}
}
