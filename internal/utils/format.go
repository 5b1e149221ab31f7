package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatNaira renders an amount as whole-naira currency with digit grouping,
// e.g. 1234567 -> ₦1,234,567
func FormatNaira(amount float64) string {
	return printer.Sprintf("₦%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// FormatNairaCompact renders large amounts in K/M shorthand for tight columns
func FormatNairaCompact(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("₦%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("₦%.1fK", amount/1_000)
	default:
		return FormatNaira(amount)
	}
}

// FormatRelativeTime renders a timestamp as "5 minutes ago" style text
func FormatRelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		m := int(d.Minutes())
		if m == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
