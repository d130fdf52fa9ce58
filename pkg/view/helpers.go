package view

import (
	"fmt"
	"strings"
	"time"
)

// Money formats a decimal amount with its currency symbol.
// E.g., 12.5 USD -> "$12.50"
func Money(amount float64, currency string) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), amount)
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "TRY":
		return "₺"
	default:
		return code + " "
	}
}

// StatusDisplay lower-cases the backend's UPPERCASE order status for display.
func StatusDisplay(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FormatDate renders backend RFC3339 timestamps as "2006-01-02 15:04";
// unparseable input is passed through untouched.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02 15:04")
}
