package viewmodel

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount formats the magnitude of amount as dollars with grouping,
// e.g. "$1,234.50".
func FormatAmount(amount decimal.Decimal) string {
	return amountPrinter.Sprintf("$%.2f", amount.Abs().InexactFloat64())
}

// FormatSignedAmount prefixes FormatAmount with "+" for money in and "-" for
// money out.
func FormatSignedAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatAmount(amount)
	}
	return "+" + FormatAmount(amount)
}

// TruncateString shortens s to at most maxLen runes, ending with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

// SanitizeForDisplay replaces control characters and collapses whitespace.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Pluralize returns "1 item" or "n items".
func Pluralize(n int, singular string) string {
	if n == 1 {
		return "1 " + singular
	}
	return amountPrinter.Sprintf("%d %ss", n, singular)
}
