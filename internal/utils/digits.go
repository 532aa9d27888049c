package utils

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Zero digits of the localized decimal scripts accepted as input
const (
	arabicIndicZero = '٠'
	persianZero     = '۰'
)

// toASCIIDigit maps Arabic-Indic and Persian digits to their ASCII form
func toASCIIDigit(r rune) rune {
	switch {
	case r >= arabicIndicZero && r <= arabicIndicZero+9:
		return '0' + (r - arabicIndicZero)
	case r >= persianZero && r <= persianZero+9:
		return '0' + (r - persianZero)
	}
	return r
}

// NormalizeDigits converts localized digits (Persian, Arabic-Indic, full-width) to
// ASCII and trims surrounding whitespace. Other runes pass through unchanged.
func NormalizeDigits(s string) string {
	t := transform.Chain(width.Narrow, runes.Map(toASCIIDigit))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

// IsDigits reports whether s is non-empty and made of ASCII digits only
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
