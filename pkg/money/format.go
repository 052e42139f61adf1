// Package money renders catalog prices for display. The storefront ships a
// single locale convention: grouped thousands with a non-breaking space,
// decimal comma, at most two fraction digits with trailing zeros collapsed
// ("1 000", "99,9", "100").
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("sv-SE"))

// Format renders an amount using the display convention.
func Format(amount float64) string {
	return printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
}

// FormatString parses a decimal-encoded price string and renders it.
// The parse is a standard floating-point parse, matching how catalog price
// strings are interpreted everywhere else.
func FormatString(amount string) (string, error) {
	value, err := Parse(amount)
	if err != nil {
		return "", err
	}
	return Format(value), nil
}

// Parse converts a decimal-encoded price string to a float64.
func Parse(amount string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", amount, err)
	}
	return value, nil
}
