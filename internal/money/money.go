// Package money converts integer minor-unit amounts (cents) into display
// values. Amounts are kept in cents everywhere else; formatting happens only
// at the presentation boundary.
package money

import (
	"fmt"
	"strconv"
)

// Format renders a cent amount as a US-style currency string with a dollar
// sign, thousands separators and two decimal places, e.g. 123456 -> "$1,234.56".
//
// Stored amounts are non-negative by invariant; a negative input is coerced
// to zero rather than producing a string like "$-1.00".
func Format(cents int64) string {
	if cents < 0 {
		cents = 0
	}
	return fmt.Sprintf("$%s.%02d", group(cents/100), cents%100)
}

// ToMajorUnits converts cents to major units as a raw decimal. Used by the
// single-invoice lookup, which returns an editable number instead of a
// formatted string.
func ToMajorUnits(cents int64) float64 {
	return float64(cents) / 100.0
}

// group inserts comma separators into a non-negative integer, e.g. 1234567 ->
// "1,234,567".
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	out = append(out, s[:first]...)
	for i := first; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
