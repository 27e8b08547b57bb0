package rbf

import "strings"

// Overpunch is a legacy signed-numeric encoding where the final character of a
// numeric string encodes both a digit and a sign, using letters: '{' and 'A'
// through 'I' carry a positive sign for digits 0-9, '}' and 'J' through 'R' a
// negative sign for digits 0-9.

const (
	overpunchPositive = "{ABCDEFGHI"
	overpunchNegative = "}JKLMNOPQR"
)

// Overpunch translates the trailing overpunch symbol of s into its digit.
// Only the final character is translated; every other character passes through
// unchanged, and a string whose final character is not an overpunch symbol is
// returned as is. No minus sign is prefixed for negative-coded symbols; use
// OverpunchSign to recover the sign.
func Overpunch(s string) string {
	if s == "" {
		return s
	}
	last := s[len(s)-1]
	if i := strings.IndexByte(overpunchPositive, last); i >= 0 {
		return s[:len(s)-1] + string(rune('0'+i))
	}
	if i := strings.IndexByte(overpunchNegative, last); i >= 0 {
		return s[:len(s)-1] + string(rune('0'+i))
	}
	return s
}

// OverpunchSign reports the sign encoded by the trailing character of s:
// +1 for a positive symbol, -1 for a negative symbol, 0 when the final
// character is not an overpunch symbol (including the empty string).
func OverpunchSign(s string) int {
	if s == "" {
		return 0
	}
	last := s[len(s)-1]
	if strings.IndexByte(overpunchPositive, last) >= 0 {
		return 1
	}
	if strings.IndexByte(overpunchNegative, last) >= 0 {
		return -1
	}
	return 0
}
