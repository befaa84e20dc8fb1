package videoformat

import (
	"strconv"
	"strings"
)

// Fraction is a rational number used for frame rates. The zero value is
// invalid (0/0); a whole number n is represented as n/1.
type Fraction struct {
	Num int
	Den int
}

// ParseFraction parses "num/den" or a plain integer ("30" becomes 30/1).
// Malformed input yields the invalid zero Fraction rather than an error,
// matching the default-on-miss policy of the persisted registry.
func ParseFraction(s string) Fraction {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}
	}

	numStr, denStr, found := strings.Cut(s, "/")
	num, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return Fraction{}
	}
	if !found {
		return Fraction{Num: num, Den: 1}
	}

	den, err := strconv.Atoi(strings.TrimSpace(denStr))
	if err != nil {
		return Fraction{}
	}
	return Fraction{Num: num, Den: den}
}

// String renders the fraction in its round-trippable "num/den" form.
func (f Fraction) String() string {
	return strconv.Itoa(f.Num) + "/" + strconv.Itoa(f.Den)
}

// IsValid reports whether the fraction denotes a positive rate.
func (f Fraction) IsValid() bool {
	return f.Num > 0 && f.Den > 0
}

// Value returns the fraction as a float, or 0 when the denominator is zero.
func (f Fraction) Value() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}
