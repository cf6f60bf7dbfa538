// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Rat is a rational number as stored by EXIF: a numerator/denominator
// pair that represents non-integer values exactly.
type Rat struct {
	num int64
	den int64
}

// NewRat returns a Rat normalized so that the denominator is positive and
// the pair carries no common divisor. A zero denominator is kept as-is;
// Float64 on such a value yields an infinity, which downstream coercion
// treats as unusable.
func NewRat(num, den int64) Rat {
	if den == 0 {
		return Rat{num: num, den: den}
	}
	gcd := func(a, b int64) int64 {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	if d := gcd(num, den); d != 1 && d != 0 {
		num, den = num/d, den/d
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Rat{num: num, den: den}
}

// Num returns the numerator.
func (r Rat) Num() int64 { return r.num }

// Den returns the denominator.
func (r Rat) Den() int64 { return r.den }

// Float64 returns the float64 representation of the rational number.
func (r Rat) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string is the numerator only.
func (r Rat) String() string {
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// MarshalText renders the rational in its string form, so JSON dumps show
// "1/200" instead of an opaque struct.
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// toNumber coerces v to a float64. It accepts Rats, all numeric types and
// numeric strings. Anything else reports false.
func toNumber(v any) (float64, bool) {
	switch vv := v.(type) {
	case Rat:
		f := vv.Float64()
		return f, true
	case float64:
		return vv, true
	case float32:
		return float64(vv), true
	case int:
		return float64(vv), true
	case int8:
		return float64(vv), true
	case int16:
		return float64(vv), true
	case int32:
		return float64(vv), true
	case int64:
		return float64(vv), true
	case uint:
		return float64(vv), true
	case uint8:
		return float64(vv), true
	case uint16:
		return float64(vv), true
	case uint32:
		return float64(vv), true
	case uint64:
		return float64(vv), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(vv), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// formatFloat renders f with the fewest digits that round-trip.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// printableString removes non-graphic runes and trims surrounding space.
func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

// trimBytesNulls strips leading and trailing NUL bytes.
func trimBytesNulls(b []byte) []byte {
	var lo, hi int
	for lo = 0; lo < len(b) && b[lo] == 0; lo++ {
	}
	for hi = len(b) - 1; hi >= 0 && b[hi] == 0; hi-- {
	}
	if lo > hi {
		return nil
	}
	return b[lo : hi+1]
}
