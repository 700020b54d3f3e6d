// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "strings"

// ValueCursor is a forward-only scan over the text being parsed (§4.2, C2).
// Unlike patternCursor it deals in ASCII digits and byte-indexed matches,
// since the parser never needs to look at multi-byte runes except when
// matching literal text copied verbatim from the pattern or locale data.
type ValueCursor struct {
	text string
	pos  int
}

// NewValueCursor starts a cursor at the beginning of text.
func NewValueCursor(text string) *ValueCursor {
	return &ValueCursor{text: text}
}

// Pos returns the current byte offset into the input.
func (c *ValueCursor) Pos() int { return c.pos }

// Remaining returns the unconsumed suffix of the input.
func (c *ValueCursor) Remaining() string { return c.text[c.pos:] }

// AtEnd reports whether the cursor has consumed the entire input.
func (c *ValueCursor) AtEnd() bool { return c.pos >= len(c.text) }

// AdvanceToEnd consumes the rest of the input unconditionally, for handlers
// (like Period's ISO-8601 grammar) that parse their own free-form grammar
// over the remainder rather than stepping through it via Match/ParseDigits.
func (c *ValueCursor) AdvanceToEnd() { c.pos = len(c.text) }

// Match consumes the single byte b if it is next in the input.
func (c *ValueCursor) Match(b byte) bool {
	if c.pos < len(c.text) && c.text[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// MatchString consumes s from the input, ordinally, if it is a prefix of
// the remaining input.
func (c *ValueCursor) MatchString(s string) bool {
	if strings.HasPrefix(c.text[c.pos:], s) {
		c.pos += len(s)
		return true
	}
	return false
}

// CompareOrdinal compares s against the remaining input, byte by byte. It
// returns 0 if they are equal in the overlapping length, a negative number
// if the remaining input is a proper prefix of s (that is, the input ran
// out first) and otherwise the ordinary strings.Compare-style sign.
//
// The special "remaining-shorter-than-match, but a prefix" case (§4.2) is
// what callers use to distinguish "not enough input left" from "input
// diverges from s"; both are failures, but are reported with different
// messages by some handlers.
func (c *ValueCursor) CompareOrdinal(s string) int {
	rem := c.text[c.pos:]
	n := len(rem)
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		if rem[i] != s[i] {
			if rem[i] < s[i] {
				return -1
			}
			return 1
		}
	}
	if len(rem) < len(s) {
		return -1
	}
	return 0
}

// MatchCaseInsensitive compares s against the remaining input
// case-insensitively (ASCII folding only, per §1's non-goal on
// locale-sensitive matching beyond digits/sign). If advanceOnMatch is true
// and s matches, the cursor advances past it.
func (c *ValueCursor) MatchCaseInsensitive(s string, advanceOnMatch bool) bool {
	rem := c.text[c.pos:]
	if len(rem) < len(s) {
		return false
	}
	if !asciiEqualFold(rem[:len(s)], s) {
		return false
	}
	if advanceOnMatch {
		c.pos += len(s)
	}
	return true
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toASCIILower(a[i]) != toASCIILower(b[i]) {
			return false
		}
	}
	return true
}

func toASCIILower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isASCIIDigit(b byte) bool { return '0' <= b && b <= '9' }

// ParseDigits consumes between min and max ASCII digits (greedily, up to
// max) and returns their integer value. It reports false if fewer than min
// digits are available.
func (c *ValueCursor) ParseDigits(min, max int) (int, bool) {
	n, ok := c.parseDigitsN(min, max)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// ParseInt64Digits is like ParseDigits but returns an int64, for fields
// that may exceed the range of int (e.g. Duration's total-unit fields).
func (c *ValueCursor) ParseInt64Digits(min, max int) (int64, bool) {
	return c.parseDigitsN(min, max)
}

func (c *ValueCursor) parseDigitsN(min, max int) (int64, bool) {
	start := c.pos
	var v int64
	count := 0
	for count < max && c.pos < len(c.text) && isASCIIDigit(c.text[c.pos]) {
		v = v*10 + int64(c.text[c.pos]-'0')
		c.pos++
		count++
	}
	if count < min {
		c.pos = start
		return 0, false
	}
	return v, true
}

// ParseFraction parses up to maxDigits ASCII digits and scales the result
// up to scale decimal places: "5" with maxDigits=9, scale=9 yields
// 500_000_000 (§4.2). It requires at least minRequired digits.
func (c *ValueCursor) ParseFraction(maxDigits, scale, minRequired int) (int, bool) {
	start := c.pos
	count := 0
	var v int64
	for count < maxDigits && c.pos < len(c.text) && isASCIIDigit(c.text[c.pos]) {
		v = v*10 + int64(c.text[c.pos]-'0')
		c.pos++
		count++
	}
	if count < minRequired {
		c.pos = start
		return 0, false
	}
	for i := count; i < scale; i++ {
		v *= 10
	}
	return int(v), true
}

// ParseInt64 parses a signed, ASCII, '-'-prefixed integer (§4.2). It
// accepts math.MinInt64 but rejects any other overflow.
func (c *ValueCursor) ParseInt64() (int64, error) {
	const maxUint63 = uint64(1) << 63 // == -math.MinInt64, as an unsigned magnitude

	start := c.pos
	neg := c.Match('-')
	digitsStart := c.pos
	var v uint64
	overflowed := false
	count := 0
	for c.pos < len(c.text) && isASCIIDigit(c.text[c.pos]) {
		d := uint64(c.text[c.pos] - '0')
		if v > (maxUint63-d)/10+1 {
			overflowed = true
		} else {
			v = v*10 + d
		}
		c.pos++
		count++
	}
	if count == 0 {
		c.pos = start
		return 0, newParseError(MismatchedNumber, start, c.text[digitsStart:])
	}
	if neg {
		if overflowed || v > maxUint63 {
			return 0, newParseError(ValueOutOfRange, start, c.text[start:c.pos])
		}
		return -int64(v), nil
	}
	if overflowed || v > maxUint63-1 {
		return 0, newParseError(ValueOutOfRange, start, c.text[start:c.pos])
	}
	return int64(v), nil
}
