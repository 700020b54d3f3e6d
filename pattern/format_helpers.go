// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "strconv"

// FormatInvariant appends the ASCII decimal representation of v to out,
// unpadded, with a '-' prefix for negative values (§4.5).
func FormatInvariant(v int64, out []byte) []byte {
	return strconv.AppendInt(out, v, 10)
}

// LeftPad appends v zero-padded to at least width digits. Negative values
// have their sign emitted before the padded digits, not inside them.
func LeftPad(v int64, width int, out []byte) []byte {
	neg := v < 0
	if neg {
		out = append(out, '-')
		v = -v
	}
	return appendZeroPadded(out, v, width)
}

func appendZeroPadded(out []byte, v int64, width int) []byte {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < width; i++ {
		out = append(out, '0')
	}
	return append(out, s...)
}

// RightPad emits value / 10^(scale-width), zero-padded on the left up to
// width digits (§4.5). It is used for fixed-width fraction rendering, e.g.
// formatting a nanosecond count to millisecond precision.
func RightPad(value int64, width, scale int, out []byte) []byte {
	for i := scale; i > width; i-- {
		value /= 10
	}
	return appendZeroPadded(out, value, width)
}

// RightPadTruncate is like RightPad, but trims trailing zeros from the
// result. It backs the "F" specifier and the other fraction writers that
// omit trailing zeros (§4.5).
func RightPadTruncate(value int64, width, scale int, out []byte) []byte {
	start := len(out)
	out = RightPad(value, width, scale, out)
	return trimTrailingZeros(out, start)
}

// AppendFractionTruncate writes up to max digits of value (scaled per
// scale) with trailing zeros trimmed (§4.5).
func AppendFractionTruncate(value int64, max, scale int, out []byte) []byte {
	return RightPadTruncate(value, max, scale, out)
}

func trimTrailingZeros(out []byte, from int) []byte {
	end := len(out)
	for end > from && out[end-1] == '0' {
		end--
	}
	return out[:end]
}
