// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"strconv"
	"strings"
)

// Period is the calendar-and-clock elapsed-time value kind (§3): unlike
// Duration, each component carries its own independent signed magnitude and
// is never normalized against the others on its own (a Period of "1 month,
// 35 days" is distinct from "2 months, 5 days" until something normalizes
// it), since the length of a month or a day is calendar-dependent.
type Period struct {
	Years, Months, Weeks, Days                         int64
	Hours, Minutes, Seconds, Milliseconds, Ticks, Nanoseconds int64
}

// IsZero reports whether every component of p is zero.
func (p Period) IsZero() bool { return p == Period{} }

// Normalize folds Ticks, Milliseconds and Seconds upward into Minutes and
// Hours, and Weeks into Days, the way NormalizingIso's pattern does before
// formatting (§4.6). Years and Months are never normalized into each other
// or into Days, since their length is calendar-dependent.
func (p Period) Normalize() Period {
	totalNanos := p.Nanoseconds + p.Ticks*100 + p.Milliseconds*1_000_000 + p.Seconds*1_000_000_000
	totalSeconds := totalNanos / 1_000_000_000
	nanos := totalNanos % 1_000_000_000
	totalMinutes := p.Minutes + totalSeconds/60
	seconds := totalSeconds % 60
	hours := p.Hours + totalMinutes/60
	minutes := totalMinutes % 60
	days := p.Days + p.Weeks*7
	return Period{
		Years: p.Years, Months: p.Months, Days: days,
		Hours: hours, Minutes: minutes, Seconds: seconds, Nanoseconds: nanos,
	}
}

// periodBucket is the Bucket for Period. Unlike every other kind, Period's
// patterns are fixed ISO-8601-shaped standard patterns rather than a
// per-character custom grammar (§4.9) — mirroring the reference
// implementation this package follows, whose Period type likewise exposes
// only Roundtrip and NormalizingIso patterns and no custom pattern builder
// — so the bucket exists only to satisfy the Bucket[T] interface the shared
// Compiled machinery expects.
type periodBucket struct {
	value   Period
	touched bool
}

func newPeriodBucket() *periodBucket { return &periodBucket{} }

func (b *periodBucket) Commit(FieldSet) (Period, error) {
	if !b.touched {
		return Period{}, newParseError(EmptyPeriod, 0)
	}
	return b.value, nil
}

// allPeriodFields is every FieldPeriod* bit: the ISO writer always reads
// every component of a Period, so both standard patterns assign the full
// mask unconditionally.
const allPeriodFields = FieldPeriodYears | FieldPeriodMonths | FieldPeriodWeeks | FieldPeriodDays |
	FieldPeriodHours | FieldPeriodMinutes | FieldPeriodSeconds | FieldPeriodMilliseconds |
	FieldPeriodTicks | FieldPeriodNanoseconds

func compilePeriodPattern(text string, normalize bool) *Compiled[Period, *periodBucket] {
	parseStep := func(cur *ValueCursor, bucket *periodBucket) error {
		p, touched, err := parseISO8601Period(cur.Remaining())
		if err != nil {
			return err
		}
		bucket.value, bucket.touched = p, touched
		cur.AdvanceToEnd()
		return nil
	}
	formatStep := func(v Period, out []byte) []byte {
		if normalize {
			v = v.Normalize()
		}
		return appendISO8601Period(v, out)
	}
	return &Compiled[Period, *periodBucket]{
		Text:        text,
		Used:        FieldSet(allPeriodFields),
		ParseSteps:  []ParseStep[*periodBucket]{parseStep},
		FormatSteps: []FormatStep[Period]{formatStep},
		CanParse:    true,
		NewBucket:   newPeriodBucket,
	}
}

// appendISO8601Period writes p in ISO-8601 duration shape, e.g.
// "P1Y2M3DT4H5M6.789S", omitting every zero component and the whole "T..."
// clock section when it would be empty. A wholly zero period still needs at
// least one component to be a valid ISO-8601 duration, so it is written as
// "P0D".
func appendISO8601Period(p Period, out []byte) []byte {
	out = append(out, 'P')
	start := len(out)
	if p.Years != 0 {
		out = appendComponent(out, p.Years, 'Y')
	}
	if p.Months != 0 {
		out = appendComponent(out, p.Months, 'M')
	}
	if p.Weeks != 0 {
		out = appendComponent(out, p.Weeks, 'W')
	}
	if p.Days != 0 {
		out = appendComponent(out, p.Days, 'D')
	}
	subsecondNanos := p.Milliseconds*1_000_000 + p.Ticks*100 + p.Nanoseconds
	hasTime := p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 || subsecondNanos != 0
	if hasTime {
		out = append(out, 'T')
		if p.Hours != 0 {
			out = appendComponent(out, p.Hours, 'H')
		}
		if p.Minutes != 0 {
			out = appendComponent(out, p.Minutes, 'M')
		}
		if p.Seconds != 0 || subsecondNanos != 0 {
			out = appendSecondsComponent(out, p.Seconds, subsecondNanos)
		}
	}
	if len(out) == start {
		out = append(out, '0', 'D')
	}
	return out
}

func appendComponent(out []byte, v int64, unit byte) []byte {
	out = strconv.AppendInt(out, v, 10)
	return append(out, unit)
}

func appendSecondsComponent(out []byte, seconds, nanos int64) []byte {
	neg := seconds < 0 || (seconds == 0 && nanos < 0)
	if neg {
		out = append(out, '-')
		seconds, nanos = -seconds, -nanos
	}
	out = strconv.AppendInt(out, seconds, 10)
	if nanos != 0 {
		out = append(out, '.')
		out = RightPadTruncate(nanos, 9, 9, out)
	}
	return append(out, 'S')
}

// parseISO8601Period parses the ISO-8601 duration grammar "P[n Y][n M][n
// W][n D][T[n H][n M][n[.f] S]]". touched reports whether at least one
// component was present, distinguishing a genuinely empty specification
// ("P" or "PT") from a zero-valued period ("P0D").
func parseISO8601Period(s string) (Period, bool, error) {
	if len(s) == 0 || s[0] != 'P' {
		return Period{}, false, newParseError(CannotParseValue, 0, s, "ISO-8601 period")
	}
	s = s[1:]
	var p Period
	touched := false

	dateUnits := []struct {
		unit byte
		dst  *int64
	}{{'Y', &p.Years}, {'M', &p.Months}, {'W', &p.Weeks}, {'D', &p.Days}}
	nextDateUnit := 0
	for len(s) > 0 && s[0] != 'T' {
		n, rest, err := scanPeriodComponent(s)
		if err != nil {
			return Period{}, false, err
		}
		pos := -1
		for i, u := range dateUnits {
			if rest.unit == u.unit {
				pos = i
				break
			}
		}
		switch {
		case pos < 0:
			return Period{}, false, newParseError(CannotParseValue, 0, s, "ISO-8601 period")
		case pos == nextDateUnit-1:
			return Period{}, false, newParseError(RepeatedUnitSpecifier, 0, string(rest.unit))
		case pos < nextDateUnit:
			return Period{}, false, newParseError(MisplacedUnitSpecifier, 0, string(rest.unit))
		}
		*dateUnits[pos].dst = n
		nextDateUnit = pos + 1
		s = rest.remainder
		touched = true
	}
	if len(s) > 0 && s[0] == 'T' {
		s = s[1:]
		timeUnits := []struct {
			unit byte
			dst  *int64
		}{{'H', &p.Hours}, {'M', &p.Minutes}}
		for _, u := range timeUnits {
			if len(s) == 0 || s[0] == 'S' {
				break
			}
			n, rest, err := scanPeriodComponent(s)
			if err != nil {
				return Period{}, false, err
			}
			if rest.unit != u.unit {
				continue
			}
			*u.dst = n
			s = rest.remainder
			touched = true
		}
		if len(s) > 0 {
			whole, nanos, rest, err := scanPeriodSeconds(s)
			if err != nil {
				return Period{}, false, err
			}
			p.Seconds, p.Nanoseconds = whole, nanos
			s = rest
			touched = true
		}
	}
	if len(s) != 0 {
		return Period{}, false, newParseError(ExtraValueCharacters, 0, s)
	}
	return p, touched, nil
}

type periodComponentRest struct {
	unit      byte
	remainder string
}

func scanPeriodComponent(s string) (int64, periodComponentRest, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start || i >= len(s) {
		return 0, periodComponentRest{}, newParseError(CannotParseValue, 0, s, "ISO-8601 period component")
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, periodComponentRest{}, newParseError(CannotParseValue, 0, s, "ISO-8601 period component")
	}
	return n, periodComponentRest{unit: s[i], remainder: s[i+1:]}, nil
}

func scanPeriodSeconds(s string) (whole, nanos int64, remainder string, err error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, 0, "", newParseError(CannotParseValue, 0, s, "ISO-8601 period seconds")
	}
	whole, err = strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, 0, "", newParseError(CannotParseValue, 0, s, "ISO-8601 period seconds")
	}
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		frac := s[fracStart:i]
		for len(frac) < 9 {
			frac += "0"
		}
		frac = frac[:9]
		n, _ := strconv.ParseInt(frac, 10, 64)
		nanos = n
		if whole < 0 {
			nanos = -nanos
		}
	}
	if i >= len(s) || s[i] != 'S' {
		return 0, 0, "", newParseError(CannotParseValue, 0, s, "ISO-8601 period seconds")
	}
	remainder = s[i+1:]
	return whole, nanos, remainder, nil
}

// NewPeriodPattern compiles the named Period standard pattern: "o"
// (Roundtrip, the stored components verbatim) or "n" (NormalizingIso, the
// components folded via Normalize before formatting). Any other text is
// UnknownStandardFormat; Period, unlike every other kind, has no
// locale-dependent or custom per-character pattern grammar.
func NewPeriodPattern(text string) (*Pattern[Period, *periodBucket], error) {
	var normalize bool
	switch text {
	case "o":
		normalize = false
	case "n":
		normalize = true
	default:
		return nil, &CompileError{Kind: UnknownStandardFormat, Detail: strings.TrimSpace(text)}
	}
	return &Pattern[Period, *periodBucket]{
		text:      text,
		newBucket: newPeriodBucket,
		compiled:  compilePeriodPattern(text, normalize),
	}, nil
}
