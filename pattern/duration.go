// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"math"
	"time"

	"github.com/nodatime/nodatime-go/internal/cache"
)

// Duration is the elapsed-time value kind (§3): a signed span with
// nanosecond precision. It is the standard library's time.Duration
// directly — no example repo in the retrieval pack offers a big-duration
// type, and time.Duration is exactly the idiomatic Go representation of a
// signed nanosecond span.
type Duration = time.Duration

func durAbsNanos(d Duration) int64 {
	if d < 0 {
		return int64(-d)
	}
	return int64(d)
}
func durNeg(d Duration) bool { return d < 0 }

func durTotalDays(d Duration) int64    { return durAbsNanos(d) / int64(24*time.Hour) }
func durTotalHours(d Duration) int64   { return durAbsNanos(d) / int64(time.Hour) }
func durTotalMinutes(d Duration) int64 { return durAbsNanos(d) / int64(time.Minute) }
func durTotalSeconds(d Duration) int64 { return durAbsNanos(d) / int64(time.Second) }

func durDayRemHours(d Duration) int      { return int((durAbsNanos(d) / int64(time.Hour)) % 24) }
func durHourRemMinutes(d Duration) int   { return int((durAbsNanos(d) / int64(time.Minute)) % 60) }
func durMinuteRemSeconds(d Duration) int { return int((durAbsNanos(d) / int64(time.Second)) % 60) }
func durNanoFraction(d Duration) int     { return int(durAbsNanos(d) % int64(time.Second)) }

// durationBucket is the Bucket for Duration (§3, §4.6): every field
// accumulates into the same day/hour/minute/second/nanosecond components
// regardless of whether a capital "total" letter or a bounded lower-case
// component letter assigned it — see durationBucket.Commit.
type durationBucket struct {
	neg                            bool
	days, hours, minutes, seconds  int64
	nanosecond                     int
}

func newDurationBucket(template Duration) *durationBucket {
	return &durationBucket{
		neg:        durNeg(template),
		days:       durTotalDays(template),
		hours:      int64(durDayRemHours(template)),
		minutes:    int64(durHourRemMinutes(template)),
		seconds:    int64(durMinuteRemSeconds(template)),
		nanosecond: durNanoFraction(template),
	}
}

func (b *durationBucket) setNeg(v bool) error      { b.neg = v; return nil }
func (b *durationBucket) setDays64(v int64) error   { b.days = v; return nil }
func (b *durationBucket) setHours64(v int64) error  { b.hours = v; return nil }
func (b *durationBucket) setMinutes64(v int64) error { b.minutes = v; return nil }
func (b *durationBucket) setSeconds64(v int64) error { b.seconds = v; return nil }
func (b *durationBucket) setHoursInt(v int) error   { b.hours = int64(v); return nil }
func (b *durationBucket) setMinutesInt(v int) error { b.minutes = int64(v); return nil }
func (b *durationBucket) setSecondsInt(v int) error { b.seconds = int64(v); return nil }
func (b *durationBucket) setNanosecond(v int) error { b.nanosecond = v; return nil }

func (b *durationBucket) Commit(FieldSet) (Duration, error) {
	var total int64
	for _, p := range [...]struct{ n, unit int64 }{
		{b.days, int64(24 * time.Hour)}, {b.hours, int64(time.Hour)},
		{b.minutes, int64(time.Minute)}, {b.seconds, int64(time.Second)},
		{int64(b.nanosecond), 1},
	} {
		if p.n > (math.MaxInt64-total)/p.unit {
			return 0, newParseError(ValueOutOfRange, 0, p.n)
		}
		total += p.n * p.unit
	}
	if b.neg {
		total = -total
	}
	return Duration(total), nil
}

// DurationHandlerTable returns the character-handler table for Duration
// patterns (§6.1, §4.6): '+'/'-' sign, capital D/H/M/S for an unbounded
// "total whole units" leading field, lowercase d/h/m/s for bounded
// remainder components, f/F for the fractional-seconds tail.
func DurationHandlerTable() map[rune]Handler[Duration, *durationBucket] {
	table := make(map[rune]Handler[Duration, *durationBucket])

	table['\''] = QuoteHandler[Duration, *durationBucket]()
	table['"'] = QuoteHandler[Duration, *durationBucket]()
	table['\\'] = BackslashHandler[Duration, *durationBucket]()
	table['%'] = PercentHandler(table)

	table['+'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddSignField(pc, b, true, (*durationBucket).setNeg, durNeg)
	}
	table['-'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddSignField(pc, b, false, (*durationBucket).setNeg, durNeg)
	}

	table['D'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField64(pc, b, 19, FieldDurationTotalDays, 0, 1<<62, (*durationBucket).setDays64, durTotalDays)
	}
	table['H'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField64(pc, b, 19, FieldDurationTotalHours, 0, 1<<62, (*durationBucket).setHours64, durTotalHours)
	}
	table['M'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField64(pc, b, 19, FieldDurationTotalMinutes, 0, 1<<62, (*durationBucket).setMinutes64, durTotalMinutes)
	}
	table['S'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField64(pc, b, 19, FieldDurationTotalSeconds, 0, 1<<62, (*durationBucket).setSeconds64, durTotalSeconds)
	}

	table['d'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField64(pc, b, 19, FieldDurationDays, 0, 1<<62, (*durationBucket).setDays64, durTotalDays)
	}
	table['h'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldHours24, 0, 23, (*durationBucket).setHoursInt, durDayRemHours)
	}
	table['m'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldMinutes, 0, 59, (*durationBucket).setMinutesInt, durHourRemMinutes)
	}
	table['s'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldSeconds, 0, 59, (*durationBucket).setSecondsInt, durMinuteRemSeconds)
	}
	table['f'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddFractionField(pc, b, 9, 9, FieldFractionalSeconds, true, (*durationBucket).setNanosecond, durNanoFraction)
	}
	table['F'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddFractionField(pc, b, 9, 9, FieldFractionalSeconds, false, (*durationBucket).setNanosecond, durNanoFraction)
	}
	table['.'] = func(pc *patternCursor, b *Builder[Duration, *durationBucket], _ *LocaleInfo) error {
		return AddPeriodThenFraction(pc, b, 9, 9, FieldFractionalSeconds, false, (*durationBucket).setNanosecond, durNanoFraction)
	}

	return table
}

// standardDurationPatterns implements the round-trip standard pattern 'o'
// (§9's round-trip duration form).
var standardDurationPatterns = &StandardPatterns[Duration, *durationBucket]{
	table: DurationHandlerTable(),
	fixed: map[rune]func() string{
		'o': func() string { return "-D:hh:mm:ss.fffffffff" },
	},
	zeroBucket:    func() *durationBucket { return newDurationBucket(0) },
	compiledCache: cache.Cache[rune, *Compiled[Duration, *durationBucket]]{},
}

// NewDurationPattern compiles a Duration pattern against locale
// (Invariant() if nil) and template.
func NewDurationPattern(text string, locale *LocaleInfo, template Duration) (*Pattern[Duration, *durationBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	return NewPattern(text, locale, func() *durationBucket { return newDurationBucket(template) }, DurationHandlerTable(), standardDurationPatterns)
}
