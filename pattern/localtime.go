// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"

	"github.com/nodatime/nodatime-go/internal/cache"
)

// LocalTime is a wall-clock time with nanosecond precision, carrying no
// time zone or date (§3's "wall-clock time" value kind). Like the
// teacher's Date type, it is a small, comparable value; arithmetic beyond
// construction is out of scope (§1) — the engine only needs the field
// getters below.
type LocalTime struct {
	hour, minute, second, nanosecond int
}

// TimeOf returns the LocalTime for the given clock fields. It panics if any
// field is out of its usual range; unlike Date.Of this type does not
// normalize, since "30 minutes" has no sensible carry target without also
// knowing the hour.
func TimeOf(hour, minute, second, nanosecond int) LocalTime {
	if hour < 0 || hour > 23 {
		panic(fmt.Sprintf("date/pattern: hour %d out of range", hour))
	}
	if minute < 0 || minute > 59 {
		panic(fmt.Sprintf("date/pattern: minute %d out of range", minute))
	}
	if second < 0 || second > 59 {
		panic(fmt.Sprintf("date/pattern: second %d out of range", second))
	}
	if nanosecond < 0 || nanosecond > 999_999_999 {
		panic(fmt.Sprintf("date/pattern: nanosecond %d out of range", nanosecond))
	}
	return LocalTime{hour, minute, second, nanosecond}
}

// Midnight is the zero value of LocalTime, and the default template for
// time-kind patterns (§3).
var Midnight = LocalTime{}

func (t LocalTime) Hour() int       { return t.hour }
func (t LocalTime) Minute() int     { return t.minute }
func (t LocalTime) Second() int     { return t.second }
func (t LocalTime) Nanosecond() int { return t.nanosecond }

// Hour12 returns the 12-hour clock hour (1..12).
func (t LocalTime) Hour12() int {
	h := t.hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

// IsPM reports whether t falls in the afternoon half of the day.
func (t LocalTime) IsPM() bool { return t.hour >= 12 }

// timeBucket is the Bucket implementation for LocalTime (§3/§4.6).
type timeBucket struct {
	template LocalTime

	hour24, hour12         int
	isPM                   bool
	minute, second, nanosecond int

	hour24Was24 bool
	dayOverflow bool // set by Commit when the hour-24 special case applies
}

func newTimeBucket(template LocalTime) *timeBucket {
	return &timeBucket{
		template:   template,
		hour24:     template.Hour(),
		hour12:     template.Hour12(),
		isPM:       template.IsPM(),
		minute:     template.Minute(),
		second:     template.Second(),
		nanosecond: template.Nanosecond(),
	}
}

func (b *timeBucket) setHour24(v int) error {
	if v == 24 {
		b.hour24Was24 = true
	}
	b.hour24 = v
	return nil
}
func (b *timeBucket) setHour12(v int) error     { b.hour12 = v; return nil }
func (b *timeBucket) setAmPm(v int) error       { b.isPM = v == 1; return nil }
func (b *timeBucket) setMinute(v int) error     { b.minute = v; return nil }
func (b *timeBucket) setSecond(v int) error     { b.second = v; return nil }
func (b *timeBucket) setNanosecond(v int) error { b.nanosecond = v; return nil }

// DayOverflow reports whether the most recent Commit resolved an "hour 24"
// input, meaning the composite date-time bucket embedding this one must add
// one day to its date component (§3).
func (b *timeBucket) DayOverflow() bool { return b.dayOverflow }

// Commit resolves the 12/24-hour and AM/PM cross-checks and the hour-24
// special case described in §4.6.
func (b *timeBucket) Commit(used FieldSet) (LocalTime, error) {
	hour24 := b.hour24

	switch {
	case used.Has(FieldHours12) && used.Has(FieldHours24):
		if b.hour12%12 != hour24%12 {
			return LocalTime{}, newParseError(InconsistentValues, 0, "h", "H")
		}
	case used.Has(FieldHours12) && !used.Has(FieldHours24):
		pm := b.template.IsPM()
		if used.Has(FieldAmPm) {
			pm = b.isPM
		}
		hour24 = b.hour12 % 12
		if pm {
			hour24 += 12
		}
	case !used.Has(FieldHours12) && !used.Has(FieldHours24) && used.Has(FieldAmPm):
		hour24 = b.template.Hour12() % 12
		if b.isPM {
			hour24 += 12
		}
	}

	if used.Has(FieldAmPm) && used.Has(FieldHours24) {
		want := 0
		if b.isPM {
			want = 1
		}
		if hour24/12 != want {
			return LocalTime{}, newParseError(InconsistentValues, 0, "H", "t")
		}
	}

	b.dayOverflow = false
	if b.hour24Was24 && hour24 == 24 {
		if b.minute != 0 || b.second != 0 || b.nanosecond != 0 {
			return LocalTime{}, newParseError(InvalidHour24, 0)
		}
		hour24 = 0
		b.dayOverflow = true
	}

	return LocalTime{hour24, b.minute, b.second, b.nanosecond}, nil
}

// TimeHandlerTable returns the character-handler table for LocalTime
// patterns (§6.1, §4.8): HH (24-hour, 0..24), hh (12-hour, 1..12), mm, ss,
// f/F fractional seconds, .F/;F optional fraction, t/tt AM/PM, plus the
// shared quoting/escape handlers.
func TimeHandlerTable() map[rune]Handler[LocalTime, *timeBucket] {
	table := make(map[rune]Handler[LocalTime, *timeBucket])

	table['\''] = QuoteHandler[LocalTime, *timeBucket]()
	table['"'] = QuoteHandler[LocalTime, *timeBucket]()
	table['\\'] = BackslashHandler[LocalTime, *timeBucket]()
	table['%'] = PercentHandler(table)

	table['H'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldHours24, 0, 24,
			(*timeBucket).setHour24, LocalTime.Hour)
	}
	table['h'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldHours12, 1, 12,
			(*timeBucket).setHour12, LocalTime.Hour12)
	}
	table['m'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldMinutes, 0, 59,
			(*timeBucket).setMinute, LocalTime.Minute)
	}
	table['s'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldSeconds, 0, 59,
			(*timeBucket).setSecond, LocalTime.Second)
	}
	table['f'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddFractionField(pc, b, 9, 9, FieldFractionalSeconds, true,
			(*timeBucket).setNanosecond, LocalTime.Nanosecond)
	}
	table['F'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddFractionField(pc, b, 9, 9, FieldFractionalSeconds, false,
			(*timeBucket).setNanosecond, LocalTime.Nanosecond)
	}
	table['.'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddPeriodThenFraction(pc, b, 9, 9, FieldFractionalSeconds, false,
			(*timeBucket).setNanosecond, LocalTime.Nanosecond)
	}
	table[';'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], _ *LocaleInfo) error {
		return AddPeriodThenFraction(pc, b, 9, 9, FieldFractionalSeconds, true,
			(*timeBucket).setNanosecond, LocalTime.Nanosecond)
	}
	table['t'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], locale *LocaleInfo) error {
		return addAmPmField(pc, b, locale)
	}
	table[':'] = func(pc *patternCursor, b *Builder[LocalTime, *timeBucket], locale *LocaleInfo) error {
		b.AddParseStep(timeSeparatorParse(locale))
		return addLiteralTimeSeparator(b, locale)
	}

	return table
}

// addAmPmField implements 't'/'tt': 't' consumes/emits only the first
// character of the designator (§9's resolved ambiguity #1: only the single
// character is consumed, never the whole word), 'tt' consumes/emits the
// full designator.
func addAmPmField(pc *patternCursor, b *Builder[LocalTime, *timeBucket], locale *LocaleInfo) error {
	count, err := pc.GetRepeatCount(2)
	if err != nil {
		return err
	}
	if err := b.AddField(FieldAmPm, 't'); err != nil {
		return err
	}
	am, pm := locale.AmDesignator, locale.PmDesignator
	full := count == 2
	b.AddParseStep(func(cur *ValueCursor, bucket *timeBucket) error {
		amTok, pmTok := am, pm
		if !full {
			amTok, pmTok = am[:1], pm[:1]
		}
		if cur.MatchCaseInsensitive(pmTok, true) {
			return bucket.setAmPm(1)
		}
		if cur.MatchCaseInsensitive(amTok, true) {
			return bucket.setAmPm(0)
		}
		return newParseError(MissingAmPmDesignator, cur.Pos())
	})
	b.AddFormatStep(func(v LocalTime, out []byte) []byte {
		tok := am
		if v.IsPM() {
			tok = pm
		}
		if !full {
			tok = tok[:1]
		}
		return append(out, tok...)
	})
	return nil
}

func timeSeparatorParse(locale *LocaleInfo) ParseStep[*timeBucket] {
	sep := locale.TimeSeparator
	return func(cur *ValueCursor, _ *timeBucket) error {
		if !cur.MatchString(sep) {
			return newParseError(TimeSeparatorMismatch, cur.Pos())
		}
		return nil
	}
}

func addLiteralTimeSeparator(b *Builder[LocalTime, *timeBucket], locale *LocaleInfo) error {
	sep := locale.TimeSeparator
	b.AddFormatStep(func(_ LocalTime, out []byte) []byte {
		return append(out, sep...)
	})
	return nil
}

// standardTimePatterns supplies the C10 expander for single-character
// standard time patterns.
var standardTimePatterns = &StandardPatterns[LocalTime, *timeBucket]{
	table: TimeHandlerTable(),
	fixed: map[rune]func() string{
		'o': func() string { return "HH':'mm':'ss;FFFFFFFFF" }, // round-trip, trims trailing zeros
		'r': func() string { return "HH':'mm':'ss;fffffffff" }, // round-trip, exact 9 digits
	},
	locale: map[rune]func(*LocaleInfo) string{
		't': func(l *LocaleInfo) string { return l.ShortTimePattern },
		'T': func(l *LocaleInfo) string { return l.LongTimePattern },
	},
	zeroBucket:    func() *timeBucket { return newTimeBucket(Midnight) },
	compiledCache: cache.Cache[rune, *Compiled[LocalTime, *timeBucket]]{},
}

// NewTimePattern compiles a LocalTime pattern against locale (Invariant() if
// nil) and template.
func NewTimePattern(text string, locale *LocaleInfo, template LocalTime) (*Pattern[LocalTime, *timeBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	return NewPattern(text, locale, func() *timeBucket { return newTimeBucket(template) }, TimeHandlerTable(), standardTimePatterns)
}
