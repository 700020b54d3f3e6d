// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"time"

	date "github.com/nodatime/nodatime-go"
	"github.com/nodatime/nodatime-go/internal/cache"
)

// LocalDate is the calendar-date value kind (§3). It is the teacher's own
// Date type, used directly rather than wrapped, since date.Date already
// supplies every getter (Year, Month, Day, Weekday) and constructor (Of)
// this package needs.
type LocalDate = date.Date

// gregorianCalendar is the built-in CalendarSystem backing LocaleInfo.Calendar
// when a locale doesn't supply its own: the same proleptic Gregorian
// calendar date.Date itself implements, with the conventional BC/AD eras.
type gregorianCalendar struct{}

func (gregorianCalendar) Eras() []string { return []string{"BC", "AD"} }
func (gregorianCalendar) MinYear() int   { return -292277022399 }
func (gregorianCalendar) MaxYear() int   { return 292277026596 }
func (gregorianCalendar) Name() string   { return "ISO" }
func (gregorianCalendar) DaysInMonth(year, month int) int {
	return date.Of(year, time.Month(month)+1, 0).Day()
}

var defaultCalendar CalendarSystem = gregorianCalendar{}

func calendarOf(locale *LocaleInfo) CalendarSystem {
	if locale != nil && locale.Calendar != nil {
		return locale.Calendar
	}
	return defaultCalendar
}

// eraAndYearOfEra splits an astronomical (signed, zero-based) year into an
// era identifier and a 1-based year-of-era, per the BC/AD convention: year 0
// is 1 BC, year -1 is 2 BC, and so on.
func eraAndYearOfEra(year int) (era string, yearOfEra int) {
	if year <= 0 {
		return "BC", 1 - year
	}
	return "AD", year
}

func yearFromEraAndYearOfEra(era string, yearOfEra int) int {
	if era == "BC" {
		return 1 - yearOfEra
	}
	return yearOfEra
}

// dateBucket is the Bucket for LocalDate (§3, §4.6).
type dateBucket struct {
	template LocalDate
	calendar CalendarSystem

	year  int // astronomical year; the field actually committed
	month int
	day   int

	eraSet    bool
	era       string
	yearOfEra int

	twoDigitYear int

	dayOfWeekExpect int // 1=Sunday..7=Saturday, 0 if unset
}

func newDateBucket(template LocalDate, cal CalendarSystem) *dateBucket {
	era, yearOfEra := eraAndYearOfEra(template.Year())
	if cal == nil {
		cal = defaultCalendar
	}
	return &dateBucket{
		template:  template,
		calendar:  cal,
		year:      template.Year(),
		month:     int(template.Month()),
		day:       template.Day(),
		era:       era,
		yearOfEra: yearOfEra,
	}
}

func (b *dateBucket) setYearAbsolute(v int64) error { b.year = int(v); return nil }
func (b *dateBucket) setMonth(v int) error           { b.month = v; return nil }
func (b *dateBucket) setDay(v int) error             { b.day = v; return nil }
func (b *dateBucket) setYearOfEra(v int) error       { b.yearOfEra = v; return nil }
func (b *dateBucket) setEra(e string) error          { b.era = e; b.eraSet = true; return nil }
func (b *dateBucket) setTwoDigitYear(v int) error    { b.twoDigitYear = v; return nil }
func (b *dateBucket) setDayOfWeek(v int) error       { b.dayOfWeekExpect = v; return nil }
func (b *dateBucket) setCalendar(string) error       { return nil }

// Commit resolves the year from whichever of {absolute year, era +
// year-of-era, two-digit year} the pattern assigned, rejects a day-of-month
// that doesn't exist in the resolved year/month under b.calendar (§8
// scenario S2 — a pattern must fail, not silently roll over, on "1999-02-
// 29"), checks the day-of-week cross-reference if present, and only then
// builds the final date through date.Of.
func (b *dateBucket) Commit(used FieldSet) (LocalDate, error) {
	year := b.year
	switch {
	case used.HasAny(FieldEra) || used.HasAny(FieldYearOfEra):
		year = yearFromEraAndYearOfEra(b.era, b.yearOfEra)
	case used.Has(FieldYearTwoDigits):
		century := (b.template.Year() / 100) * 100
		year = century + b.twoDigitYear
	}

	if max := b.calendar.DaysInMonth(year, b.month); b.day > max {
		return LocalDate(0), newParseError(FieldValueOutOfRange, 0, b.day, "day_of_month")
	}

	result := date.Of(year, time.Month(b.month), b.day)
	if used.Has(FieldDayOfWeek) && weekdayOneBased(result.Weekday()) != b.dayOfWeekExpect {
		return LocalDate(0), newParseError(InconsistentValues, 0, "day_of_week", "date")
	}

	return result, nil
}

// weekdayOneBased maps time.Sunday..time.Saturday (0..6) to the 1..7
// convention used by FieldDayOfWeek's text/numeric handlers, matching
// LocaleInfo.DaysLong/DaysShort's 1-based indexing.
func weekdayOneBased(w time.Weekday) int { return int(w) + 1 }

// DateHandlerTable returns the character-handler table for LocalDate
// patterns (§6.1, §4.8): uuuu (absolute year), yy/yyyy (year-of-era), g
// (era), MM/MMM/MMMM (month), dd/ddd/dddd (day of month / day of week).
func DateHandlerTable() map[rune]Handler[LocalDate, *dateBucket] {
	table := make(map[rune]Handler[LocalDate, *dateBucket])

	table['\''] = QuoteHandler[LocalDate, *dateBucket]()
	table['"'] = QuoteHandler[LocalDate, *dateBucket]()
	table['\\'] = BackslashHandler[LocalDate, *dateBucket]()
	table['%'] = PercentHandler(table)

	table['u'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], _ *LocaleInfo) error {
		return addAbsoluteYearField(pc, b)
	}
	table['y'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], _ *LocaleInfo) error {
		return addYearOfEraOrTwoDigitField(pc, b)
	}
	table['g'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
		return addEraField(pc, b, locale)
	}
	table['M'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
		return addMonthField(pc, b, locale)
	}
	table['d'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
		return addDayField(pc, b, locale)
	}
	table['c'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
		return addCalendarField(pc, b, locale)
	}
	table['-'] = func(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
		sep := locale.DateSeparator
		b.AddParseStep(func(cur *ValueCursor, _ *dateBucket) error {
			if !cur.MatchString(sep) {
				return newParseError(DateSeparatorMismatch, cur.Pos())
			}
			return nil
		})
		b.AddFormatStep(func(_ LocalDate, out []byte) []byte { return append(out, sep...) })
		return nil
	}

	return table
}

func addAbsoluteYearField(pc *patternCursor, b *Builder[LocalDate, *dateBucket]) error {
	count, err := pc.GetRepeatCount(19)
	if err != nil {
		return err
	}
	if err := b.AddField(FieldYearAbsolute, 'u'); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
		v, err := cur.ParseInt64()
		if err != nil {
			return err
		}
		return bucket.setYearAbsolute(v)
	})
	b.AddFormatStep(func(value LocalDate, out []byte) []byte {
		return LeftPad(int64(value.Year()), count, out)
	})
	return nil
}

// addYearOfEraOrTwoDigitField implements 'y'/'yy'/'yyy'/'yyyy'+: per §4.6/
// scenario S12, exactly two consecutive 'y's means a two-digit year
// truncated/reconstituted against the template's century; any other repeat
// count means the (unsigned) year-of-era.
func addYearOfEraOrTwoDigitField(pc *patternCursor, b *Builder[LocalDate, *dateBucket]) error {
	count, err := pc.GetRepeatCount(19)
	if err != nil {
		return err
	}
	if count == 2 {
		if err := b.AddField(FieldYearTwoDigits, 'y'); err != nil {
			return err
		}
		b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
			v, ok := cur.ParseDigits(2, 2)
			if !ok {
				return newParseError(MismatchedNumber, cur.Pos(), "year_two_digits")
			}
			return bucket.setTwoDigitYear(v)
		})
		b.AddFormatStep(func(value LocalDate, out []byte) []byte {
			return LeftPad(int64(((value.Year()%100)+100)%100), 2, out)
		})
		return nil
	}
	if err := b.AddField(FieldYearOfEra, 'y'); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
		v, ok := cur.ParseDigits(1, count)
		if !ok {
			return newParseError(MismatchedNumber, cur.Pos(), "year_of_era")
		}
		return bucket.setYearOfEra(v)
	})
	b.AddFormatStep(func(value LocalDate, out []byte) []byte {
		_, yoe := eraAndYearOfEra(value.Year())
		return LeftPad(int64(yoe), count, out)
	})
	return nil
}

func addEraField(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
	count, err := pc.GetRepeatCount(2)
	if err != nil {
		return err
	}
	if err := b.AddField(FieldEra, 'g'); err != nil {
		return err
	}
	cal := calendarOf(locale)
	eras := cal.Eras()
	names := locale.EraNames
	_ = count
	b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
		for _, id := range eras {
			name := names[id]
			if name == "" {
				name = id
			}
			if cur.MatchCaseInsensitive(name, true) {
				return bucket.setEra(id)
			}
		}
		return newParseError(MismatchedText, cur.Pos(), "era")
	})
	b.AddFormatStep(func(value LocalDate, out []byte) []byte {
		era, _ := eraAndYearOfEra(value.Year())
		name := names[era]
		if name == "" {
			name = era
		}
		return append(out, name...)
	})
	return nil
}

// addMonthField implements 'M'..'MMMM': 1-2 digit numeric for count<=2,
// short/long text name for count 3/4. The long text form defers to a
// post-pattern format step, since the genitive variant is only selected
// once it's known whether a day-of-month field also appears later in the
// pattern (§4.7/§9).
func addMonthField(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
	count, err := pc.GetRepeatCount(4)
	if err != nil {
		return err
	}
	if count <= 2 {
		if err := b.AddField(FieldMonthOfYearNumeric, pc.Current()); err != nil {
			return err
		}
		b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
			v, ok := cur.ParseDigits(1, count)
			if !ok {
				return newParseError(MismatchedNumber, cur.Pos(), "month_of_year_numeric")
			}
			if v < 1 || v > 12 {
				return newParseError(FieldValueOutOfRange, cur.Pos(), v, "month_of_year_numeric")
			}
			return bucket.setMonth(v)
		})
		b.AddFormatStep(func(value LocalDate, out []byte) []byte {
			return LeftPad(int64(value.Month()), count, out)
		})
		return nil
	}
	if err := b.AddField(FieldMonthOfYearText, pc.Current()); err != nil {
		return err
	}
	long := count == 4
	b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
		names := locale.MonthsShort[1:]
		if long {
			names = locale.MonthsLong[1:]
		}
		i, err := matchTextName(cur, names, FieldMonthOfYearText)
		if err != nil {
			return err
		}
		return bucket.setMonth(i + 1)
	})
	b.AddPostPatternFormatStep(func(used FieldSet) FormatStep[LocalDate] {
		useGenitive := long && used.Has(FieldDayOfMonth)
		return func(value LocalDate, out []byte) []byte {
			m := int(value.Month())
			if !long {
				return append(out, locale.MonthsShort[m]...)
			}
			if useGenitive {
				return append(out, locale.MonthsLongGenitive[m]...)
			}
			return append(out, locale.MonthsLong[m]...)
		}
	})
	return nil
}

func addDayField(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
	count, err := pc.GetRepeatCount(4)
	if err != nil {
		return err
	}
	if count <= 2 {
		if err := b.AddField(FieldDayOfMonth, 'd'); err != nil {
			return err
		}
		b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
			v, ok := cur.ParseDigits(1, 2)
			if !ok {
				return newParseError(MismatchedNumber, cur.Pos(), "day_of_month")
			}
			if v < 1 || v > 31 {
				// Coarse sanity bound only; the actual days-in-month check
				// against the resolved year/month runs in Commit, since the
				// month field may not be known yet at this point in the
				// pattern.
				return newParseError(FieldValueOutOfRange, cur.Pos(), v, "day_of_month")
			}
			return bucket.setDay(v)
		})
		b.AddFormatStep(func(value LocalDate, out []byte) []byte {
			return LeftPad(int64(value.Day()), count, out)
		})
		return nil
	}
	return AddTextField(count, pc, b, FieldDayOfWeek, locale,
		func(l *LocaleInfo) []string { return l.DaysShort[1:] },
		func(l *LocaleInfo) []string { return l.DaysLong[1:] },
		func(bucket *dateBucket, i int) error { return bucket.setDayOfWeek(i + 1) },
		func(v LocalDate) int { return weekdayOneBased(v.Weekday()) - 1 },
	)
}

func addCalendarField(pc *patternCursor, b *Builder[LocalDate, *dateBucket], locale *LocaleInfo) error {
	if _, err := pc.GetRepeatCount(1); err != nil {
		return err
	}
	if err := b.AddField(FieldCalendar, 'c'); err != nil {
		return err
	}
	name := calendarOf(locale).Name()
	b.AddParseStep(func(cur *ValueCursor, bucket *dateBucket) error {
		if !cur.MatchCaseInsensitive(name, true) {
			return newParseError(MismatchedText, cur.Pos(), "calendar")
		}
		return bucket.setCalendar(name)
	})
	b.AddFormatStep(func(_ LocalDate, out []byte) []byte {
		return append(out, name...)
	})
	return nil
}

var standardDatePatterns = &StandardPatterns[LocalDate, *dateBucket]{
	table: DateHandlerTable(),
	fixed: map[rune]func() string{
		'd': func() string { return "uuuu'-'MM'-'dd" }, // ISO round-trip
	},
	locale: map[rune]func(*LocaleInfo) string{
		'D': func(l *LocaleInfo) string { return l.LongDatePattern },
	},
	zeroBucket:    func() *dateBucket { return newDateBucket(date.Of(1, time.January, 1), defaultCalendar) },
	compiledCache: cache.Cache[rune, *Compiled[LocalDate, *dateBucket]]{},
}

// NewDatePattern compiles a LocalDate pattern against locale (Invariant() if
// nil) and the given template value (the zero date.Date if a zero
// LocalDate{} is passed, matching date.Date's own zero value).
func NewDatePattern(text string, locale *LocaleInfo, template LocalDate) (*Pattern[LocalDate, *dateBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	cal := calendarOf(locale)
	return NewPattern(text, locale, func() *dateBucket { return newDateBucket(template, cal) }, DateHandlerTable(), standardDatePatterns)
}
