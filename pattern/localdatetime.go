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

// LocalDateTime combines a calendar date and a wall-clock time with no zone
// or offset (§3).
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// DateTimeOf combines d and t into a LocalDateTime.
func DateTimeOf(d LocalDate, t LocalTime) LocalDateTime { return LocalDateTime{d, t} }

func (dt LocalDateTime) Date() LocalDate { return dt.date }
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// dateTimeBucket is the Bucket for LocalDateTime: it delegates entirely to
// a date sub-bucket and a time sub-bucket (§3's "composite bucket"
// description), and applies the hour-24 day-overflow carry (§3) on commit.
type dateTimeBucket struct {
	date *dateBucket
	time *timeBucket
}

func newDateTimeBucket(template LocalDateTime, cal CalendarSystem) *dateTimeBucket {
	return &dateTimeBucket{
		date: newDateBucket(template.date, cal),
		time: newTimeBucket(template.time),
	}
}

func (b *dateTimeBucket) Commit(used FieldSet) (LocalDateTime, error) {
	d, err := b.date.Commit(used)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := b.time.Commit(used)
	if err != nil {
		return LocalDateTime{}, err
	}
	if b.time.DayOverflow() {
		d = d.AddDate(0, 0, 1)
	}
	return LocalDateTime{d, t}, nil
}

// DateTimeHandlerTable returns the character-handler table for
// LocalDateTime patterns: the union of DateHandlerTable and
// TimeHandlerTable (their specifier letters are disjoint — dates use
// u/y/g/M/d/c and '/', times H/h/m/s/f/F/t and ':', per §4.8; the shared
// quote, backslash and percent entries come from the time table, which is
// copied in last), plus 'l<...>' to embed a custom LocalDate sub-pattern
// (§4.9).
func DateTimeHandlerTable() map[rune]Handler[LocalDateTime, *dateTimeBucket] {
	table := make(map[rune]Handler[LocalDateTime, *dateTimeBucket])

	for c, h := range liftDateHandlers(DateHandlerTable()) {
		table[c] = h
	}
	for c, h := range liftTimeHandlers(TimeHandlerTable()) {
		table[c] = h
	}

	table['l'] = func(pc *patternCursor, b *Builder[LocalDateTime, *dateTimeBucket], locale *LocaleInfo) error {
		if !pc.Advance() { // now at '<'
			return &CompileError{Kind: InvalidUnitSpecifier, Pos: pc.Pos(), Detail: "expected '<' to start an embedded pattern"}
		}
		cal := calendarOf(locale)
		return EmbeddedSubPattern[LocalDateTime, *dateTimeBucket, LocalDate, *dateBucket](
			pc, b, locale, FieldEmbeddedDate, 'l',
			DateHandlerTable(), func() *dateBucket { return newDateBucket(date.Of(1, time.January, 1), cal) },
			func(v LocalDateTime) LocalDate { return v.date },
			func(bucket *dateTimeBucket, d LocalDate) { bucket.date = newDateBucket(d, bucket.date.calendar) },
		)
	}

	return table
}

// liftDateHandlers adapts a LocalDate handler table to operate against a
// dateTimeBucket's embedded date sub-bucket, so the same handler
// constructors in localdate.go serve both kinds without duplication.
func liftDateHandlers(dateTable map[rune]Handler[LocalDate, *dateBucket]) map[rune]Handler[LocalDateTime, *dateTimeBucket] {
	lifted := make(map[rune]Handler[LocalDateTime, *dateTimeBucket], len(dateTable))
	for c, h := range dateTable {
		h := h
		lifted[c] = func(pc *patternCursor, b *Builder[LocalDateTime, *dateTimeBucket], locale *LocaleInfo) error {
			sub := NewBuilder[LocalDate, *dateBucket]()
			sub.Used = b.Used
			if err := h(pc, sub, locale); err != nil {
				return err
			}
			b.Used = sub.Used
			if sub.formatOnly {
				b.SetFormatOnly()
			}
			for _, step := range sub.ParseSteps {
				step := step
				b.AddParseStep(func(cur *ValueCursor, bucket *dateTimeBucket) error {
					return step(cur, bucket.date)
				})
			}
			liftDateFormatSlots(b, sub)
			return nil
		}
	}
	return lifted
}

func liftDateFormatSlots(b *Builder[LocalDateTime, *dateTimeBucket], sub *Builder[LocalDate, *dateBucket]) {
	for _, slot := range sub.formatSlots {
		slot := slot
		if slot.finalize != nil {
			b.AddPostPatternFormatStep(func(used FieldSet) FormatStep[LocalDateTime] {
				inner := slot.finalize(used)
				return func(v LocalDateTime, out []byte) []byte { return inner(v.date, out) }
			})
			continue
		}
		b.AddFormatStep(func(v LocalDateTime, out []byte) []byte { return slot.immediate(v.date, out) })
	}
}

// liftTimeHandlers is liftDateHandlers's time-kind counterpart.
func liftTimeHandlers(timeTable map[rune]Handler[LocalTime, *timeBucket]) map[rune]Handler[LocalDateTime, *dateTimeBucket] {
	lifted := make(map[rune]Handler[LocalDateTime, *dateTimeBucket], len(timeTable))
	for c, h := range timeTable {
		h := h
		lifted[c] = func(pc *patternCursor, b *Builder[LocalDateTime, *dateTimeBucket], locale *LocaleInfo) error {
			sub := NewBuilder[LocalTime, *timeBucket]()
			sub.Used = b.Used
			if err := h(pc, sub, locale); err != nil {
				return err
			}
			b.Used = sub.Used
			if sub.formatOnly {
				b.SetFormatOnly()
			}
			for _, step := range sub.ParseSteps {
				step := step
				b.AddParseStep(func(cur *ValueCursor, bucket *dateTimeBucket) error {
					return step(cur, bucket.time)
				})
			}
			for _, slot := range sub.formatSlots {
				slot := slot
				if slot.finalize != nil {
					b.AddPostPatternFormatStep(func(used FieldSet) FormatStep[LocalDateTime] {
						inner := slot.finalize(used)
						return func(v LocalDateTime, out []byte) []byte { return inner(v.time, out) }
					})
					continue
				}
				b.AddFormatStep(func(v LocalDateTime, out []byte) []byte { return slot.immediate(v.time, out) })
			}
			return nil
		}
	}
	return lifted
}

var standardDateTimePatterns = &StandardPatterns[LocalDateTime, *dateTimeBucket]{
	table: DateTimeHandlerTable(),
	fixed: map[rune]func() string{
		's': func() string { return "uuuu'-'MM'-'dd'T'HH':'mm':'ss" }, // sortable/ISO round-trip
	},
	zeroBucket: func() *dateTimeBucket {
		return newDateTimeBucket(LocalDateTime{date.Of(1, time.January, 1), Midnight}, defaultCalendar)
	},
	compiledCache: cache.Cache[rune, *Compiled[LocalDateTime, *dateTimeBucket]]{},
}

// NewDateTimePattern compiles a LocalDateTime pattern against locale
// (Invariant() if nil) and template.
func NewDateTimePattern(text string, locale *LocaleInfo, template LocalDateTime) (*Pattern[LocalDateTime, *dateTimeBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	cal := calendarOf(locale)
	return NewPattern(text, locale, func() *dateTimeBucket { return newDateTimeBucket(template, cal) }, DateTimeHandlerTable(), standardDateTimePatterns)
}
