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

// MonthDay is a calendar month and day with no year component (§3), e.g. an
// anniversary or a recurring event date.
type MonthDay struct {
	Month int
	Day   int
}

// MonthDayOf builds a MonthDay.
func MonthDayOf(month time.Month, day int) MonthDay { return MonthDay{int(month), day} }

// referenceLeapYear anchors MonthDay's internal LocalDate projection: it
// must be a leap year so that "February 29" round-trips.
const referenceLeapYear = 4

func (md MonthDay) asDate() LocalDate { return date.Of(referenceLeapYear, time.Month(md.Month), md.Day) }

// monthDayBucket wraps a dateBucket the same way yearMonthBucket does,
// anchoring the year to referenceLeapYear so month/day handlers (lifted
// verbatim from DateHandlerTable) have a well-formed date.Of to work
// against.
type monthDayBucket struct{ inner *dateBucket }

func newMonthDayBucket(template MonthDay, cal CalendarSystem) *monthDayBucket {
	return &monthDayBucket{inner: newDateBucket(template.asDate(), cal)}
}

func (b *monthDayBucket) Commit(used FieldSet) (MonthDay, error) {
	d, err := b.inner.Commit(used)
	if err != nil {
		return MonthDay{}, err
	}
	return MonthDay{int(d.Month()), d.Day()}, nil
}

// MonthDayHandlerTable returns the character-handler table for MonthDay
// patterns: 'M' and 'd' (numeric or text), lifted from DateHandlerTable;
// the year-related letters ('u', 'y', 'g', 'c') are omitted, since a
// MonthDay has no year to assign.
func MonthDayHandlerTable() map[rune]Handler[MonthDay, *monthDayBucket] {
	table := make(map[rune]Handler[MonthDay, *monthDayBucket])
	dateTable := DateHandlerTable()
	for _, c := range []rune{'\'', '"', '\\', '%', 'M', 'd', '-'} {
		table[c] = liftToMonthDay(dateTable[c])
	}
	return table
}

func liftToMonthDay(h Handler[LocalDate, *dateBucket]) Handler[MonthDay, *monthDayBucket] {
	return func(pc *patternCursor, b *Builder[MonthDay, *monthDayBucket], locale *LocaleInfo) error {
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
			b.AddParseStep(func(cur *ValueCursor, bucket *monthDayBucket) error {
				return step(cur, bucket.inner)
			})
		}
		for _, slot := range sub.formatSlots {
			slot := slot
			if slot.finalize != nil {
				b.AddPostPatternFormatStep(func(used FieldSet) FormatStep[MonthDay] {
					inner := slot.finalize(used)
					return func(v MonthDay, out []byte) []byte { return inner(v.asDate(), out) }
				})
				continue
			}
			b.AddFormatStep(func(v MonthDay, out []byte) []byte { return slot.immediate(v.asDate(), out) })
		}
		return nil
	}
}

var standardMonthDayPatterns = &StandardPatterns[MonthDay, *monthDayBucket]{
	table: MonthDayHandlerTable(),
	fixed: map[rune]func() string{
		'o': func() string { return "MM'-'dd" }, // ISO round-trip
	},
	zeroBucket:    func() *monthDayBucket { return newMonthDayBucket(MonthDay{1, 1}, defaultCalendar) },
	compiledCache: cache.Cache[rune, *Compiled[MonthDay, *monthDayBucket]]{},
}

// NewMonthDayPattern compiles a MonthDay pattern against locale
// (Invariant() if nil) and template.
func NewMonthDayPattern(text string, locale *LocaleInfo, template MonthDay) (*Pattern[MonthDay, *monthDayBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	cal := calendarOf(locale)
	return NewPattern(text, locale, func() *monthDayBucket { return newMonthDayBucket(template, cal) }, MonthDayHandlerTable(), standardMonthDayPatterns)
}
