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

// YearMonth is a calendar year and month with no day component (§3).
type YearMonth struct {
	Year  int
	Month int
}

// YearMonthOf builds a YearMonth.
func YearMonthOf(year int, month time.Month) YearMonth { return YearMonth{year, int(month)} }

func (ym YearMonth) asDate() LocalDate { return date.Of(ym.Year, time.Month(ym.Month), 1) }

// yearMonthBucket wraps a dateBucket: YearMonth reuses LocalDate's year/era
// handling verbatim and simply never assigns a day, since date.Of's day
// normalization is never exercised by the projection back to YearMonth
// (§4.8's "masked subset of LocalDate" kinds).
type yearMonthBucket struct{ inner *dateBucket }

func newYearMonthBucket(template YearMonth, cal CalendarSystem) *yearMonthBucket {
	return &yearMonthBucket{inner: newDateBucket(template.asDate(), cal)}
}

func (b *yearMonthBucket) Commit(used FieldSet) (YearMonth, error) {
	d, err := b.inner.Commit(used)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{d.Year(), int(d.Month())}, nil
}

// YearMonthHandlerTable returns the character-handler table for YearMonth
// patterns: every LocalDate entry except 'd' (day and day-of-week have no
// meaning without a day component; the date separator is kept), lifted from
// DateHandlerTable so the year/era/month logic is shared verbatim rather
// than reimplemented (§4.9's lifting mechanism).
func YearMonthHandlerTable() map[rune]Handler[YearMonth, *yearMonthBucket] {
	table := make(map[rune]Handler[YearMonth, *yearMonthBucket])
	for c, h := range DateHandlerTable() {
		if c == 'd' {
			continue
		}
		table[c] = liftToYearMonth(h)
	}
	return table
}

func liftToYearMonth(h Handler[LocalDate, *dateBucket]) Handler[YearMonth, *yearMonthBucket] {
	return func(pc *patternCursor, b *Builder[YearMonth, *yearMonthBucket], locale *LocaleInfo) error {
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
			b.AddParseStep(func(cur *ValueCursor, bucket *yearMonthBucket) error {
				return step(cur, bucket.inner)
			})
		}
		for _, slot := range sub.formatSlots {
			slot := slot
			if slot.finalize != nil {
				b.AddPostPatternFormatStep(func(used FieldSet) FormatStep[YearMonth] {
					inner := slot.finalize(used)
					return func(v YearMonth, out []byte) []byte { return inner(v.asDate(), out) }
				})
				continue
			}
			b.AddFormatStep(func(v YearMonth, out []byte) []byte { return slot.immediate(v.asDate(), out) })
		}
		return nil
	}
}

var standardYearMonthPatterns = &StandardPatterns[YearMonth, *yearMonthBucket]{
	table: YearMonthHandlerTable(),
	fixed: map[rune]func() string{
		'o': func() string { return "uuuu'-'MM" }, // ISO round-trip
	},
	zeroBucket:    func() *yearMonthBucket { return newYearMonthBucket(YearMonth{1, 1}, defaultCalendar) },
	compiledCache: cache.Cache[rune, *Compiled[YearMonth, *yearMonthBucket]]{},
}

// NewYearMonthPattern compiles a YearMonth pattern against locale
// (Invariant() if nil) and template.
func NewYearMonthPattern(text string, locale *LocaleInfo, template YearMonth) (*Pattern[YearMonth, *yearMonthBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	cal := calendarOf(locale)
	return NewPattern(text, locale, func() *yearMonthBucket { return newYearMonthBucket(template, cal) }, YearMonthHandlerTable(), standardYearMonthPatterns)
}
