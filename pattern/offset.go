// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "github.com/nodatime/nodatime-go/internal/cache"

// Offset is the UTC-offset value kind (§3): a signed number of seconds
// east of UTC, second precision.
type Offset int

// OffsetFromSeconds builds an Offset directly from a signed second count.
func OffsetFromSeconds(seconds int) Offset { return Offset(seconds) }

// Zero is the zero UTC offset.
const Zero Offset = 0

func (o Offset) Seconds() int  { return int(o) }
func (o Offset) negative() bool { return o < 0 }
func (o Offset) magnitude() int {
	if o < 0 {
		return int(-o)
	}
	return int(o)
}
func (o Offset) absHours() int   { return o.magnitude() / 3600 }
func (o Offset) absMinutes() int { return (o.magnitude() / 60) % 60 }
func (o Offset) absSeconds() int { return o.magnitude() % 60 }

// offsetBucket is the Bucket for Offset (§3, §4.9).
type offsetBucket struct {
	neg                     bool
	hours, minutes, seconds int
}

func newOffsetBucket(template Offset) *offsetBucket {
	return &offsetBucket{
		neg:     template.negative(),
		hours:   template.absHours(),
		minutes: template.absMinutes(),
		seconds: template.absSeconds(),
	}
}

func (b *offsetBucket) setNeg(v bool) error    { b.neg = v; return nil }
func (b *offsetBucket) setHours(v int) error   { b.hours = v; return nil }
func (b *offsetBucket) setMinutes(v int) error { b.minutes = v; return nil }
func (b *offsetBucket) setSeconds(v int) error { b.seconds = v; return nil }

func (b *offsetBucket) Commit(FieldSet) (Offset, error) {
	total := b.hours*3600 + b.minutes*60 + b.seconds
	if b.neg {
		total = -total
	}
	return Offset(total), nil
}

// OffsetHandlerTable returns the character-handler table for Offset
// patterns (§6.1, §4.9): '+'/'-' sign, HH hours, mm minutes, ss seconds.
// A 'Z' anywhere in the compiled text fails with ZPrefixNotAtStart; the
// leading-'Z' form is handled by NewOffsetPattern before compiling. The
// table has no 'o<...>' embedding entry.
func OffsetHandlerTable() map[rune]Handler[Offset, *offsetBucket] {
	table := make(map[rune]Handler[Offset, *offsetBucket])

	table['\''] = QuoteHandler[Offset, *offsetBucket]()
	table['"'] = QuoteHandler[Offset, *offsetBucket]()
	table['\\'] = BackslashHandler[Offset, *offsetBucket]()
	table['%'] = PercentHandler(table)

	table['+'] = func(pc *patternCursor, b *Builder[Offset, *offsetBucket], _ *LocaleInfo) error {
		return AddSignField(pc, b, true, (*offsetBucket).setNeg, Offset.negative)
	}
	table['-'] = func(pc *patternCursor, b *Builder[Offset, *offsetBucket], _ *LocaleInfo) error {
		return AddSignField(pc, b, false, (*offsetBucket).setNeg, Offset.negative)
	}
	table['H'] = func(pc *patternCursor, b *Builder[Offset, *offsetBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldHours24, 0, 23, (*offsetBucket).setHours, Offset.absHours)
	}
	table['m'] = func(pc *patternCursor, b *Builder[Offset, *offsetBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldMinutes, 0, 59, (*offsetBucket).setMinutes, Offset.absMinutes)
	}
	table['s'] = func(pc *patternCursor, b *Builder[Offset, *offsetBucket], _ *LocaleInfo) error {
		return AddPaddedField(pc, b, 2, FieldSeconds, 0, 59, (*offsetBucket).setSeconds, Offset.absSeconds)
	}
	table['Z'] = func(pc *patternCursor, _ *Builder[Offset, *offsetBucket], _ *LocaleInfo) error {
		return &CompileError{Kind: ZPrefixNotAtStart, Pos: pc.Pos(), Char: 'Z'}
	}

	return table
}

// standardOffsetPatterns implements the four canonical named widths 'f'
// (full), 'l' (long), 'm' (medium) and 's' (short) described in §4.9's
// general-offset selector, each a fixed-width locale pattern — the pattern
// character picks the width, rather than the width being chosen from the
// value the way the 'g' general pattern (compileGeneralOffset) does.
var standardOffsetPatterns = &StandardPatterns[Offset, *offsetBucket]{
	table: OffsetHandlerTable(),
	locale: map[rune]func(*LocaleInfo) string{
		'f': func(l *LocaleInfo) string { return l.FullOffsetPattern },
		'l': func(l *LocaleInfo) string { return l.LongOffsetPattern },
		'm': func(l *LocaleInfo) string { return l.MediumOffsetPattern },
		's': func(l *LocaleInfo) string { return l.ShortOffsetPattern },
	},
	zeroBucket:    func() *offsetBucket { return newOffsetBucket(Zero) },
	compiledCache: cache.Cache[rune, *Compiled[Offset, *offsetBucket]]{},
}

// compileGeneralOffset implements the 'g' general offset pattern: it
// formats using whichever of the full/medium/short component widths is the
// narrowest that still shows every non-zero component (§4.9's composite
// general-offset selector), via CompositeFormat. It is format-only: a
// general pattern's width varies by value, so there is no single grammar to
// parse against, the same way a zone abbreviation is format-only.
func compileGeneralOffset(locale *LocaleInfo, newBucket func() *offsetBucket) (*Compiled[Offset, *offsetBucket], error) {
	table := OffsetHandlerTable()
	full, err := Compile("+HH':'mm':'ss", table, locale, newBucket)
	if err != nil {
		return nil, err
	}
	medium, err := Compile("+HH':'mm", table, locale, newBucket)
	if err != nil {
		return nil, err
	}
	short, err := Compile("+HH", table, locale, newBucket)
	if err != nil {
		return nil, err
	}
	format := CompositeFormat([]CompositeAlternative[Offset]{
		{Applies: func(o Offset) bool { return o.absSeconds() != 0 }, Format: full.AppendFormat},
		{Applies: func(o Offset) bool { return o.absMinutes() != 0 }, Format: medium.AppendFormat},
		{Format: short.AppendFormat},
	})
	return &Compiled[Offset, *offsetBucket]{
		Text:        "g",
		Used:        full.Used,
		FormatSteps: []FormatStep[Offset]{format},
		CanParse:    false,
		NewBucket:   newBucket,
	}, nil
}

// NewOffsetPattern compiles a custom, standard, 'g'-general or Z-prefixed
// Offset pattern. A pattern beginning with 'Z' (§4.9) is handled specially:
// 'Z' must be the very first character (ZPrefixNotAtStart otherwise), the
// rest is compiled normally, and at runtime a bare "Z" is accepted/produced
// in place of a zero offset.
func NewOffsetPattern(text string, locale *LocaleInfo, template Offset) (*Pattern[Offset, *offsetBucket], error) {
	if locale == nil {
		locale = Invariant()
	}
	newBucket := func() *offsetBucket { return newOffsetBucket(template) }
	table := OffsetHandlerTable()

	if len(text) == 0 {
		return nil, &CompileError{Kind: FormatStringEmpty}
	}
	if text == "g" {
		compiled, err := compileGeneralOffset(locale, newBucket)
		if err != nil {
			return nil, err
		}
		return &Pattern[Offset, *offsetBucket]{
			text: text, locale: locale, newBucket: newBucket, table: table,
			compiled: compiled,
		}, nil
	}
	if r := []rune(text); r[0] == 'Z' {
		if len(r) == 1 {
			return nil, &CompileError{Kind: EmptyZPrefixedOffsetPattern}
		}
		rest := string(r[1:])
		for _, c := range rest {
			if c == 'Z' {
				return nil, &CompileError{Kind: ZPrefixNotAtStart}
			}
		}
		compiled, err := compileZPrefixed(rest, table, locale, newBucket)
		if err != nil {
			return nil, err
		}
		return &Pattern[Offset, *offsetBucket]{
			text: text, locale: locale, newBucket: newBucket, table: table,
			compiled: compiled,
		}, nil
	}

	return NewPattern(text, locale, newBucket, table, standardOffsetPatterns)
}

func compileZPrefixed(rest string, table map[rune]Handler[Offset, *offsetBucket], locale *LocaleInfo, newBucket func() *offsetBucket) (*Compiled[Offset, *offsetBucket], error) {
	inner, err := Compile(rest, table, locale, newBucket)
	if err != nil {
		return nil, err
	}
	parseStep := func(cur *ValueCursor, bucket *offsetBucket) error {
		if cur.MatchString("Z") {
			bucket.neg, bucket.hours, bucket.minutes, bucket.seconds = false, 0, 0, 0
			return nil
		}
		for _, step := range inner.ParseSteps {
			if err := step(cur, bucket); err != nil {
				return err
			}
		}
		return nil
	}
	formatStep := func(v Offset, out []byte) []byte {
		if v == Zero {
			return append(out, 'Z')
		}
		return inner.AppendFormat(v, out)
	}
	return &Compiled[Offset, *offsetBucket]{
		Text:        "Z" + rest,
		Used:        inner.Used,
		ParseSteps:  []ParseStep[*offsetBucket]{parseStep},
		FormatSteps: []FormatStep[Offset]{formatStep},
		CanParse:    true,
		NewBucket:   newBucket,
	}, nil
}
