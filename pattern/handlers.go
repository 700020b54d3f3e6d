// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// This file holds the handler constructors shared across every value
// kind's character-handler table (§4.7's "handler categories", §4.8/C8).
// Kind-specific files (localdate.go, localtime.go, ...) parameterize these
// over their own bucket's getters/setters.

// QuoteHandler handles a quoted literal section: Current is the opening
// quote (' or "); everything up to the matching close quote is registered
// as a literal, honoring '\' escapes inside the quotes.
func QuoteHandler[T any, B Bucket[T]]() Handler[T, B] {
	return func(pc *patternCursor, b *Builder[T, B], _ *LocaleInfo) error {
		s, err := pc.GetQuotedString(pc.Current())
		if err != nil {
			return err
		}
		b.AddLiteralString(s)
		return nil
	}
}

// BackslashHandler escapes the single character following '\' as a
// literal.
func BackslashHandler[T any, B Bucket[T]]() Handler[T, B] {
	return func(pc *patternCursor, b *Builder[T, B], _ *LocaleInfo) error {
		if !pc.Advance() {
			return &CompileError{Kind: EscapeAtEndOfString, Pos: pc.Pos()}
		}
		b.AddLiteral(pc.Current())
		return nil
	}
}

// PercentHandler implements '%X': force the character following '%' to be
// dispatched through table even if it would otherwise be swallowed by the
// single-character standard-pattern expander (C10) at the façade level.
// '%%' and a trailing '%' are compile errors.
func PercentHandler[T any, B Bucket[T]](table map[rune]Handler[T, B]) Handler[T, B] {
	return func(pc *patternCursor, b *Builder[T, B], locale *LocaleInfo) error {
		next, ok := pc.PeekNext()
		if !ok {
			return &CompileError{Kind: PercentAtEndOfString, Pos: pc.Pos()}
		}
		if next == '%' {
			return &CompileError{Kind: PercentDoubled, Pos: pc.Pos()}
		}
		pc.Advance()
		h, ok := table[pc.Current()]
		if !ok {
			return &CompileError{Kind: InvalidUnitSpecifier, Pos: pc.Pos(), Char: pc.Current()}
		}
		return h(pc, b, locale)
	}
}

// AddPaddedField registers a numeric field handled by a run of the same
// pattern character: a parse step reading between 1 and the repeat count's
// worth of digits, range-checked to [valMin, valMax], and a left-padded
// format step of width equal to the repeat count (§4.7's padded_field).
func AddPaddedField[T any, B Bucket[T]](pc *patternCursor, b *Builder[T, B], maxRepeat int, field Field, valMin, valMax int, parseSet func(B, int) error, formatGet func(T) int) error {
	count, err := pc.GetRepeatCount(maxRepeat)
	if err != nil {
		return err
	}
	if err := b.AddField(field, pc.Current()); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		v, ok := cur.ParseDigits(1, count)
		if !ok {
			return newParseError(MismatchedNumber, cur.Pos(), field.String())
		}
		if v < valMin || v > valMax {
			return newParseError(FieldValueOutOfRange, cur.Pos(), v, field.String())
		}
		return parseSet(bucket, v)
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		return LeftPad(int64(formatGet(value)), count, out)
	})
	return nil
}

// AddPaddedField64 is AddPaddedField for int64-backed fields (Duration's
// day and total-unit fields, which may exceed the range of int on 32-bit
// platforms). Unlike AddPaddedField, its parse step reads between 1 and
// maxRepeat digits, so the value is not bounded by the repeat count.
func AddPaddedField64[T any, B Bucket[T]](pc *patternCursor, b *Builder[T, B], maxRepeat int, field Field, valMin, valMax int64, parseSet func(B, int64) error, formatGet func(T) int64) error {
	count, err := pc.GetRepeatCount(maxRepeat)
	if err != nil {
		return err
	}
	if err := b.AddField(field, pc.Current()); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		v, ok := cur.ParseInt64Digits(1, maxRepeat)
		if !ok {
			return newParseError(MismatchedNumber, cur.Pos(), field.String())
		}
		if v < valMin || v > valMax {
			return newParseError(FieldValueOutOfRange, cur.Pos(), v, field.String())
		}
		return parseSet(bucket, v)
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		return LeftPad(formatGet(value), count, out)
	})
	return nil
}

// AddFractionField registers 'f' (exact count of digits) / 'F' (up to count
// digits, trailing zeros truncated on format) per §4.7.
func AddFractionField[T any, B Bucket[T]](pc *patternCursor, b *Builder[T, B], maxRepeat, scale int, field Field, exact bool, parseSet func(B, int) error, formatGet func(T) int) error {
	count, err := pc.GetRepeatCount(maxRepeat)
	if err != nil {
		return err
	}
	if count > scale {
		return &CompileError{Kind: PrecisionNotSupported, Pos: pc.Pos()}
	}
	if err := b.AddField(field, pc.Current()); err != nil {
		return err
	}
	minRequired := 0
	if exact {
		minRequired = count
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		v, ok := cur.ParseFraction(count, scale, minRequired)
		if !ok {
			return newParseError(MismatchedNumber, cur.Pos(), field.String())
		}
		return parseSet(bucket, v)
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		v := int64(formatGet(value))
		if exact {
			return RightPad(v, count, scale, out)
		}
		return RightPadTruncate(v, count, scale, out)
	})
	return nil
}

// AddPeriodThenFraction registers the optional "decimal point + fraction"
// specifier (pattern character '.' or ';' followed by a run of 'F'): on
// parse the whole group is skipped if the separator is absent; on format
// the separator and fraction are emitted only if the fraction is non-zero
// (§4.7's period_then_fraction). With acceptComma (the ';' character), the
// separator is written as '.' and either '.' or ',' is accepted on parse,
// also when ';' is not followed by 'F'.
func AddPeriodThenFraction[T any, B Bucket[T]](pc *patternCursor, b *Builder[T, B], maxRepeat, scale int, field Field, acceptComma bool, parseSet func(B, int) error, formatGet func(T) int) error {
	sep := pc.Current()
	if acceptComma {
		sep = '.'
	}
	next, ok := pc.PeekNext()
	if !ok || next != 'F' {
		if !acceptComma {
			b.AddLiteral(sep)
			return nil
		}
		b.AddParseStep(func(cur *ValueCursor, _ B) error {
			if !cur.Match('.') && !cur.Match(',') {
				return newParseError(MismatchedCharacter, cur.Pos(), ';')
			}
			return nil
		})
		b.AddFormatStep(func(_ T, out []byte) []byte { return append(out, '.') })
		return nil
	}
	pc.Advance() // now at first 'F'
	count, err := pc.GetRepeatCount(maxRepeat)
	if err != nil {
		return err
	}
	if count > scale {
		return &CompileError{Kind: PrecisionNotSupported, Pos: pc.Pos()}
	}
	if err := b.AddField(field, 'F'); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		matched := cur.Match(byte(sep))
		if !matched && acceptComma {
			matched = cur.Match(',')
		}
		if !matched {
			return nil
		}
		v, ok := cur.ParseFraction(count, scale, 1)
		if !ok {
			return newParseError(MissingDecimalSeparator, cur.Pos())
		}
		return parseSet(bucket, v)
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		v := int64(formatGet(value))
		if v == 0 {
			return out
		}
		out = append(out, byte(sep))
		return AppendFractionTruncate(v, count, scale, out)
	})
	return nil
}

// AddSignField registers an explicit ('+') or negative-only ('-') sign
// specifier (§4.7's sign handler).
func AddSignField[T any, B Bucket[T]](pc *patternCursor, b *Builder[T, B], requireExplicit bool, parseSetNeg func(B, bool) error, formatIsNeg func(T) bool) error {
	if err := b.AddField(FieldSign, pc.Current()); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		if cur.Match('-') {
			return parseSetNeg(bucket, true)
		}
		if cur.Match('+') {
			if !requireExplicit {
				return newParseError(PositiveSignInvalid, cur.Pos())
			}
			return parseSetNeg(bucket, false)
		}
		if requireExplicit {
			return newParseError(MissingSign, cur.Pos())
		}
		return parseSetNeg(bucket, false)
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		if formatIsNeg(value) {
			return append(out, '-')
		}
		if requireExplicit {
			return append(out, '+')
		}
		return out
	})
	return nil
}

// AddTextField registers a case-insensitive lookup against a locale-backed
// name table, e.g. month or day-of-week names, with 1-based indices
// matching time.Month/time.Weekday+1 conventions. count is the repeat
// count the caller already read from pc to decide between a numeric and a
// text field (every text field this package has doubles as a numeric one
// at lower repeat counts, so the decision, and the GetRepeatCount call it
// requires, is always made by the caller, not here); count selects whether
// longTable (4) or shortTable (3) is consulted.
func AddTextField[T any, B Bucket[T]](count int, pc *patternCursor, b *Builder[T, B], field Field, locale *LocaleInfo, shortTable, longTable func(*LocaleInfo) []string, parseSet func(B, int) error, formatGet func(T) int) error {
	if err := b.AddField(field, pc.Current()); err != nil {
		return err
	}
	names := shortTable(locale)
	if count == 4 {
		names = longTable(locale)
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		i, err := matchTextName(cur, names, field)
		if err != nil {
			return err
		}
		return parseSet(bucket, i)
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		i := formatGet(value)
		if i < 0 || i >= len(names) {
			return out
		}
		return append(out, names[i]...)
	})
	return nil
}

// matchTextName scans names for a case-insensitive match against cur's
// remaining input, returning the matching index or a MismatchedText error
// naming field. Blank entries (unused table slots) are skipped.
func matchTextName(cur *ValueCursor, names []string, field Field) (int, error) {
	for i, name := range names {
		if name == "" {
			continue
		}
		if cur.MatchCaseInsensitive(name, true) {
			return i, nil
		}
	}
	return 0, newParseError(MismatchedText, cur.Pos(), field.String())
}
