// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// This file holds the C9 mechanisms shared by every kind that embeds
// another kind's pattern inside its own (§4.9): LocalDateTime's 'l<...>'
// embedded-local wrapper and the general-offset composite pattern's
// significance-ordered alternatives.

// EmbeddedSubPattern registers an embedded sub-pattern specifier: the text
// between '<' and '>' (already positioned at the opening '<') is compiled
// once, at compile time, against table/newSubBucket/locale; at parse time
// the outer bucket delegates to the embedded program by running it against
// the same ValueCursor, then folding the resulting sub-value in via merge;
// at format time project extracts the sub-value.
func EmbeddedSubPattern[T any, B Bucket[T], ST any, SB Bucket[ST]](
	pc *patternCursor, b *Builder[T, B], locale *LocaleInfo,
	field Field, char rune,
	table map[rune]Handler[ST, SB], newSubBucket func() SB,
	project func(T) ST, merge func(B, ST),
) error {
	text, err := pc.GetEmbeddedPattern()
	if err != nil {
		return err
	}
	sub, err := Compile(text, table, locale, newSubBucket)
	if err != nil {
		return err
	}
	if err := b.AddField(field, char); err != nil {
		return err
	}
	b.AddParseStep(func(cur *ValueCursor, bucket B) error {
		v, err := runEmbedded(sub, cur)
		if err != nil {
			return err
		}
		merge(bucket, v)
		return nil
	})
	b.AddFormatStep(func(value T, out []byte) []byte {
		return sub.AppendFormat(project(value), out)
	})
	return nil
}

// runEmbedded drives compiled's parse program against an already-open
// cursor, rather than a fresh string, so an embedded pattern can continue
// reading from wherever its enclosing pattern left off.
func runEmbedded[ST any, SB Bucket[ST]](compiled *Compiled[ST, SB], cur *ValueCursor) (ST, error) {
	bucket := compiled.NewBucket()
	for _, step := range compiled.ParseSteps {
		if err := step(cur, bucket); err != nil {
			var zero ST
			return zero, err
		}
	}
	return bucket.Commit(compiled.Used)
}

// CompositeAlternative is one candidate of a composite pattern: a
// predicate deciding whether it applies to a given value, and the format
// step to run if so.
type CompositeAlternative[T any] struct {
	Applies func(T) bool
	Format  FormatStep[T]
}

// CompositeFormat builds a single FormatStep that evaluates alts in order
// and runs the first one whose Applies matches, falling back to the last
// alternative if none do (§4.9's general-offset 'f'/'l'/'m'/'s' selector:
// the sub-pattern actually used depends on which of the value's components
// are non-zero).
func CompositeFormat[T any](alts []CompositeAlternative[T]) FormatStep[T] {
	return func(v T, out []byte) []byte {
		for _, a := range alts {
			if a.Applies == nil || a.Applies(v) {
				return a.Format(v, out)
			}
		}
		if len(alts) == 0 {
			return out
		}
		return alts[len(alts)-1].Format(v, out)
	}
}
