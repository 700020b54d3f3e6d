// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"

	"github.com/nodatime/nodatime-go/internal/cache"
)

// StandardPatterns is the C10 expander: it resolves a single-character
// pattern (e.g. "d", "o", "G") to a compiled pattern, either by substituting
// a longer canonical pattern text and recompiling (§4.7's "substitution
// never recurses" rule — the substituted text is run back through the same
// Compile loop exactly once, through table, and is never itself
// re-examined for a further single-character substitution) or by returning
// a memoized compiled instance for the handful of standard patterns whose
// shape never depends on locale or template.
type StandardPatterns[T any, B Bucket[T]] struct {
	table map[rune]Handler[T, B]

	// fixed holds generators for patterns whose expansion assigns every
	// field relevant to T, so the compiled result is independent of both
	// locale and template; it is safe to cache keyed only by the pattern
	// character.
	fixed map[rune]func() string
	// zeroBucket constructs the bucket used to compile a fixed pattern; its
	// template value is read only for fields the expansion leaves optional
	// (such as the ';F' fraction of LocalTime's 'o'), where it supplies zero.
	zeroBucket func() B

	// locale holds generators whose canonical text depends on the supplied
	// LocaleInfo (and whose compiled pattern therefore depends on the
	// caller's template too); these are recompiled on every call.
	locale map[rune]func(*LocaleInfo) string

	compiledCache cache.Cache[rune, *Compiled[T, B]]
}

// Resolve looks c up as a standard pattern character. ok is false if c is
// not a recognized standard pattern, in which case the caller should report
// UnknownStandardFormat rather than falling back to treating c as a custom
// pattern — a literal one-character pattern must be written with a leading
// '%' (§4.7's PercentHandler) precisely to distinguish it from this table.
func (s *StandardPatterns[T, B]) Resolve(c rune, locale *LocaleInfo, newBucket func() B) (compiled *Compiled[T, B], ok bool, err error) {
	if gen, found := s.fixed[c]; found {
		compiled = s.compiledCache.Get(c, func(rune) *Compiled[T, B] {
			cp, err := Compile(gen(), s.table, Invariant(), s.zeroBucket)
			if err != nil {
				panic(fmt.Sprintf("pattern: built-in standard pattern %q failed to compile: %v", c, err))
			}
			return cp
		})
		return compiled, true, nil
	}
	if gen, found := s.locale[c]; found {
		cp, err := Compile(gen(locale), s.table, locale, newBucket)
		return cp, true, err
	}
	return nil, false, nil
}
