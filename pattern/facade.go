// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// Pattern is the C11 façade every value kind exposes to callers: an
// immutable, reusable compiled pattern bundled with the locale, template
// and pattern text it was built from, so that With* methods can produce a
// modified copy without recompiling from scratch by hand (§4.10, §6.1).
type Pattern[T any, B Bucket[T]] struct {
	text      string
	locale    *LocaleInfo
	newBucket func() B
	table     map[rune]Handler[T, B]
	standard  *StandardPatterns[T, B]
	compiled  *Compiled[T, B]
}

// NewPattern compiles text into a Pattern, consulting standard (which may
// be nil if the kind has no standard-pattern table) for single-character
// pattern text before falling back to the custom compiler.
func NewPattern[T any, B Bucket[T]](text string, locale *LocaleInfo, newBucket func() B, table map[rune]Handler[T, B], standard *StandardPatterns[T, B]) (*Pattern[T, B], error) {
	p := &Pattern[T, B]{
		text:      text,
		locale:    locale,
		newBucket: newBucket,
		table:     table,
		standard:  standard,
	}
	if err := p.recompile(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pattern[T, B]) recompile() error {
	r := []rune(p.text)
	if len(r) == 1 && p.standard != nil {
		compiled, ok, err := p.standard.Resolve(r[0], p.locale, p.newBucket)
		if ok {
			if err != nil {
				return err
			}
			p.compiled = compiled
			return nil
		}
		return &CompileError{Kind: UnknownStandardFormat, Char: r[0]}
	}
	compiled, err := Compile(p.text, p.table, p.locale, p.newBucket)
	if err != nil {
		return err
	}
	p.compiled = compiled
	return nil
}

// Text returns the pattern text p was built from.
func (p *Pattern[T, B]) Text() string { return p.text }

// Parse runs p against text (§4.10).
func (p *Pattern[T, B]) Parse(text string) ParseResult[T] { return p.compiled.Parse(text) }

// Format renders value using p.
func (p *Pattern[T, B]) Format(value T) string { return p.compiled.Format(value) }

// AppendFormat renders value using p, appending to out.
func (p *Pattern[T, B]) AppendFormat(value T, out []byte) []byte {
	return p.compiled.AppendFormat(value, out)
}

// WithLocale returns a copy of p recompiled against locale (§6.1).
func (p *Pattern[T, B]) WithLocale(locale *LocaleInfo) (*Pattern[T, B], error) {
	np := *p
	np.locale = locale
	if err := np.recompile(); err != nil {
		return nil, err
	}
	return &np, nil
}

// WithTemplateValue returns a copy of p recompiled against a bucket seeded
// from newBucket, changing which value fields left unassigned by the
// pattern fall back to (§3, §6.1).
func (p *Pattern[T, B]) WithTemplateValue(newBucket func() B) (*Pattern[T, B], error) {
	np := *p
	np.newBucket = newBucket
	if err := np.recompile(); err != nil {
		return nil, err
	}
	return &np, nil
}

// WithPatternText returns a copy of p recompiled from text, keeping the
// current locale and template (§6.1).
func (p *Pattern[T, B]) WithPatternText(text string) (*Pattern[T, B], error) {
	np := *p
	np.text = text
	if err := np.recompile(); err != nil {
		return nil, err
	}
	return &np, nil
}

// ParseFirst runs text against each of patterns in order, per §4.3/§4.10's
// multi-pattern dispatch contract: the first success wins; if every
// pattern fails, the last failure whose ContinueWithMultiple is true is
// reported, and NoMatchingFormat is reported only if none of them is.
func ParseFirst[T any, B Bucket[T]](patterns []*Pattern[T, B], text string) ParseResult[T] {
	var last *ParseError
	for _, p := range patterns {
		result := p.Parse(text)
		if result.Success() {
			return result
		}
		if pe := result.ParseError(); pe.ContinueWithMultiple() {
			last = pe
		}
	}
	if last != nil {
		return Err[T](last)
	}
	return Err[T](newParseError(NoMatchingFormat, 0))
}
