// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// ParseStep is a single step of a compiled pattern's parse program: it may
// advance cur, mutate bucket, and fail with a *ParseError (§3).
type ParseStep[B any] func(cur *ValueCursor, bucket B) error

// FormatStep is a single step of a compiled pattern's format program: it
// appends value's textual contribution to out and returns the extended
// slice (§3).
type FormatStep[T any] func(value T, out []byte) []byte

// formatSlot is either an already-final FormatStep, or one that needs the
// pattern's final used-fields mask to be finalized (§4.7's "post-pattern
// format actions", for things like genitive vs nominative month names).
type formatSlot[T any] struct {
	immediate FormatStep[T]
	finalize  func(used FieldSet) FormatStep[T]
}

// Builder is the stepped pattern builder (§4.7, C7): it accumulates parse
// and format steps while a handler table walks a pattern's text, and
// enforces field uniqueness and legal field combinations.
type Builder[T any, B Bucket[T]] struct {
	Used        FieldSet
	ParseSteps  []ParseStep[B]
	formatSlots []formatSlot[T]
	formatOnly  bool
}

// NewBuilder returns an empty Builder ready to accumulate steps.
func NewBuilder[T any, B Bucket[T]]() *Builder[T, B] {
	return &Builder[T, B]{}
}

// AddField marks field f as used by pattern character c, failing if it was
// already assigned earlier in the same pattern.
func (b *Builder[T, B]) AddField(f Field, c rune) error {
	return b.Used.Add(f, c)
}

// AddParseStep appends a parse step to the program.
func (b *Builder[T, B]) AddParseStep(step ParseStep[B]) {
	b.ParseSteps = append(b.ParseSteps, step)
}

// AddFormatStep appends an already-final format step to the program.
func (b *Builder[T, B]) AddFormatStep(step FormatStep[T]) {
	b.formatSlots = append(b.formatSlots, formatSlot[T]{immediate: step})
}

// AddPostPatternFormatStep reserves a slot in the format program whose real
// step is produced only once the pattern's final used-fields mask is known
// (§4.7, §9).
func (b *Builder[T, B]) AddPostPatternFormatStep(finalize func(used FieldSet) FormatStep[T]) {
	b.formatSlots = append(b.formatSlots, formatSlot[T]{finalize: finalize})
}

// SetFormatOnly marks the pattern being built as unable to parse (e.g. a
// zone-abbreviation specifier was used).
func (b *Builder[T, B]) SetFormatOnly() {
	b.formatOnly = true
}

// AddLiteral registers a literal character: on parse it must match exactly,
// on format it is emitted unconditionally.
func (b *Builder[T, B]) AddLiteral(r rune) {
	lit := string(r)
	b.AddParseStep(func(cur *ValueCursor, _ B) error {
		if !cur.MatchString(lit) {
			return newParseError(MismatchedCharacter, cur.Pos(), r)
		}
		return nil
	})
	b.AddFormatStep(func(_ T, out []byte) []byte {
		return append(out, lit...)
	})
}

// AddLiteralString registers a multi-character literal, as produced by
// quoted sections of a pattern.
func (b *Builder[T, B]) AddLiteralString(s string) {
	b.AddParseStep(func(cur *ValueCursor, _ B) error {
		if !cur.MatchString(s) {
			return newParseError(QuotedStringMismatch, cur.Pos())
		}
		return nil
	})
	b.AddFormatStep(func(_ T, out []byte) []byte {
		return append(out, s...)
	})
}

// Compiled is an immutable, reusable compiled pattern (§3): the original
// text, the set of fields it assigns, and its parse/format programs.
type Compiled[T any, B Bucket[T]] struct {
	Text        string
	Used        FieldSet
	ParseSteps  []ParseStep[B]
	FormatSteps []FormatStep[T]
	CanParse    bool
	NewBucket   func() B
}

// Finish validates the accumulated field combination, resolves any
// post-pattern format slots against the final used-fields mask, and
// produces an immutable Compiled pattern. newBucket must produce a bucket
// seeded from whatever template value the caller compiled against.
func (b *Builder[T, B]) Finish(text string, newBucket func() B) (*Compiled[T, B], error) {
	if err := b.Used.ValidateCombination(); err != nil {
		return nil, err
	}
	steps := make([]FormatStep[T], len(b.formatSlots))
	for i, slot := range b.formatSlots {
		if slot.finalize != nil {
			steps[i] = slot.finalize(b.Used)
		} else {
			steps[i] = slot.immediate
		}
	}
	return &Compiled[T, B]{
		Text:        text,
		Used:        b.Used,
		ParseSteps:  b.ParseSteps,
		FormatSteps: steps,
		CanParse:    !b.formatOnly,
		NewBucket:   newBucket,
	}, nil
}

// Handler dispatches a single pattern character (already positioned at by
// pc) into a Builder. Handlers may consume additional pattern characters
// (e.g. a repeat count, a quoted literal, an embedded pattern); by
// convention a handler leaves pc positioned on the last rune it consumed,
// and the driving compile loop advances past it before dispatching the
// next character (C8).
//
// locale is threaded through every call rather than baked into the table,
// so that the table itself stays locale-independent and effectively
// constant (§4.8) while still letting text-matching handlers (month names,
// era names, AM/PM designators) close over the locale actually requested
// at compile time.
type Handler[T any, B Bucket[T]] func(pc *patternCursor, b *Builder[T, B], locale *LocaleInfo) error

// Compile runs the compile loop described in §4.7: it walks patternText
// with a patternCursor, dispatches every character through table (falling
// back to literal registration for unmapped characters), and finishes the
// builder against newBucket.
func Compile[T any, B Bucket[T]](patternText string, table map[rune]Handler[T, B], locale *LocaleInfo, newBucket func() B) (*Compiled[T, B], error) {
	if patternText == "" {
		return nil, &CompileError{Kind: FormatStringEmpty}
	}
	b := NewBuilder[T, B]()
	pc := newPatternCursor(patternText)
	for pc.HasMore() {
		h, ok := table[pc.Current()]
		if !ok {
			b.AddLiteral(pc.Current())
			pc.Advance()
			continue
		}
		if err := h(pc, b, locale); err != nil {
			return nil, err
		}
		pc.Advance()
	}
	return b.Finish(patternText, newBucket)
}

// Parse runs p's parse program against text, per §4.10's contract: it
// never panics, and every failure is returned as a ParseResult.
func (p *Compiled[T, B]) Parse(text string) ParseResult[T] {
	if text == "" {
		return Err[T](newParseError(ValueStringEmpty, 0))
	}
	if !p.CanParse {
		return Err[T](newParseError(NoMatchingFormat, 0))
	}
	cur := NewValueCursor(text)
	bucket := p.NewBucket()
	for _, step := range p.ParseSteps {
		if err := step(cur, bucket); err != nil {
			return Err[T](asParseError(err, cur, text, p.Text))
		}
	}
	if !cur.AtEnd() {
		return Err[T](newParseError(ExtraValueCharacters, cur.Pos(), cur.Remaining()))
	}
	v, err := bucket.Commit(p.Used)
	if err != nil {
		return Err[T](asParseError(err, cur, text, p.Text))
	}
	return Ok(v)
}

func asParseError(err error, cur *ValueCursor, text, layout string) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return newParseError(CannotParseValue, cur.Pos(), text, layout)
}

// AppendFormat appends value's textual representation, per p's format
// program, to out.
func (p *Compiled[T, B]) AppendFormat(value T, out []byte) []byte {
	for _, step := range p.FormatSteps {
		out = step(value, out)
	}
	return out
}

// Format returns value's textual representation.
func (p *Compiled[T, B]) Format(value T) string {
	buf := make([]byte, 0, len(p.Text)+16)
	return string(p.AppendFormat(value, buf))
}
