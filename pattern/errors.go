// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "fmt"

// CompileErrorKind enumerates the ways a pattern's text can be rejected
// while compiling it. See §7 of the design notes.
type CompileErrorKind int

const (
	_ CompileErrorKind = iota
	FormatStringEmpty
	UnknownStandardFormat
	RepeatCountExceeded
	RepeatedFieldInPattern
	MissingEndQuote
	EscapeAtEndOfString
	PercentAtEndOfString
	PercentDoubled
	InvalidUnitSpecifier
	EraWithoutYearOfEra
	CalendarAndEra
	Hour12PatternNotSupported
	ZPrefixNotAtStart
	EmptyZPrefixedOffsetPattern
	MultipleCapitalDurationFields
	PrecisionNotSupported
)

var compileErrorText = map[CompileErrorKind]string{
	FormatStringEmpty:             "format string is empty",
	UnknownStandardFormat:         "unknown standard format specifier",
	RepeatCountExceeded:           "repeat count exceeds the maximum allowed for this specifier",
	RepeatedFieldInPattern:        "field is already specified earlier in the pattern",
	MissingEndQuote:               "quoted string is missing its closing quote",
	EscapeAtEndOfString:           "escape character at end of pattern",
	PercentAtEndOfString:          "'%' at end of pattern",
	PercentDoubled:                "'%%' is not a valid pattern specifier",
	InvalidUnitSpecifier:          "invalid unit specifier",
	EraWithoutYearOfEra:           "'g' (era) requires a year-of-era specifier",
	CalendarAndEra:                "calendar and era specifiers are mutually exclusive",
	Hour12PatternNotSupported:     "12-hour specifiers are not supported by this pattern",
	ZPrefixNotAtStart:             "'Z' prefix must be the first character of the pattern",
	EmptyZPrefixedOffsetPattern:   "a bare 'Z' is not a valid offset pattern",
	MultipleCapitalDurationFields: "at most one capital total-duration specifier (D, H, M, S) may appear",
	PrecisionNotSupported:         "requested fractional precision is not supported",
}

// CompileError is returned when a pattern's text cannot be compiled. It is
// the only error type the engine ever surfaces outside a ParseResult; see
// §7's recovery section.
type CompileError struct {
	Kind CompileErrorKind
	// Pos is the byte offset into the pattern text at which the problem
	// was detected, or -1 if not applicable.
	Pos int
	// Char is the offending pattern character, if any ('\x00' if none).
	Char rune
	// Detail, if non-empty, overrides the generic message for Kind.
	Detail string
}

func (e *CompileError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = compileErrorText[e.Kind]
	}
	if e.Char != 0 {
		return fmt.Sprintf("invalid pattern: %s (character %q)", msg, e.Char)
	}
	return fmt.Sprintf("invalid pattern: %s", msg)
}

// ParseErrorKind enumerates the ways a value can fail to parse at runtime.
// See §7.
type ParseErrorKind int

const (
	_ ParseErrorKind = iota
	ArgumentNull
	ValueStringEmpty
	MismatchedCharacter
	MismatchedNumber
	QuotedStringMismatch
	EscapedCharacterMismatch
	MissingDecimalSeparator
	TimeSeparatorMismatch
	DateSeparatorMismatch
	MissingSign
	PositiveSignInvalid
	MissingAmPmDesignator
	MismatchedText
	CannotParseValue
	ValueOutOfRange
	FieldValueOutOfRange
	EndOfString
	ExtraValueCharacters
	InconsistentValues
	InvalidHour24
	NoMatchingFormat
	NoMatchingZoneID
	SkippedLocalTime
	AmbiguousLocalTime
	InvalidOffset
	EmptyPeriod
	MisplacedUnitSpecifier
	RepeatedUnitSpecifier
)

// continueWithMultiple records, per kind, whether a failure of this kind is
// "value-level" (worth trying another pattern in a multi-pattern search) or
// "pattern-level" (stop the search). See §4.3.
var continueWithMultiple = map[ParseErrorKind]bool{
	ArgumentNull:     false,
	ValueStringEmpty: false,
	// everything else is true except NoMatchingFormat, set explicitly below.
	MismatchedCharacter:      true,
	MismatchedNumber:         true,
	QuotedStringMismatch:     true,
	EscapedCharacterMismatch: true,
	MissingDecimalSeparator:  true,
	TimeSeparatorMismatch:    true,
	DateSeparatorMismatch:    true,
	MissingSign:              true,
	PositiveSignInvalid:      true,
	MissingAmPmDesignator:    true,
	MismatchedText:           true,
	CannotParseValue:         true,
	ValueOutOfRange:          true,
	FieldValueOutOfRange:     true,
	EndOfString:              true,
	ExtraValueCharacters:     true,
	InconsistentValues:       true,
	InvalidHour24:            true,
	NoMatchingFormat:         false,
	NoMatchingZoneID:         true,
	SkippedLocalTime:         true,
	AmbiguousLocalTime:       true,
	InvalidOffset:            true,
	EmptyPeriod:              true,
	MisplacedUnitSpecifier:   true,
	RepeatedUnitSpecifier:    true,
}

// ParseError is a lazily-materialized parse failure. The message template
// and its arguments are captured at construction time; Error formats them
// only when called, so that the success branch of a parse never pays for
// string formatting (§3, §9).
type ParseError struct {
	Kind ParseErrorKind
	Pos  int

	// args are formatted into the message by Error, using kind as the
	// selector. They are not copied or validated until Error is called.
	args []any

	continueWithMultiple bool
}

// ContinueWithMultiple reports whether a multi-pattern dispatcher (§4.10)
// should try the next pattern after this failure.
func (e *ParseError) ContinueWithMultiple() bool {
	if e == nil {
		return false
	}
	return e.continueWithMultiple
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s at position %d", e.message(), e.Pos)
}

func (e *ParseError) message() string {
	switch e.Kind {
	case ArgumentNull:
		return "value string is nil"
	case ValueStringEmpty:
		return "value string is empty"
	case MismatchedCharacter:
		return fmt.Sprintf("expected character %q", e.args[0])
	case MismatchedNumber:
		return fmt.Sprintf("could not parse %q as a number", e.args[0])
	case QuotedStringMismatch:
		return "quoted literal did not match input"
	case EscapedCharacterMismatch:
		return fmt.Sprintf("expected escaped character %q", e.args[0])
	case MissingDecimalSeparator:
		return "expected a decimal separator"
	case TimeSeparatorMismatch:
		return "expected the locale's time separator"
	case DateSeparatorMismatch:
		return "expected the locale's date separator"
	case MissingSign:
		return "expected an explicit sign"
	case PositiveSignInvalid:
		return "a positive sign is not allowed here"
	case MissingAmPmDesignator:
		return "expected an AM/PM designator"
	case MismatchedText:
		return fmt.Sprintf("could not match text against %q", e.args[0])
	case CannotParseValue:
		return fmt.Sprintf("could not parse %q using format %q", e.args[0], e.args[1])
	case ValueOutOfRange:
		return fmt.Sprintf("value %v is out of range", e.args[0])
	case FieldValueOutOfRange:
		return fmt.Sprintf("value %v is out of range for field %q", e.args[0], e.args[1])
	case EndOfString:
		return "unexpected end of input"
	case ExtraValueCharacters:
		return fmt.Sprintf("unconsumed input remains: %q", e.args[0])
	case InconsistentValues:
		return fmt.Sprintf("inconsistent values for %q and %q", e.args[0], e.args[1])
	case InvalidHour24:
		return "hour 24 may only be used to denote midnight with no other non-zero time fields"
	case NoMatchingFormat:
		return "no pattern in the list could parse this value"
	case NoMatchingZoneID:
		return "no registered zone id matches the input"
	case SkippedLocalTime:
		return "local time falls in a daylight-saving-time gap"
	case AmbiguousLocalTime:
		return "local time is ambiguous during a daylight-saving-time overlap"
	case InvalidOffset:
		return "offset is out of range"
	case EmptyPeriod:
		return "period pattern matched no components"
	case MisplacedUnitSpecifier:
		return fmt.Sprintf("unit specifier %q is out of order", e.args[0])
	case RepeatedUnitSpecifier:
		return fmt.Sprintf("unit specifier %q is repeated", e.args[0])
	}
	return "parse error"
}

func newParseError(kind ParseErrorKind, pos int, args ...any) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, args: args, continueWithMultiple: continueWithMultiple[kind]}
}
