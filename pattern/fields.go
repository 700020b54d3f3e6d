// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// Field identifies a single value a pattern handler can assign during a
// parse, or read from during a format. It is represented as a single set
// bit so that the fields touched by a pattern can be tracked as a bitmask.
type Field uint64

const (
	FieldEra Field = 1 << iota
	FieldYearAbsolute
	FieldYearOfEra
	FieldYearTwoDigits
	FieldMonthOfYearNumeric
	FieldMonthOfYearText
	FieldDayOfMonth
	FieldDayOfWeek
	FieldHours12
	FieldHours24
	FieldAmPm
	FieldMinutes
	FieldSeconds
	FieldFractionalSeconds
	FieldSign
	FieldEmbeddedOffset
	FieldEmbeddedDate
	FieldEmbeddedTime
	FieldZone
	FieldZoneAbbreviation
	FieldCalendar
	FieldTotalDuration

	// FieldDurationDays backs Duration's lower-case 'd' component field
	// (whole days, as opposed to the capital-letter "total unit" fields
	// below).
	FieldDurationDays

	// The four fields below back the "total duration" custom-format
	// letters of a Duration pattern (capital D/H/M/S meaning "total whole
	// units", as opposed to the lower-case component letters). They may
	// not be combined with each other; see ValidateCombination.
	FieldDurationTotalDays
	FieldDurationTotalHours
	FieldDurationTotalMinutes
	FieldDurationTotalSeconds

	// Period fields. A Period pattern has many more independently
	// assignable components than any other kind, so each gets its own
	// bit rather than overloading the generic fields above.
	FieldPeriodYears
	FieldPeriodMonths
	FieldPeriodWeeks
	FieldPeriodDays
	FieldPeriodHours
	FieldPeriodMinutes
	FieldPeriodSeconds
	FieldPeriodMilliseconds
	FieldPeriodTicks
	FieldPeriodNanoseconds
)

// AllDateFields and AllTimeFields are the derived masks mentioned in §3 of
// the spec: the subset of Field values a composite bucket delegates to its
// date, resp. time, sub-bucket.
const (
	AllDateFields = FieldEra | FieldYearAbsolute | FieldYearOfEra | FieldYearTwoDigits |
		FieldMonthOfYearNumeric | FieldMonthOfYearText | FieldDayOfMonth | FieldDayOfWeek | FieldCalendar
	AllTimeFields = FieldHours12 | FieldHours24 | FieldAmPm | FieldMinutes | FieldSeconds | FieldFractionalSeconds

	allDurationTotals = FieldDurationTotalDays | FieldDurationTotalHours | FieldDurationTotalMinutes | FieldDurationTotalSeconds
)

var fieldNames = map[Field]string{
	FieldEra:                    "era",
	FieldYearAbsolute:           "year_absolute",
	FieldYearOfEra:              "year_of_era",
	FieldYearTwoDigits:          "year_two_digits",
	FieldMonthOfYearNumeric:     "month_of_year_numeric",
	FieldMonthOfYearText:        "month_of_year_text",
	FieldDayOfMonth:             "day_of_month",
	FieldDayOfWeek:              "day_of_week",
	FieldHours12:                "hours_12",
	FieldHours24:                "hours_24",
	FieldAmPm:                   "am_pm",
	FieldMinutes:                "minutes",
	FieldSeconds:                "seconds",
	FieldFractionalSeconds:      "fractional_seconds",
	FieldSign:                   "sign",
	FieldEmbeddedOffset:         "embedded_offset",
	FieldEmbeddedDate:           "embedded_date",
	FieldEmbeddedTime:           "embedded_time",
	FieldZone:                   "zone",
	FieldZoneAbbreviation:       "zone_abbreviation",
	FieldCalendar:               "calendar",
	FieldTotalDuration:          "total_duration",
	FieldDurationDays:           "duration_days",
	FieldDurationTotalDays:      "duration_total_days",
	FieldDurationTotalHours:     "duration_total_hours",
	FieldDurationTotalMinutes:   "duration_total_minutes",
	FieldDurationTotalSeconds:   "duration_total_seconds",
	FieldPeriodYears:            "period_years",
	FieldPeriodMonths:           "period_months",
	FieldPeriodWeeks:            "period_weeks",
	FieldPeriodDays:             "period_days",
	FieldPeriodHours:            "period_hours",
	FieldPeriodMinutes:          "period_minutes",
	FieldPeriodSeconds:          "period_seconds",
	FieldPeriodMilliseconds:     "period_milliseconds",
	FieldPeriodTicks:            "period_ticks",
	FieldPeriodNanoseconds:      "period_nanoseconds",
}

// String returns the field's name, for use in error messages and debugging.
func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "field(?)"
}

// FieldSet is a bitmask of the fields assigned so far while compiling (or
// running) a pattern.
type FieldSet Field

// Has reports whether every bit of f is set in fs. f may be a union of
// several Field values.
func (fs FieldSet) Has(f Field) bool { return Field(fs)&f == f && f != 0 }

// HasAny reports whether fs intersects mask at all.
func (fs FieldSet) HasAny(mask Field) bool { return Field(fs)&mask != 0 }

// HasAll reports whether fs contains every bit of mask.
func (fs FieldSet) HasAll(mask Field) bool { return Field(fs)&mask == mask }

// Union returns fs with f additionally set, without checking for conflicts.
func (fs FieldSet) Union(f Field) FieldSet { return FieldSet(Field(fs) | f) }

// Mask returns fs intersected with m, as a plain Field bitmask.
func (fs FieldSet) Mask(m Field) Field { return Field(fs) & m }

// Add marks field f as used by pattern character c. It fails with
// RepeatedFieldInPattern if f was already set; every field may be assigned
// at most once per pattern (§3, §4.4).
func (fs *FieldSet) Add(f Field, c rune) error {
	if fs.Has(f) {
		return &CompileError{Kind: RepeatedFieldInPattern, Char: c}
	}
	*fs = fs.Union(f)
	return nil
}

// ValidateCombination enforces the cross-field rules of §4.4 that are
// common to every value kind. Kind-specific handler tables may layer
// additional checks on top. No handler in this package assigns
// FieldZoneAbbreviation, and no format-only rule for it is checked here.
func (fs FieldSet) ValidateCombination() error {
	if fs.Has(FieldEra) && !fs.Has(FieldYearOfEra) {
		return &CompileError{Kind: EraWithoutYearOfEra}
	}
	if fs.HasAll(FieldYearAbsolute | FieldYearTwoDigits) {
		return &CompileError{Kind: InvalidUnitSpecifier, Detail: "uuuu and yy cannot both appear in the same pattern"}
	}
	if fs.Has(FieldCalendar) && fs.Has(FieldEra) {
		return &CompileError{Kind: CalendarAndEra}
	}
	if n := popcount(fs.Mask(allDurationTotals)); n > 1 {
		return &CompileError{Kind: MultipleCapitalDurationFields}
	}
	return nil
}

func popcount(f Field) int {
	n := 0
	for f != 0 {
		f &= f - 1
		n++
	}
	return n
}
