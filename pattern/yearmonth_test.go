// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"
	"time"
)

func TestYearMonthPatternRoundTrip(t *testing.T) {
	p, err := NewYearMonthPattern("o", nil, YearMonthOf(1, time.January))
	if err != nil {
		t.Fatalf("NewYearMonthPattern: %v", err)
	}
	v := YearMonthOf(2023, time.July)
	got := p.Format(v)
	want := "2023-07"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	got2, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if got2 != v {
		t.Fatalf("Parse(%q) = %v, want %v", got, got2, v)
	}
}

func TestYearMonthPatternCustomText(t *testing.T) {
	p, err := NewYearMonthPattern("MMMM yyyy", nil, YearMonthOf(1, time.January))
	if err != nil {
		t.Fatalf("NewYearMonthPattern: %v", err)
	}
	got := p.Format(YearMonthOf(2023, time.July))
	want := "July 2023"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(want).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if v != YearMonthOf(2023, time.July) {
		t.Fatalf("Parse(%q) = %v", want, v)
	}
}

// TestYearMonthPatternDLetterIsLiteral confirms 'd' is excluded from
// YearMonthHandlerTable: Compile's unmapped-character fallback treats it as
// a literal rather than a day-of-month field, since YearMonth has no day.
func TestYearMonthPatternDLetterIsLiteral(t *testing.T) {
	p, err := NewYearMonthPattern("MMMM' 'd' 'yyyy", nil, YearMonthOf(1, time.January))
	if err != nil {
		t.Fatalf("NewYearMonthPattern: %v", err)
	}
	got := p.Format(YearMonthOf(2023, time.July))
	want := "July d 2023"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}
