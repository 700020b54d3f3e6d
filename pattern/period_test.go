// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "testing"

func TestPeriodPatternRoundtripFormat(t *testing.T) {
	p, err := NewPeriodPattern("o")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	v := Period{Years: 1, Months: 2, Days: 35, Hours: 4, Minutes: 5, Seconds: 6, Milliseconds: 789}
	got := p.Format(v)
	want := "P1Y2M35DT4H5M6.789S"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestPeriodPatternRoundtripParse(t *testing.T) {
	p, err := NewPeriodPattern("o")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	v, err := p.Parse("P1Y2M3DT4H5M6S").Value()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Period{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}
	if v != want {
		t.Fatalf("Parse() = %+v, want %+v", v, want)
	}
}

func TestPeriodPatternNormalizing(t *testing.T) {
	p, err := NewPeriodPattern("n")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	v := Period{Weeks: 1, Days: 2, Seconds: 90}
	got := p.Format(v)
	want := "P9DT1M30S"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestPeriodPatternEmptyIsError(t *testing.T) {
	p, err := NewPeriodPattern("o")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	if p.Parse("P").Success() {
		t.Fatal("Parse(\"P\") succeeded, want EmptyPeriod failure")
	}
}

func TestPeriodPatternZeroIsP0D(t *testing.T) {
	p, err := NewPeriodPattern("o")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	got := p.Format(Period{})
	want := "P0D"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestPeriodPatternUnknownStandard(t *testing.T) {
	if _, err := NewPeriodPattern("x"); err == nil {
		t.Fatal("NewPeriodPattern(\"x\") succeeded, want UnknownStandardFormat")
	}
}

// TestPeriodPatternMisplacedUnit confirms the date-unit section enforces
// canonical years-months-weeks-days order: "P1M1Y" puts months before
// years and must fail rather than silently accept both.
func TestPeriodPatternMisplacedUnit(t *testing.T) {
	p, err := NewPeriodPattern("o")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	r := p.Parse("P1M1Y")
	if r.Success() {
		v, _ := r.Value()
		t.Fatalf("Parse(\"P1M1Y\") = %+v, want MisplacedUnitSpecifier failure", v)
	}
	if got := r.ParseError().Kind; got != MisplacedUnitSpecifier {
		t.Fatalf("Parse(\"P1M1Y\") error kind = %v, want MisplacedUnitSpecifier", got)
	}
}

// TestPeriodPatternRepeatedUnit confirms a unit cannot appear twice in a
// row, e.g. "P1Y1Y".
func TestPeriodPatternRepeatedUnit(t *testing.T) {
	p, err := NewPeriodPattern("o")
	if err != nil {
		t.Fatalf("NewPeriodPattern: %v", err)
	}
	r := p.Parse("P1Y1Y")
	if r.Success() {
		v, _ := r.Value()
		t.Fatalf("Parse(\"P1Y1Y\") = %+v, want RepeatedUnitSpecifier failure", v)
	}
	if got := r.ParseError().Kind; got != RepeatedUnitSpecifier {
		t.Fatalf("Parse(\"P1Y1Y\") error kind = %v, want RepeatedUnitSpecifier", got)
	}
}
