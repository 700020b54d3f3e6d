// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"
	"time"
)

func TestMonthDayPatternRoundTrip(t *testing.T) {
	p, err := NewMonthDayPattern("o", nil, MonthDayOf(time.January, 1))
	if err != nil {
		t.Fatalf("NewMonthDayPattern: %v", err)
	}
	v := MonthDayOf(time.July, 14)
	got := p.Format(v)
	want := "07-14"
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

func TestMonthDayPatternLeapDay(t *testing.T) {
	p, err := NewMonthDayPattern("MM'-'dd", nil, MonthDayOf(time.January, 1))
	if err != nil {
		t.Fatalf("NewMonthDayPattern: %v", err)
	}
	v := MonthDayOf(time.February, 29)
	got := p.Format(v)
	want := "02-29"
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

func TestMonthDayPatternCustomText(t *testing.T) {
	p, err := NewMonthDayPattern("MMMM d", nil, MonthDayOf(time.January, 1))
	if err != nil {
		t.Fatalf("NewMonthDayPattern: %v", err)
	}
	got := p.Format(MonthDayOf(time.July, 4))
	want := "July 4"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}
