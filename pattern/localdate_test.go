// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"
	"time"

	date "github.com/nodatime/nodatime-go"
)

func TestDatePatternRoundTrip(t *testing.T) {
	p, err := NewDatePattern("d", nil, date.Of(2023, time.July, 14))
	if err != nil {
		t.Fatalf("NewDatePattern: %v", err)
	}
	got := p.Format(date.Of(2023, time.July, 14))
	want := "2023-07-14"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	result := p.Parse(got)
	v, err := result.Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != date.Of(2023, time.July, 14) {
		t.Fatalf("Parse(%q) = %v, want 2023-07-14", got, v)
	}
}

func TestDatePatternCustomText(t *testing.T) {
	p, err := NewDatePattern("MMMM d, yyyy", nil, date.Of(1, time.January, 1))
	if err != nil {
		t.Fatalf("NewDatePattern: %v", err)
	}
	got := p.Format(date.Of(2023, time.July, 14))
	want := "July 14, 2023"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(want).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if v != date.Of(2023, time.July, 14) {
		t.Fatalf("Parse(%q) = %v", want, v)
	}
}

func TestDatePatternTwoDigitYear(t *testing.T) {
	p, err := NewDatePattern("MM'/'dd'/'yy", nil, date.Of(1999, time.January, 1))
	if err != nil {
		t.Fatalf("NewDatePattern: %v", err)
	}
	v, err := p.Parse("07/14/23").Value()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v != date.Of(1923, time.July, 14) {
		t.Fatalf("Parse() = %v, want 1923-07-14 (century taken from template)", v)
	}
}

func TestDatePatternDayOfWeekMismatch(t *testing.T) {
	p, err := NewDatePattern("dddd', 'MMMM d, yyyy", nil, date.Of(1, time.January, 1))
	if err != nil {
		t.Fatalf("NewDatePattern: %v", err)
	}
	result := p.Parse("Saturday, July 14, 2023") // 2023-07-14 was actually a Friday
	if result.Success() {
		t.Fatal("Parse() succeeded, want InconsistentValues failure")
	}
}

func TestDatePatternUnknownStandard(t *testing.T) {
	if _, err := NewDatePattern("q", nil, date.Of(1, time.January, 1)); err == nil {
		t.Fatal("NewDatePattern(\"q\") succeeded, want UnknownStandardFormat")
	}
}
