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

func TestTimePatternRoundTrip(t *testing.T) {
	p, err := NewTimePattern("r", nil, Midnight)
	if err != nil {
		t.Fatalf("NewTimePattern: %v", err)
	}
	tm := TimeOf(13, 5, 9, 250000000)
	got := p.Format(tm)
	want := "13:05:09.250000000"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != tm {
		t.Fatalf("Parse(%q) = %v, want %v", got, v, tm)
	}
}

func TestTimePatternHour12AmPm(t *testing.T) {
	p, err := NewTimePattern("hh':'mm tt", nil, Midnight)
	if err != nil {
		t.Fatalf("NewTimePattern: %v", err)
	}
	got := p.Format(TimeOf(13, 5, 0, 0))
	want := "01:05 PM"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(want).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if v != TimeOf(13, 5, 0, 0) {
		t.Fatalf("Parse(%q) = %v", want, v)
	}
}

func TestTimePatternHour24Midnight(t *testing.T) {
	p, err := NewTimePattern("HH':'mm':'ss", nil, Midnight)
	if err != nil {
		t.Fatalf("NewTimePattern: %v", err)
	}
	v, err := p.Parse("24:00:00").Value()
	if err != nil {
		t.Fatalf("Parse(\"24:00:00\"): %v", err)
	}
	if v != Midnight {
		t.Fatalf("Parse(\"24:00:00\") = %v, want midnight", v)
	}
}

// TestDateTimePatternHour24CarriesDay exercises the same hour-24 special
// case through a composite LocalDateTime pattern, where the day overflow it
// reports must carry into the date component (§3).
func TestDateTimePatternHour24CarriesDay(t *testing.T) {
	template := DateTimeOf(date.Of(2023, time.July, 14), Midnight)
	p, err := NewDateTimePattern("uuuu'-'MM'-'dd'T'HH':'mm':'ss", nil, template)
	if err != nil {
		t.Fatalf("NewDateTimePattern: %v", err)
	}
	v, err := p.Parse("2023-07-14T24:00:00").Value()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := DateTimeOf(date.Of(2023, time.July, 15), Midnight)
	if v != want {
		t.Fatalf("Parse() = %v, want %v", v, want)
	}
}

func TestTimePatternHour24Invalid(t *testing.T) {
	p, err := NewTimePattern("HH':'mm':'ss", nil, Midnight)
	if err != nil {
		t.Fatalf("NewTimePattern: %v", err)
	}
	result := p.Parse("24:30:00")
	if result.Success() {
		t.Fatal("Parse(\"24:30:00\") succeeded, want InvalidHour24 failure")
	}
}
