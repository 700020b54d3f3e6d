// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"
	"time"
)

func TestDurationPatternRoundTrip(t *testing.T) {
	p, err := NewDurationPattern("o", nil, 0)
	if err != nil {
		t.Fatalf("NewDurationPattern: %v", err)
	}
	d := 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond
	got := p.Format(d)
	want := "1:02:03:04.500000000"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != d {
		t.Fatalf("Parse(%q) = %v, want %v", got, v, d)
	}
}

func TestDurationPatternNegative(t *testing.T) {
	p, err := NewDurationPattern("-H:mm:ss", nil, 0)
	if err != nil {
		t.Fatalf("NewDurationPattern: %v", err)
	}
	d := -(2*time.Hour + 30*time.Minute)
	got := p.Format(d)
	want := "-2:30:00"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != d {
		t.Fatalf("Parse(%q) = %v, want %v", got, v, d)
	}
}

func TestDurationPatternTotalHours(t *testing.T) {
	p, err := NewDurationPattern("H:mm:ss", nil, 0)
	if err != nil {
		t.Fatalf("NewDurationPattern: %v", err)
	}
	d := 50*time.Hour + 15*time.Minute
	got := p.Format(d)
	want := "50:15:00"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != d {
		t.Fatalf("Parse(%q) = %v, want %v", got, v, d)
	}
}

func TestDurationPatternMultipleCapitalFieldsRejected(t *testing.T) {
	if _, err := NewDurationPattern("D:H:mm:ss", nil, 0); err == nil {
		t.Fatal("NewDurationPattern(\"D:H:mm:ss\") succeeded, want MultipleCapitalDurationFields")
	}
}
