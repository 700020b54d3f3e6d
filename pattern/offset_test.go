// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "testing"

func TestOffsetPatternRoundTrip(t *testing.T) {
	p, err := NewOffsetPattern("+HH':'mm':'ss", nil, Zero)
	if err != nil {
		t.Fatalf("NewOffsetPattern: %v", err)
	}
	o := OffsetFromSeconds(-(5*3600 + 30*60 + 15))
	got := p.Format(o)
	want := "-05:30:15"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != o {
		t.Fatalf("Parse(%q) = %v, want %v", got, v, o)
	}
}

func TestOffsetPatternZPrefixZero(t *testing.T) {
	p, err := NewOffsetPattern("Z+HH':'mm", nil, Zero)
	if err != nil {
		t.Fatalf("NewOffsetPattern: %v", err)
	}
	if got, want := p.Format(Zero), "Z"; got != want {
		t.Fatalf("Format(Zero) = %q, want %q", got, want)
	}
	v, err := p.Parse("Z").Value()
	if err != nil {
		t.Fatalf("Parse(\"Z\"): %v", err)
	}
	if v != Zero {
		t.Fatalf("Parse(\"Z\") = %v, want Zero", v)
	}
}

func TestOffsetPatternZPrefixNonZero(t *testing.T) {
	p, err := NewOffsetPattern("Z+HH':'mm", nil, Zero)
	if err != nil {
		t.Fatalf("NewOffsetPattern: %v", err)
	}
	o := OffsetFromSeconds(9 * 3600)
	got := p.Format(o)
	want := "+09:00"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	v, err := p.Parse(got).Value()
	if err != nil {
		t.Fatalf("Parse(%q): %v", got, err)
	}
	if v != o {
		t.Fatalf("Parse(%q) = %v, want %v", got, v, o)
	}
}

func TestOffsetPatternZPrefixMustBeFirst(t *testing.T) {
	if _, err := NewOffsetPattern("+HHZmm", nil, Zero); err == nil {
		t.Fatal("NewOffsetPattern(\"+HHZmm\") succeeded, want ZPrefixNotAtStart")
	}
}

func TestOffsetPatternGeneralWidthSelection(t *testing.T) {
	p, err := NewOffsetPattern("g", nil, Zero)
	if err != nil {
		t.Fatalf("NewOffsetPattern: %v", err)
	}
	cases := []struct {
		o    Offset
		want string
	}{
		{Zero, "+00"},
		{OffsetFromSeconds(9 * 3600), "+09"},
		{OffsetFromSeconds(9*3600 + 30*60), "+09:30"},
		{OffsetFromSeconds(9*3600 + 30*60 + 15), "+09:30:15"},
	}
	for _, c := range cases {
		if got := p.Format(c.o); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.o, got, c.want)
		}
	}
	if p.Parse("+09").Success() {
		t.Fatal("Parse() succeeded on a format-only 'g' pattern, want failure")
	}
}
