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

func TestDateTimePatternRoundTrip(t *testing.T) {
	template := DateTimeOf(date.Of(1, time.January, 1), Midnight)
	p, err := NewDateTimePattern("s", nil, template)
	if err != nil {
		t.Fatalf("NewDateTimePattern: %v", err)
	}
	v := DateTimeOf(date.Of(2023, time.July, 14), TimeOf(13, 5, 9, 0))
	got := p.Format(v)
	want := "2023-07-14T13:05:09"
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

func TestDateTimePatternEmbeddedDate(t *testing.T) {
	template := DateTimeOf(date.Of(1, time.January, 1), Midnight)
	p, err := NewDateTimePattern("l<MM'/'dd'/'yyyy> HH':'mm", nil, template)
	if err != nil {
		t.Fatalf("NewDateTimePattern: %v", err)
	}
	v := DateTimeOf(date.Of(2023, time.July, 14), TimeOf(13, 5, 0, 0))
	got := p.Format(v)
	want := "07/14/2023 13:05"
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

func TestDateTimePatternCustomText(t *testing.T) {
	template := DateTimeOf(date.Of(1, time.January, 1), Midnight)
	p, err := NewDateTimePattern("MMMM d, yyyy hh':'mm tt", nil, template)
	if err != nil {
		t.Fatalf("NewDateTimePattern: %v", err)
	}
	v := DateTimeOf(date.Of(2023, time.July, 14), TimeOf(13, 5, 0, 0))
	got := p.Format(v)
	want := "July 14, 2023 01:05 PM"
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
