// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"testing"
	"time"
)

func TestTime(t *testing.T) {
	f := Time("2006-01-02 15:04", false)
	when := time.Date(2020, 7, 15, 10, 30, 0, 0, time.UTC)
	if got, want := f(when), "2020-07-15 10:30"; got != want {
		t.Errorf("Time()(%v) = %q, want %q", when, got, want)
	}
}

func TestTimeUTC(t *testing.T) {
	east := time.FixedZone("east", 2*60*60)
	when := time.Date(2020, 7, 15, 1, 0, 0, 0, east)
	if got, want := Time("15:04", true)(when), "23:00"; got != want {
		t.Errorf("UTC Time()(%v) = %q, want %q", when, got, want)
	}
	if got, want := Time("15:04", false)(when), "01:00"; got != want {
		t.Errorf("local Time()(%v) = %q, want %q", when, got, want)
	}
}

func TestMultiTime(t *testing.T) {
	f := MultiTime(false)
	check := func(when time.Time, want string) {
		t.Helper()
		if got := f(when); got != want {
			t.Errorf("MultiTime()(%v) = %q, want %q", when, got, want)
		}
	}

	date := func(month time.Month, day, hour, min, sec, ms int) time.Time {
		return time.Date(2020, month, day, hour, min, sec, ms*1e6, time.UTC)
	}

	// Finest nonzero component wins.
	check(date(time.July, 15, 10, 30, 45, 123), ".123")
	check(date(time.July, 15, 10, 30, 45, 0), ":45")
	check(date(time.July, 15, 10, 30, 0, 0), "10:30")
	check(date(time.July, 15, 14, 0, 0, 0), "2 PM")
	// 2020-07-15 is a Wednesday.
	check(date(time.July, 15, 0, 0, 0, 0), "Wed 15")
	// 2020-07-05 is a Sunday, which the weekday form skips.
	check(date(time.July, 5, 0, 0, 0, 0), "Jul 05")
	check(date(time.July, 1, 0, 0, 0, 0), "Jul")
	check(date(time.January, 1, 0, 0, 0, 0), "2020")
}
