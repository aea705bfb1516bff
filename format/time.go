// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "time"

// TimeFunc formats a point in time for display.
type TimeFunc func(time.Time) string

// Time returns a formatter that renders times with the given
// reference layout. If utc is true, times are converted to UTC before
// formatting; otherwise they are formatted in their own location.
func Time(layout string, utc bool) TimeFunc {
	return func(t time.Time) string {
		if utc {
			t = t.UTC()
		}
		return t.Format(layout)
	}
}

// multiTimeSteps are the candidate display granularities for
// MultiTime, finest first. The first candidate whose predicate holds
// wins, so each value is shown at the finest granularity actually
// present in it.
var multiTimeSteps = []struct {
	layout string
	pred   func(t time.Time) bool
}{
	{".000", func(t time.Time) bool { return t.Nanosecond()/1e6 != 0 }},
	{":05", func(t time.Time) bool { return t.Second() != 0 }},
	{"3:04", func(t time.Time) bool { return t.Minute() != 0 }},
	{"3 PM", func(t time.Time) bool { return t.Hour() != 0 }},
	{"Mon 02", func(t time.Time) bool { return t.Weekday() != time.Sunday && t.Day() != 1 }},
	{"Jan 02", func(t time.Time) bool { return t.Day() != 1 }},
	{"Jan", func(t time.Time) bool { return t.Month() != time.January }},
}

// MultiTime returns a formatter that picks a display granularity per
// value: a time with nonzero milliseconds renders as just its
// millisecond part, a time on a whole second as its second part, and
// so on up through minutes, hours, days and months, falling back to
// the year. If utc is true, times are converted to UTC first.
func MultiTime(utc bool) TimeFunc {
	return func(t time.Time) string {
		if utc {
			t = t.UTC()
		}
		for _, step := range multiTimeSteps {
			if step.pred(t) {
				return t.Format(step.layout)
			}
		}
		return t.Format("2006")
	}
}
