// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateutil_test

import (
	"time"

	"cloudeng.io/dateutil"
)

func newCalendarDate(y, m, d int) dateutil.CalendarDate {
	return dateutil.NewCalendarDate(y, dateutil.Month(m), d)
}

type testClock struct {
	when time.Time
}

func (c testClock) Now() time.Time {
	return c.when
}

// anchorsAt returns an Anchors whose clock is fixed to the given date
// with a non-midnight time of day, so that tests exercise the stripping
// of the time component.
func anchorsAt(y, m, d int) dateutil.Anchors {
	when := time.Date(y, time.Month(m), d, 13, 24, 42, 7, time.UTC)
	return dateutil.New(dateutil.WithClock(testClock{when}))
}
