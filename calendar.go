// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateutil

import (
	"fmt"
	"time"
)

// CalendarDate represents a date separated into its year, month and day
// components with no time of day. The zero value is not a valid date;
// use NewCalendarDate or Separate.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the given year, month and
// day. The components are not normalized, use Normalize for that.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Separate decomposes the given time into its date components, discarding
// the time of day.
func Separate(when time.Time) CalendarDate {
	return CalendarDate{Year: when.Year(), Month: Month(when.Month()), Day: when.Day()}
}

// Day returns the day of the month for the given time.
func Day(when time.Time) int {
	return when.Day()
}

// MonthOf returns the month for the given time.
func MonthOf(when time.Time) Month {
	return Month(when.Month())
}

// Year returns the year for the given time.
func Year(when time.Time) int {
	return when.Year()
}

// Time reconstructs the date as a time.Time at midnight in the given
// location. Separate(cd.Time(loc)) == cd for any normalized cd.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Normalize returns the date with out-of-range month and day components
// carried across month and year boundaries, so that {2020, 1, 0} becomes
// 2019-12-31 and {2020, 13, 1} becomes 2021-01-01.
func (cd CalendarDate) Normalize() CalendarDate {
	year, month := cd.Year, int(cd.Month)-1
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return CalendarDate{Year: year, Month: Month(month + 1), Day: 1}.AddDays(cd.Day - 1)
}

// AddDays returns the date n days later (earlier for negative n), with
// explicit borrow and carry across month and year boundaries.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	year, month, day := cd.Year, cd.Month, cd.Day+n
	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += DaysInMonth(year, month)
	}
	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return CalendarDate{Year: year, Month: month, Day: day}
}

// AddMonths returns the date n months later (earlier for negative n),
// holding the day of the month. Days beyond the length of the target
// month are clamped to its last day, so Jan 31 plus one month is Feb 28
// or Feb 29 depending on the year.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	year, month := cd.Year, int(cd.Month)-1+n
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return CalendarDate{Year: year, Month: Month(month + 1), Day: cd.Day}.clampDay()
}

// AddYears returns the date n years later (earlier for negative n),
// holding month and day. Feb 29 is clamped to Feb 28 when the target
// year is not a leap year.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	return CalendarDate{Year: cd.Year + n, Month: cd.Month, Day: cd.Day}.clampDay()
}

func (cd CalendarDate) clampDay() CalendarDate {
	if last := DaysInMonth(cd.Year, cd.Month); cd.Day > last {
		cd.Day = last
	}
	return cd
}

// Tomorrow returns the date of the next day. Dec 31 carries into Jan 1
// of the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	return cd.AddDays(1)
}

// Yesterday returns the date of the previous day. Jan 1 borrows into
// Dec 31 of the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	return cd.AddDays(-1)
}
