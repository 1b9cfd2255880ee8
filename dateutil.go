// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dateutil provides rails-style conveniences for working with
// calendar dates: decomposing a time.Time into its (year, month, day)
// components, anchor dates such as today or the beginning of the month,
// and relative offsets along the day, month and year axes. All arithmetic
// is performed explicitly on the date components with borrow and carry
// across month and year boundaries rather than relying on time.Time
// normalization. Time of day and timezones are outside its scope; the
// current moment is read through an injectable Clock.
package dateutil

import "time"

// Month as an int, 1 is January.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int // days in each month of a leap year
)

func daysInMonthInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthInit(2024, i+1)
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}
