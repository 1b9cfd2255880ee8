// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateutil

import "time"

// Clock determines the current moment for the anchor constructors. The
// default implementation reads time.Now; tests supply a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Option represents an option for configuring an Anchors value.
type Option func(o *options)

type options struct {
	clock Clock
}

// WithClock sets the clock implementation to use.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// Anchors derives anchor dates (today, beginning of the month etc.) from
// the current moment as reported by its clock. The zero value is not
// usable, use New.
type Anchors struct {
	clock Clock
}

// New returns an Anchors value configured with the supplied options.
func New(opts ...Option) Anchors {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.clock == nil {
		o.clock = systemClock{}
	}
	return Anchors{clock: o.clock}
}

func (a Anchors) now() CalendarDate {
	return Separate(a.clock.Now())
}

// Today returns the current date with the time of day discarded.
func (a Anchors) Today() CalendarDate {
	return a.now()
}

// BeginningOfDay is identical to Today: the current date at midnight.
func (a Anchors) BeginningOfDay() CalendarDate {
	return a.now()
}

// Yesterday returns the date of the previous day. On the first day of a
// month the date borrows into the last day of the previous month, and on
// Jan 1 into Dec 31 of the previous year.
func (a Anchors) Yesterday() CalendarDate {
	return a.now().Yesterday()
}

// Tomorrow returns the date of the next day, carrying across month and
// year boundaries.
func (a Anchors) Tomorrow() CalendarDate {
	return a.now().Tomorrow()
}

// BeginningOfMonth returns the first day of the current month.
func (a Anchors) BeginningOfMonth() CalendarDate {
	cd := a.now()
	cd.Day = 1
	return cd
}

// EndOfMonth returns the last day of the current month taking leap
// years into account.
func (a Anchors) EndOfMonth() CalendarDate {
	cd := a.now()
	cd.Day = DaysInMonth(cd.Year, cd.Month)
	return cd
}

// BeginningOfYear returns Jan 1 of the current year.
func (a Anchors) BeginningOfYear() CalendarDate {
	cd := a.now()
	cd.Month, cd.Day = 1, 1
	return cd
}

// EndOfYear returns Dec 31 of the current year.
func (a Anchors) EndOfYear() CalendarDate {
	cd := a.now()
	cd.Month, cd.Day = 12, 31
	return cd
}

var system = New()

// Today returns the current date per the system clock, see Anchors.Today.
func Today() CalendarDate {
	return system.Today()
}

// BeginningOfDay is identical to Today.
func BeginningOfDay() CalendarDate {
	return system.BeginningOfDay()
}

// Yesterday returns the date of the previous day per the system clock,
// see Anchors.Yesterday.
func Yesterday() CalendarDate {
	return system.Yesterday()
}

// Tomorrow returns the date of the next day per the system clock, see
// Anchors.Tomorrow.
func Tomorrow() CalendarDate {
	return system.Tomorrow()
}

// BeginningOfMonth returns the first day of the current month per the
// system clock.
func BeginningOfMonth() CalendarDate {
	return system.BeginningOfMonth()
}

// EndOfMonth returns the last day of the current month per the system
// clock.
func EndOfMonth() CalendarDate {
	return system.EndOfMonth()
}

// BeginningOfYear returns Jan 1 of the current year per the system clock.
func BeginningOfYear() CalendarDate {
	return system.BeginningOfYear()
}

// EndOfYear returns Dec 31 of the current year per the system clock.
func EndOfYear() CalendarDate {
	return system.EndOfYear()
}
