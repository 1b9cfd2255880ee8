// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateutil

import (
	"encoding/json"
	"fmt"

	"cloudeng.io/errors"
)

// ErrInvalidOffset is returned by Get and Ahead for offsets below 1. The
// message is part of the public contract.
var ErrInvalidOffset = errors.New("Number should be greater or equal than 1") //nolint:staticcheck // ST1005: fixed message

// Form discriminates the two labelings of a RelativeDates value:
// singular field names for an offset of exactly 1, plural field names
// for larger offsets. The computed dates are identical for both forms.
type Form int

const (
	Singular Form = iota + 1
	Plural
)

func (f Form) String() string {
	switch f {
	case Singular:
		return "singular"
	case Plural:
		return "plural"
	}
	return "invalid"
}

// Direction indicates whether a relative offset looks into the past
// (Get) or the future (Ahead).
type Direction int

const (
	Past Direction = iota
	Future
)

func (d Direction) String() string {
	switch d {
	case Past:
		return "ago"
	case Future:
		return "ahead"
	}
	return "invalid"
}

// RelativeDates names three dates offset from the current date along the
// day, month and year axes. Form selects the singular or plural field
// labels used by the JSON encoding; ByDay, ByMonth and ByYear carry the
// same values regardless of the form.
type RelativeDates struct {
	Form      Form
	Direction Direction
	ByDay     CalendarDate
	ByMonth   CalendarDate
	ByYear    CalendarDate
}

type singularAgo struct {
	DayAgo   CalendarDate `json:"dayAgo"`
	MonthAgo CalendarDate `json:"monthAgo"`
	YearAgo  CalendarDate `json:"yearAgo"`
}

type pluralAgo struct {
	DaysAgo   CalendarDate `json:"daysAgo"`
	MonthsAgo CalendarDate `json:"monthsAgo"`
	YearsAgo  CalendarDate `json:"yearsAgo"`
}

type singularAhead struct {
	DayAhead   CalendarDate `json:"dayAhead"`
	MonthAhead CalendarDate `json:"monthAhead"`
	YearAhead  CalendarDate `json:"yearAhead"`
}

type pluralAhead struct {
	DaysAhead   CalendarDate `json:"daysAhead"`
	MonthsAhead CalendarDate `json:"monthsAhead"`
	YearsAhead  CalendarDate `json:"yearsAhead"`
}

// MarshalJSON encodes the three dates under singular or plural keys
// according to Form and Direction.
func (rd RelativeDates) MarshalJSON() ([]byte, error) {
	switch {
	case rd.Direction == Past && rd.Form == Singular:
		return json.Marshal(singularAgo{rd.ByDay, rd.ByMonth, rd.ByYear})
	case rd.Direction == Past && rd.Form == Plural:
		return json.Marshal(pluralAgo{rd.ByDay, rd.ByMonth, rd.ByYear})
	case rd.Direction == Future && rd.Form == Singular:
		return json.Marshal(singularAhead{rd.ByDay, rd.ByMonth, rd.ByYear})
	case rd.Direction == Future && rd.Form == Plural:
		return json.Marshal(pluralAhead{rd.ByDay, rd.ByMonth, rd.ByYear})
	}
	return nil, fmt.Errorf("invalid form/direction: %v/%v", rd.Form, rd.Direction)
}

func (rd RelativeDates) String() string {
	return fmt.Sprintf("day: %v, month: %v, year: %v (%v)", rd.ByDay, rd.ByMonth, rd.ByYear, rd.Form)
}

func formFor(n int) Form {
	if n == 1 {
		return Singular
	}
	return Plural
}

// Get returns the dates n days, n months and n years before the current
// date. Day offsets borrow across month and year boundaries; month and
// year offsets hold the remaining components and clamp the day to the
// length of the target month (Feb 29 becomes Feb 28 for non-leap
// targets). ErrInvalidOffset is returned for n < 1.
func (a Anchors) Get(n int) (RelativeDates, error) {
	if n < 1 {
		return RelativeDates{}, ErrInvalidOffset
	}
	now := a.now()
	return RelativeDates{
		Form:      formFor(n),
		Direction: Past,
		ByDay:     now.AddDays(-n),
		ByMonth:   now.AddMonths(-n),
		ByYear:    now.AddYears(-n),
	}, nil
}

// Ahead is the forward-looking counterpart of Get, returning the dates
// n days, n months and n years after the current date under the same
// carry and clamping rules.
func (a Anchors) Ahead(n int) (RelativeDates, error) {
	if n < 1 {
		return RelativeDates{}, ErrInvalidOffset
	}
	now := a.now()
	return RelativeDates{
		Form:      formFor(n),
		Direction: Future,
		ByDay:     now.AddDays(n),
		ByMonth:   now.AddMonths(n),
		ByYear:    now.AddYears(n),
	}, nil
}

// Get returns relative past dates per the system clock, see Anchors.Get.
func Get(n int) (RelativeDates, error) {
	return system.Get(n)
}

// Ahead returns relative future dates per the system clock, see
// Anchors.Ahead.
func Ahead(n int) (RelativeDates, error) {
	return system.Ahead(n)
}
