// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"errors"
	"fmt"

	"cloudeng.io/ethiopic/jdn"
)

var (
	// ErrDayOutOfRange is returned for a day outside of 1-30.
	ErrDayOutOfRange = errors.New("day out of range")
	// ErrMonthOutOfRange is returned for a month outside of 1-13.
	ErrMonthOutOfRange = errors.New("month out of range")
	// ErrPagumeOverflow is returned for a day greater than 6 in Pagume.
	ErrPagumeOverflow = errors.New("pagume day out of range")
	// ErrPagumeNotLeap is returned for Pagume 6 in a year that is not
	// a leap year.
	ErrPagumeNotLeap = errors.New("pagume 6 in a non-leap year")
	// ErrInvalidEra is returned for a numeric era code or name that is
	// not one of the supported eras. It is the same error as returned
	// by the jdn package for an unknown epoch offset.
	ErrInvalidEra = jdn.ErrInvalidEra
	// ErrUnsupportedEra is returned when an Era value is not one of
	// AmeteAlem or AmeteMihret.
	ErrUnsupportedEra = errors.New("unsupported era")
	// ErrEpochDayOutOfRange is returned for an epoch day outside of
	// MinEpochDay and MaxEpochDay.
	ErrEpochDayOutOfRange = errors.New("epoch day out of range")
)

// DateError records a failure to construct a Date and the
// values that caused it. Err is one of the Err* values above and can
// be tested for using errors.Is.
type DateError struct {
	Era   Era
	Year  int
	Month int
	Day   int
	Err   error
}

func (e *DateError) Error() string {
	switch {
	case errors.Is(e.Err, ErrDayOutOfRange):
		return fmt.Sprintf("invalid day %d: must be between 1-30", e.Day)
	case errors.Is(e.Err, ErrMonthOutOfRange):
		return fmt.Sprintf("invalid month %d: must be between 1-13", e.Month)
	case errors.Is(e.Err, ErrPagumeOverflow):
		return fmt.Sprintf("invalid date: pagume %d %d", e.Day, e.Year)
	case errors.Is(e.Err, ErrPagumeNotLeap):
		return fmt.Sprintf("invalid date: pagume 6 as %d is not a leap year", e.Year)
	}
	return fmt.Sprintf("invalid date %04d-%02d-%02d %v: %v", e.Year, e.Month, e.Day, e.Era.Abbreviation(), e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *DateError) Unwrap() error {
	return e.Err
}
