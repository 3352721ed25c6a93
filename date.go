// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"time"

	"cloudeng.io/ethiopic/jdn"
)

// Pagume is the thirteenth month of the Ethiopian year. It has 5 days
// in ordinary years and 6 in leap years.
const Pagume = 13

// Date represents a date in the Ethiopian calendar as an era, a year
// within that era, a month (1-13) and a day (1-30). Dates are immutable
// and can only be created via NewDate or one of the Chronology methods,
// all of which validate their arguments.
//
// Dates should be compared using Compare or Equal rather than ==, since
// the same day may be represented in either era.
type Date struct {
	era   Era
	year  int
	month int
	day   int
}

// NewDate returns the Date for the given era, year of era, month and day.
// The fields are validated in the following order and the first failure
// is returned as a *DateError wrapping ErrDayOutOfRange, ErrMonthOutOfRange,
// ErrPagumeOverflow or ErrPagumeNotLeap. ErrUnsupportedEra is returned for
// an invalid era.
func NewDate(era Era, year, month, day int) (Date, error) {
	if err := validate(era, year, month, day); err != nil {
		return Date{}, err
	}
	return Date{era: era, year: year, month: month, day: day}, nil
}

func validate(era Era, year, month, day int) error {
	var err error
	switch {
	case !era.IsValid():
		err = ErrUnsupportedEra
	case day < 1 || day > 30:
		err = ErrDayOutOfRange
	case month < 1 || month > Pagume:
		err = ErrMonthOutOfRange
	case month == Pagume && day > 6:
		err = ErrPagumeOverflow
	case month == Pagume && day > 5 && !jdn.IsEthiopicLeap(year):
		err = ErrPagumeNotLeap
	default:
		return nil
	}
	return &DateError{Era: era, Year: year, Month: month, Day: day, Err: err}
}

// Era returns the era of the date.
func (d Date) Era() Era {
	return d.era
}

// Year returns the year within the date's era.
func (d Date) Year() int {
	return d.year
}

// ProlepticYear returns the year as a signed value, negative
// for the AmeteAlem era.
func (d Date) ProlepticYear() int {
	if d.era == AmeteAlem {
		return -d.year
	}
	return d.year
}

// Month returns the month, 1-13.
func (d Date) Month() int {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// ProlepticMonth returns a count of months of the year within the date's
// era, ie. year*13 + month - 1.
func (d Date) ProlepticMonth() int {
	return d.year*13 + d.month - 1
}

// IsLeapYear returns true if the date's year of era has a 6 day Pagume.
func (d Date) IsLeapYear() bool {
	return jdn.IsEthiopicLeap(d.year)
}

// LengthOfMonth returns 30 for months 1-12, and 5 or 6 for Pagume.
func (d Date) LengthOfMonth() int {
	if d.month == Pagume {
		if d.IsLeapYear() {
			return 6
		}
		return 5
	}
	return 30
}

// LengthOfYear returns 365 or 366 for leap years.
func (d Date) LengthOfYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// DayOfYear returns the day of the year, starting at 1 for Meskerem 1.
func (d Date) DayOfYear() int {
	return (d.month-1)*30 + d.day
}

// JDN returns the Julian Day Number for the date.
func (d Date) JDN() int {
	j, err := jdn.FromEthiopicInEra(d.year, d.month, d.day, d.era.EpochOffset())
	if err != nil {
		// Dates can only be created with valid eras.
		panic(err)
	}
	return j
}

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	return jdn.ToEpochDay(d.JDN())
}

// Gregorian returns the equivalent date in the proleptic Gregorian calendar.
func (d Date) Gregorian() Gregorian {
	return GregorianFromJDN(d.JDN())
}

// Time returns the time.Time for midnight on the equivalent Gregorian date
// in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return d.Gregorian().Time(loc)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// day as, or after o. Dates in different eras that refer to the same day
// compare as equal.
func (d Date) Compare(o Date) int {
	a, b := d.JDN(), o.JDN()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true if d and o refer to the same day.
func (d Date) Equal(o Date) bool {
	return d.Compare(o) == 0
}

// Before returns true if d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// DaysUntil returns the number of days from d until o, which is negative
// if o is before d.
func (d Date) DaysUntil(o Date) int {
	return o.JDN() - d.JDN()
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	return d.AddDate(0, 0, n)
}

// AddDate returns the date obtained by adding the given number of years,
// months and days to the Gregorian equivalent of d as per
// time.Time.AddDate and converting the result back to the Ethiopian
// calendar.
func (d Date) AddDate(years, months, days int) Date {
	return Calendar.DateFromTime(d.Time(time.UTC).AddDate(years, months, days))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %s", d.year, d.month, d.day, d.era.Abbreviation())
}
