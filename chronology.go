// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"time"

	"cloudeng.io/ethiopic/jdn"
)

// Chronology represents the Ethiopian calendar system. It has no state
// and the zero value, or the package level Calendar, may be shared freely.
type Chronology struct{}

// Calendar is the Ethiopian calendar system.
var Calendar = Chronology{}

// ValueRange represents the range of valid values for a date field. For
// fields with variable length, such as the day of the month, SmallestMax
// is the smallest maximum value and LargestMax the largest.
type ValueRange struct {
	Min         int
	SmallestMax int
	LargestMax  int
}

// ID returns the identifier for the calendar.
func (Chronology) ID() string {
	return "Ethiopian"
}

// Date returns the Date for the given proleptic year, month and day. The
// era is determined by EraForYear and the absolute value of the proleptic
// year is used as the year of that era.
func (Chronology) Date(prolepticYear, month, day int) (Date, error) {
	era := EraForYear(prolepticYear)
	if prolepticYear < 0 {
		prolepticYear = -prolepticYear
	}
	return NewDate(era, prolepticYear, month, day)
}

// DateYearDay returns the Date for the given proleptic year and day of
// year. The month is computed as dayOfYear/30 + 1 and the day as
// dayOfYear%30, hence days of the year that are multiples of 30 yield a
// day of 0 and fail validation with ErrDayOutOfRange.
func (c Chronology) DateYearDay(prolepticYear, dayOfYear int) (Date, error) {
	month := dayOfYear/30 + 1
	day := dayOfYear % 30
	return c.Date(prolepticYear, month, day)
}

// MinEpochDay and MaxEpochDay bound the epoch days accepted by
// DateEpochDay. They are the Gregorian dates -999999999-01-01 and
// 999999999-12-31.
const (
	MinEpochDay int64 = -365243219162
	MaxEpochDay int64 = 365241780471
)

// DateEpochDay returns the Date for the given number of days since
// 1970-01-01. It returns ErrEpochDayOutOfRange for days outside of
// MinEpochDay and MaxEpochDay.
func (c Chronology) DateEpochDay(epochDay int64) (Date, error) {
	if epochDay < MinEpochDay || epochDay > MaxEpochDay {
		return Date{}, fmt.Errorf("%w: %d", ErrEpochDayOutOfRange, epochDay)
	}
	return c.DateFromJDN(jdn.FromEpochDay(epochDay)), nil
}

// DateFromJDN returns the Date for the given Julian Day Number with the
// era inferred from the day: Amete Mihret for days on or after 1-01-01
// Amete Mihret, Amete Alem otherwise.
func (Chronology) DateFromJDN(j int) Date {
	year, month, day, offset := jdn.ToEthiopic(j)
	d, err := NewDate(eraForOffset(offset), year, month, day)
	if err != nil {
		// jdn.ToEthiopic always returns a valid date.
		panic(err)
	}
	return d
}

// DateFromGregorian returns the Date for the given Gregorian date.
func (c Chronology) DateFromGregorian(g Gregorian) (Date, error) {
	if !g.IsValid() {
		return Date{}, fmt.Errorf("invalid gregorian date: %v", g)
	}
	return c.DateFromJDN(g.JDN()), nil
}

// DateFromTime returns the Date for the calendar day of t in t's location.
func (c Chronology) DateFromTime(t time.Time) Date {
	return c.DateFromJDN(GregorianFromTime(t).JDN())
}

// Now returns the current date in the local time zone.
func (c Chronology) Now() Date {
	return c.DateFromTime(time.Now())
}

// NowIn returns the current date in the specified location.
func (c Chronology) NowIn(loc *time.Location) Date {
	return c.DateFromTime(time.Now().In(loc))
}

// ToGregorian returns the Gregorian date for d.
func (Chronology) ToGregorian(d Date) Gregorian {
	return d.Gregorian()
}

// IsLeapYear returns true if the proleptic year is the last year of the
// four year cycle, ie. prolepticYear mod 4 == 3. The modulus is floored so
// that year -1 is a leap year and -4 is not.
func (Chronology) IsLeapYear(prolepticYear int64) bool {
	// Truncation to int preserves the value mod 4.
	return jdn.IsEthiopicLeap(int(prolepticYear))
}

// ProlepticYear returns the proleptic year for the given era and year of
// era. It returns ErrUnsupportedEra if era is not valid.
func (Chronology) ProlepticYear(era Era, yearOfEra int) (int, error) {
	switch era {
	case AmeteAlem:
		return -yearOfEra, nil
	case AmeteMihret:
		return yearOfEra, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedEra, int(era))
}

// EraOf returns the Era for the given numeric code, see EraOf.
func (Chronology) EraOf(code int) (Era, error) {
	return EraOf(code)
}

// Eras returns the eras supported by the calendar.
func (Chronology) Eras() []Era {
	return Eras()
}

// DayOfMonthRange returns the range of values for the day of the month.
func (Chronology) DayOfMonthRange() ValueRange {
	return ValueRange{Min: 1, SmallestMax: 5, LargestMax: 30}
}

// MonthOfYearRange returns the range of values for the month of the year.
func (Chronology) MonthOfYearRange() ValueRange {
	return ValueRange{Min: 1, SmallestMax: Pagume, LargestMax: Pagume}
}

// Now returns the current date in the local time zone.
func Now() Date {
	return Calendar.Now()
}

// FromTime returns the Date for the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	return Calendar.DateFromTime(t)
}
