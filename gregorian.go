// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"time"

	"cloudeng.io/ethiopic/jdn"
)

// Gregorian represents a date in the proleptic Gregorian calendar with
// astronomical year numbering, ie. the representation used by time.Time.
type Gregorian struct {
	Year  int
	Month time.Month
	Day   int
}

// GregorianFromTime returns the Gregorian date for t in t's location.
func GregorianFromTime(t time.Time) Gregorian {
	y, m, d := t.Date()
	return Gregorian{Year: y, Month: m, Day: d}
}

// GregorianFromJDN returns the Gregorian date for the given Julian
// Day Number.
func GregorianFromJDN(j int) Gregorian {
	y, m, d := jdn.ToGregorian(j)
	return Gregorian{Year: y, Month: time.Month(m), Day: d}
}

// ParseGregorian parses a date in the numeric YYYY-MM-DD format.
func ParseGregorian(val string) (Gregorian, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return Gregorian{}, fmt.Errorf("invalid gregorian date %q, expected format YYYY-MM-DD", val)
	}
	return GregorianFromTime(t), nil
}

// IsValid returns true if g refers to an existing day.
func (g Gregorian) IsValid() bool {
	return g.Day >= 1 && g.Day <= jdn.DaysInGregorianMonth(g.Year, int(g.Month))
}

// JDN returns the Julian Day Number for g.
func (g Gregorian) JDN() int {
	return jdn.FromGregorian(g.Year, int(g.Month), g.Day)
}

// EpochDay returns the number of days since 1970-01-01.
func (g Gregorian) EpochDay() int64 {
	return jdn.ToEpochDay(g.JDN())
}

// Time returns the time.Time for midnight on g in the given location.
func (g Gregorian) Time(loc *time.Location) time.Time {
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, loc)
}

func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), g.Day)
}
