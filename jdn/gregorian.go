// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jdn

import "cloudeng.io/datetime"

// IsGregorianLeap returns true if the given year is a leap year in the
// proleptic Gregorian calendar. Years use astronomical numbering, so that
// year 0 is 1 BC and is a leap year.
func IsGregorianLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInGregorianMonth returns the number of days in the given month
// (1-12) of the given Gregorian year. It returns 0 for months outside
// of that range.
func DaysInGregorianMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// monthAndDay returns the month and day for the 1-based day of the year.
func monthAndDay(year, dayOfYear int) (month, day int) {
	for month = 1; month < 12; month++ {
		n := int(datetime.DaysInMonth(year, datetime.Month(month)))
		if dayOfYear <= n {
			break
		}
		dayOfYear -= n
	}
	return month, dayOfYear
}
