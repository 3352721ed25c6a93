// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ethiopic provides support for dates in the Ethiopian calendar and
// for converting them to and from the proleptic Gregorian calendar.
//
// The Ethiopian year has twelve months of 30 days followed by Pagume, a
// thirteenth month of 5 days, or 6 days in the last year of each four year
// cycle. Years are counted in one of two eras, Amete Mihret (Year of Mercy)
// and Amete Alem (Year of the World), each anchored to a fixed Julian Day
// Number. A proleptic year is a signed year, positive for Amete Mihret and
// zero or negative for Amete Alem.
//
// All conversions are performed via Julian Day Numbers using the functions
// in the jdn sub-package:
//
//	d, err := ethiopic.Calendar.Date(2017, 1, 1)
//	g := d.Gregorian() // 2024-09-11
//	d, err = ethiopic.Calendar.DateFromGregorian(ethiopic.Gregorian{Year: 1862, Month: time.October, Day: 29})
//	// 1855-02-20 AM
//
// Date values are immutable and all of the types and functions in this
// package are safe for concurrent use.
package ethiopic
