// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jdn provides conversions between Julian Day Numbers (JDN) and
// dates in the Ethiopian and proleptic Gregorian calendars. A JDN is a
// continuous count of days that is independent of any calendar and is used
// as the interchange format between the two calendars.
//
// All of the functions in this package are pure functions of their integer
// arguments and are safe for concurrent use.
//
//	j := jdn.FromGregorian(1862, 10, 29)
//	year, month, day, offset := jdn.ToEthiopic(j) // 1855, 2, 20, AmeteMihretEpochOffset
package jdn

import (
	"errors"
	"fmt"
)

const (
	// AmeteAlemEpochOffset is the JDN epoch offset of the Amete Alem
	// (Year of the World) era.
	AmeteAlemEpochOffset = -285019
	// AmeteMihretEpochOffset is the JDN epoch offset of the Amete Mihret
	// (Year of Mercy) era.
	AmeteMihretEpochOffset = 1723856
	// GregorianEpochOffset is the JDN epoch offset used by the proleptic
	// Gregorian conversions, ie. the JDN of 0001-01-01.
	GregorianEpochOffset = 1721426
	// UnixEpochJDN is the JDN of 1970-01-01.
	UnixEpochJDN = 2440588

	copticEpochOffset = 1824665
)

// ErrInvalidEra is returned when an epoch offset is not one of those
// defined by this package.
var ErrInvalidEra = errors.New("invalid era")

// quotient returns floor(i/j).
func quotient(i, j int) int {
	q := i / j
	if (i%j != 0) && ((i < 0) != (j < 0)) {
		q--
	}
	return q
}

// mod returns i modulo j with the sign of j, ie. in [0, j) for positive j.
func mod(i, j int) int {
	return i - j*quotient(i, j)
}

// IsEthiopicLeap returns true if year is the last year of the four year
// cycle, ie. year mod 4 == 3 using a floored modulus, so that -1 is a
// leap year and -4 is not.
func IsEthiopicLeap(year int) bool {
	return mod(year, 4) == 3
}

// ValidEpochOffset returns true if offset is one of the supported era
// epoch offsets.
func ValidEpochOffset(offset int) bool {
	switch offset {
	case AmeteAlemEpochOffset, AmeteMihretEpochOffset, copticEpochOffset:
		return true
	}
	return false
}

// GuessEpochOffset returns the era epoch offset that the given JDN is
// most likely to be expressed in: Amete Mihret for days on or after
// the first day of year 1 Amete Mihret and Amete Alem for all earlier days.
func GuessEpochOffset(jdn int) int {
	if jdn >= AmeteMihretEpochOffset+365 {
		return AmeteMihretEpochOffset
	}
	return AmeteAlemEpochOffset
}

func fromEthiopic(year, month, day, offset int) int {
	return (offset + 365) +
		365*(year-1) +
		quotient(year, 4) +
		30*month +
		day - 31
}

// FromEthiopic returns the JDN for the given Amete Mihret date.
func FromEthiopic(year, month, day int) int {
	return fromEthiopic(year, month, day, AmeteMihretEpochOffset)
}

// FromEthiopicInEra returns the JDN for the given date in the era
// identified by offset. It returns ErrInvalidEra if offset is not
// a supported epoch offset.
func FromEthiopicInEra(year, month, day, offset int) (int, error) {
	if !ValidEpochOffset(offset) {
		return 0, fmt.Errorf("%w: unknown epoch offset %d", ErrInvalidEra, offset)
	}
	return fromEthiopic(year, month, day, offset), nil
}

func toEthiopic(jdn, offset int) (year, month, day int) {
	r := mod(jdn-offset, 1461)
	n := mod(r, 365) + 365*quotient(r, 1460)
	year = 4*quotient(jdn-offset, 1461) +
		quotient(r, 365) -
		quotient(r, 1460)
	month = quotient(n, 30) + 1
	day = mod(n, 30) + 1
	return
}

// ToEthiopic returns the Ethiopian date for the given JDN with the era
// determined by GuessEpochOffset. The offset of the era used is returned
// along with the date.
func ToEthiopic(jdn int) (year, month, day, offset int) {
	offset = GuessEpochOffset(jdn)
	year, month, day = toEthiopic(jdn, offset)
	return
}

// ToEthiopicInEra returns the Ethiopian date for the given JDN in the era
// identified by offset. It returns ErrInvalidEra if offset is not a
// supported epoch offset.
func ToEthiopicInEra(jdn, offset int) (year, month, day int, err error) {
	if !ValidEpochOffset(offset) {
		return 0, 0, 0, fmt.Errorf("%w: unknown epoch offset %d", ErrInvalidEra, offset)
	}
	year, month, day = toEthiopic(jdn, offset)
	return
}

// FromGregorian returns the JDN for the given proleptic Gregorian date.
func FromGregorian(year, month, day int) int {
	// s is 1 for leap years, 0 otherwise.
	s := quotient(year, 4) -
		quotient(year-1, 4) -
		quotient(year, 100) +
		quotient(year-1, 100) +
		quotient(year, 400) -
		quotient(year-1, 400)

	// t is 1 for January and February, 0 otherwise.
	t := quotient(14-month, 12)

	n := 31*t*(month-1) +
		(1-t)*(59+s+30*(month-3)+quotient(3*month-7, 5)) +
		day - 1

	return GregorianEpochOffset +
		365*(year-1) +
		quotient(year-1, 4) -
		quotient(year-1, 100) +
		quotient(year-1, 400) +
		n
}

// ToGregorian returns the proleptic Gregorian date for the given JDN.
func ToGregorian(jdn int) (year, month, day int) {
	r400 := mod(jdn-GregorianEpochOffset, 146097)
	r100 := mod(r400, 36524)
	r4 := mod(r100, 1461)

	n := mod(r4, 365) + 365*quotient(r4, 1460)

	// The 146097 day, 400 year, cycle is 4 centuries of 36524 days plus
	// one leap day at the very end which is counted separately.
	last := quotient(r400, 146096)

	year = 400*quotient(jdn-GregorianEpochOffset, 146097) +
		100*quotient(r400, 36524) +
		4*quotient(r100, 1461) +
		quotient(r4, 365) -
		quotient(r4, 1460) -
		last + 1

	n += 1 - last
	if r100 == 0 && n == 0 && r400 != 0 {
		return year, 12, 31
	}
	month, day = monthAndDay(year, n)
	return
}

// FromEpochDay returns the JDN for the given number of days since
// 1970-01-01.
func FromEpochDay(epochDay int64) int {
	return int(epochDay) + UnixEpochJDN
}

// ToEpochDay returns the number of days since 1970-01-01 for the
// given JDN.
func ToEpochDay(jdn int) int64 {
	return int64(jdn - UnixEpochJDN)
}
