// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/ethiopic/jdn"
)

// Era represents one of the two eras of the Ethiopian calendar.
type Era int

const (
	// AmeteAlem is the Year of the World era, numeric code 0.
	AmeteAlem Era = 0
	// AmeteMihret is the Year of Mercy era, numeric code 1.
	AmeteMihret Era = 1
)

var eras = []Era{AmeteAlem, AmeteMihret}

// Eras returns the supported eras in order of their numeric codes.
func Eras() []Era {
	return []Era{AmeteAlem, AmeteMihret}
}

// EraOf returns the Era for the given numeric code, it returns
// ErrInvalidEra for any value other than 0 or 1.
func EraOf(code int) (Era, error) {
	switch code {
	case 0:
		return AmeteAlem, nil
	case 1:
		return AmeteMihret, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidEra, code)
}

// EraForYear returns the era implied by a proleptic year: AmeteMihret
// for years greater than zero and AmeteAlem otherwise.
func EraForYear(prolepticYear int) Era {
	if prolepticYear > 0 {
		return AmeteMihret
	}
	return AmeteAlem
}

// ParseEra parses an era specified as its numeric code, its abbreviation
// (AA or AM) or its name with or without spaces, hyphens or underscores.
// Case is ignored.
func ParseEra(val string) (Era, error) {
	if n, err := strconv.Atoi(val); err == nil {
		return EraOf(n)
	}
	lc := strings.ToLower(val)
	lc = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(lc)
	switch lc {
	case "aa", "ametealem":
		return AmeteAlem, nil
	case "am", "ametemihret":
		return AmeteMihret, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEra, val)
}

// IsValid returns true if e is one of AmeteAlem or AmeteMihret.
func (e Era) IsValid() bool {
	return e == AmeteAlem || e == AmeteMihret
}

// Value returns the numeric code for the era.
func (e Era) Value() int {
	return int(e)
}

// EpochOffset returns the Julian Day Number epoch offset for the era.
// It returns 0 for invalid eras.
func (e Era) EpochOffset() int {
	switch e {
	case AmeteAlem:
		return jdn.AmeteAlemEpochOffset
	case AmeteMihret:
		return jdn.AmeteMihretEpochOffset
	}
	return 0
}

// Abbreviation returns AA or AM.
func (e Era) Abbreviation() string {
	switch e {
	case AmeteAlem:
		return "AA"
	case AmeteMihret:
		return "AM"
	}
	return "era(" + strconv.Itoa(int(e)) + ")"
}

func (e Era) String() string {
	switch e {
	case AmeteAlem:
		return "AmeteAlem"
	case AmeteMihret:
		return "AmeteMihret"
	}
	return "era(" + strconv.Itoa(int(e)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (e Era) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedEra, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Era) UnmarshalText(text []byte) error {
	era, err := ParseEra(string(text))
	if err != nil {
		return err
	}
	*e = era
	return nil
}

func eraForOffset(offset int) Era {
	for _, e := range eras {
		if e.EpochOffset() == offset {
			return e
		}
	}
	panic(fmt.Sprintf("unsupported epoch offset: %v", offset))
}
