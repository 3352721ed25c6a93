// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"slices"
	"strings"
)

// DateList represents a list of Dates.
type DateList []Date

// Sort sorts the list in chronological order.
func (dl DateList) Sort() {
	slices.SortStableFunc(dl, Date.Compare)
}

// Contains returns true if the list contains a date that refers to the
// same day as d.
func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd.Equal(d) {
			return true
		}
	}
	return false
}

// Gregorian returns the Gregorian equivalents of the dates in the list.
func (dl DateList) Gregorian() []Gregorian {
	gl := make([]Gregorian, len(dl))
	for i, d := range dl {
		gl[i] = d.Gregorian()
	}
	return gl
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// MonthStarts returns the first day of each month of the given
// proleptic year.
func (c Chronology) MonthStarts(prolepticYear int) (DateList, error) {
	dl := make(DateList, 0, Pagume)
	for month := 1; month <= Pagume; month++ {
		d, err := c.Date(prolepticYear, month, 1)
		if err != nil {
			return nil, err
		}
		dl = append(dl, d)
	}
	return dl, nil
}
