// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cloudeng.io/ethiopic"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

type textWriter interface {
	writeText(w io.Writer) error
}

// write writes v to the app's output in the configured format.
func (a *app) write(v textWriter) error {
	switch a.config.Format {
	case "json":
		buf, err := json.Marshal(v, jsontext.WithIndent("  "))
		if err != nil {
			return err
		}
		buf = append(buf, '\n')
		_, err = a.out.Write(buf)
		return err
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return v.writeText(a.out)
}

type dateRecord struct {
	Ethiopian string       `json:"ethiopian" yaml:"ethiopian"`
	Era       ethiopic.Era `json:"era" yaml:"era"`
	Year      int          `json:"year" yaml:"year"`
	Month     int          `json:"month" yaml:"month"`
	Day       int          `json:"day" yaml:"day"`
	DayOfYear int          `json:"day_of_year" yaml:"day_of_year"`
	LeapYear  bool         `json:"leap_year" yaml:"leap_year"`
	Gregorian string       `json:"gregorian" yaml:"gregorian"`
	Weekday   string       `json:"weekday" yaml:"weekday"`
	JDN       int          `json:"jdn" yaml:"jdn"`
	EpochDay  int64        `json:"epoch_day" yaml:"epoch_day"`
}

func newDateRecord(d ethiopic.Date) dateRecord {
	return dateRecord{
		Ethiopian: d.String(),
		Era:       d.Era(),
		Year:      d.Year(),
		Month:     d.Month(),
		Day:       d.Day(),
		DayOfYear: d.DayOfYear(),
		LeapYear:  d.IsLeapYear(),
		Gregorian: d.Gregorian().String(),
		Weekday:   d.Weekday().String(),
		JDN:       d.JDN(),
		EpochDay:  d.EpochDay(),
	}
}

func (r dateRecord) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s  %s  %s\n", r.Ethiopian, r.Gregorian, r.Weekday)
	return err
}

type dateRecords []dateRecord

func (dr dateRecords) writeText(w io.Writer) error {
	for _, r := range dr {
		if err := r.writeText(w); err != nil {
			return err
		}
	}
	return nil
}

type yearRecord struct {
	Year     int          `json:"year" yaml:"year"`
	Era      ethiopic.Era `json:"era" yaml:"era"`
	LeapYear bool         `json:"leap_year" yaml:"leap_year"`
	Days     int          `json:"days" yaml:"days"`
	Months   dateRecords  `json:"months" yaml:"months"`
}

func (r yearRecord) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %s: leap year: %v, days: %d\n", r.Year, r.Era.Abbreviation(), r.LeapYear, r.Days); err != nil {
		return err
	}
	for _, m := range r.Months {
		if _, err := fmt.Fprintf(w, "  %02d  %s  %s  %s\n", m.Month, m.Ethiopian, m.Gregorian, m.Weekday); err != nil {
			return err
		}
	}
	return nil
}

type eraRecord struct {
	Name         ethiopic.Era `json:"name" yaml:"name"`
	Code         int          `json:"code" yaml:"code"`
	Abbreviation string       `json:"abbreviation" yaml:"abbreviation"`
	EpochOffset  int          `json:"epoch_offset" yaml:"epoch_offset"`
	FirstDay     string       `json:"first_day" yaml:"first_day"`
}

type eraRecords []eraRecord

func (er eraRecords) writeText(w io.Writer) error {
	for _, r := range er {
		if _, err := fmt.Fprintf(w, "%d  %s  %-11s  epoch offset: %d, 1-01-01 is %s\n", r.Code, r.Abbreviation, r.Name, r.EpochOffset, r.FirstDay); err != nil {
			return err
		}
	}
	return nil
}
