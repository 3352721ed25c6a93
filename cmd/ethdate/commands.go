// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/ethiopic"
	"cloudeng.io/logging/ctxlog"
)

type app struct {
	out    io.Writer
	config Config
	now    func() time.Time
}

type toGregorianFlags struct {
	Era string `subcmd:"era,,'era of the year: AA or AM. Defaults to the configured era, if any, otherwise the era is inferred from the sign of the year'"`
}

type nowFlags struct {
	Location string `subcmd:"location,,'IANA time zone, defaults to the configured location or the local time zone'"`
}

// parseInts parses args as integers, reporting all invalid values.
func parseInts(names []string, args []string) ([]int, error) {
	errs := &errors.M{}
	vals := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(errors.Annotate(names[i], fmt.Errorf("invalid integer %q", arg)))
			continue
		}
		vals[i] = v
	}
	return vals, errs.Err()
}

func (a *app) newDate(eraFlag string, year, month, day int) (ethiopic.Date, error) {
	era := a.config.era
	if len(eraFlag) > 0 {
		e, err := ethiopic.ParseEra(eraFlag)
		if err != nil {
			return ethiopic.Date{}, err
		}
		era = &e
	}
	if era == nil {
		return ethiopic.Calendar.Date(year, month, day)
	}
	if year < 0 {
		return ethiopic.Date{}, fmt.Errorf("year %d must not be negative when an era (%v) is specified", year, *era)
	}
	return ethiopic.NewDate(*era, year, month, day)
}

func (a *app) toGregorian(ctx context.Context, values any, args []string) error {
	fv := values.(*toGregorianFlags)
	v, err := parseInts([]string{"year", "month", "day"}, args)
	if err != nil {
		return err
	}
	d, err := a.newDate(fv.Era, v[0], v[1], v[2])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("to-gregorian", "ethiopian", d.String(), "gregorian", d.Gregorian().String())
	return a.write(newDateRecord(d))
}

func (a *app) fromGregorian(ctx context.Context, _ any, args []string) error {
	logger := ctxlog.Logger(ctx)
	errs := &errors.M{}
	records := make(dateRecords, 0, len(args))
	for _, arg := range args {
		var d ethiopic.Date
		g, err := ethiopic.ParseGregorian(arg)
		if err == nil {
			d, err = ethiopic.Calendar.DateFromGregorian(g)
		}
		if err != nil {
			logger.Error("from-gregorian", "date", arg, "error", err)
			errs.Append(errors.Annotate(arg, err))
			continue
		}
		logger.Debug("from-gregorian", "gregorian", g.String(), "ethiopian", d.String())
		records = append(records, newDateRecord(d))
	}
	if len(records) > 0 {
		errs.Append(a.write(records))
	}
	return errs.Err()
}

func (a *app) fromEpochDay(ctx context.Context, _ any, args []string) error {
	days, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number of days %q", args[0])
	}
	d, err := ethiopic.Calendar.DateEpochDay(days)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("from-epoch-day", "days", days, "ethiopian", d.String())
	return a.write(newDateRecord(d))
}

func (a *app) yearDay(ctx context.Context, _ any, args []string) error {
	v, err := parseInts([]string{"year", "day-of-year"}, args)
	if err != nil {
		return err
	}
	d, err := ethiopic.Calendar.DateYearDay(v[0], v[1])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("year-day", "year", v[0], "day", v[1], "ethiopian", d.String())
	return a.write(newDateRecord(d))
}

func (a *app) today(ctx context.Context, values any, _ []string) error {
	fv := values.(*nowFlags)
	loc := a.config.location()
	if len(fv.Location) > 0 {
		var err error
		if loc, err = time.LoadLocation(fv.Location); err != nil {
			return fmt.Errorf("invalid location %q: %w", fv.Location, err)
		}
	}
	d := ethiopic.Calendar.DateFromTime(a.now().In(loc))
	ctxlog.Logger(ctx).Debug("now", "location", loc.String(), "ethiopian", d.String())
	return a.write(newDateRecord(d))
}

func (a *app) year(ctx context.Context, _ any, args []string) error {
	v, err := parseInts([]string{"year"}, args)
	if err != nil {
		return err
	}
	starts, err := ethiopic.Calendar.MonthStarts(v[0])
	if err != nil {
		return err
	}
	first := starts[0]
	rec := yearRecord{
		Year:     first.Year(),
		Era:      first.Era(),
		LeapYear: first.IsLeapYear(),
		Days:     first.LengthOfYear(),
		Months:   make(dateRecords, len(starts)),
	}
	for i, d := range starts {
		rec.Months[i] = newDateRecord(d)
	}
	ctxlog.Logger(ctx).Debug("year", "year", v[0], "new-year", first.Gregorian().String())
	return a.write(rec)
}

func (a *app) eras(_ context.Context, _ any, _ []string) error {
	records := eraRecords{}
	for _, era := range ethiopic.Eras() {
		first, err := ethiopic.NewDate(era, 1, 1, 1)
		if err != nil {
			return err
		}
		records = append(records, eraRecord{
			Name:         era,
			Code:         era.Value(),
			Abbreviation: era.Abbreviation(),
			EpochOffset:  era.EpochOffset(),
			FirstDay:     first.Gregorian().String(),
		})
	}
	return a.write(records)
}

func (a *app) describeConfig(_ context.Context, _ any, _ []string) error {
	desc, err := describeConfig()
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.out, desc)
	return err
}
