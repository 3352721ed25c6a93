// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/ethiopic"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newApp(t *testing.T, format string) (*app, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a := &app{
		out:    out,
		config: Config{Format: format},
		now:    time.Now,
	}
	require.NoError(t, a.config.validate())
	return a, out
}

func TestToGregorian(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "text")

	err := a.toGregorian(ctx, &toGregorianFlags{}, []string{"2017", "1", "1"})
	require.NoError(t, err)
	require.Equal(t, "2017-01-01 AM  2024-09-11  Wednesday\n", out.String())

	out.Reset()
	err = a.toGregorian(ctx, &toGregorianFlags{Era: "AA"}, []string{"7517", "1", "1"})
	require.NoError(t, err)
	require.Equal(t, "7517-01-01 AA  2024-09-11  Wednesday\n", out.String())

	out.Reset()
	err = a.toGregorian(ctx, &toGregorianFlags{}, []string{"-7517", "1", "1"})
	require.NoError(t, err)
	require.Equal(t, "7517-01-01 AA  2024-09-11  Wednesday\n", out.String())

	err = a.toGregorian(ctx, &toGregorianFlags{Era: "AM"}, []string{"-7517", "1", "1"})
	require.ErrorContains(t, err, "must not be negative")

	err = a.toGregorian(ctx, &toGregorianFlags{Era: "BC"}, []string{"2017", "1", "1"})
	require.ErrorIs(t, err, ethiopic.ErrInvalidEra)

	err = a.toGregorian(ctx, &toGregorianFlags{}, []string{"2015", "13", "6"})
	require.NoError(t, err)
	err = a.toGregorian(ctx, &toGregorianFlags{}, []string{"2016", "13", "6"})
	require.ErrorIs(t, err, ethiopic.ErrPagumeNotLeap)

	err = a.toGregorian(ctx, &toGregorianFlags{}, []string{"2017", "x", "y"})
	require.ErrorContains(t, err, "month")
	require.ErrorContains(t, err, "day")
}

func TestConfiguredEra(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	a := &app{out: out, config: Config{Era: "AmeteAlem"}}
	require.NoError(t, a.config.validate())

	err := a.toGregorian(ctx, &toGregorianFlags{}, []string{"5500", "13", "5"})
	require.NoError(t, err)
	require.Equal(t, "5500-13-05 AA  0008-08-26  Tuesday\n", out.String())

	out.Reset()
	err = a.toGregorian(ctx, &toGregorianFlags{Era: "1"}, []string{"1", "1", "1"})
	require.NoError(t, err)
	require.Equal(t, "0001-01-01 AM  0008-08-27  Wednesday\n", out.String())
}

func TestFromGregorian(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "json")

	err := a.fromGregorian(ctx, nil, []string{"2024-09-11", "2023-02-29", "1862-10-29"})
	require.ErrorContains(t, err, "2023-02-29")

	var records []dateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	require.Equal(t, "2017-01-01 AM", records[0].Ethiopian)
	require.Equal(t, ethiopic.AmeteMihret, records[0].Era)
	require.Equal(t, 2460565, records[0].JDN)
	require.Equal(t, "1855-02-20 AM", records[1].Ethiopian)
	require.Equal(t, "Wednesday", records[1].Weekday)

	out.Reset()
	err = a.fromGregorian(ctx, nil, []string{"not-a-date"})
	require.Error(t, err)
	require.Zero(t, out.Len())

	logs := &bytes.Buffer{}
	ctx = ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(logs, nil)))
	out.Reset()
	err = a.fromGregorian(ctx, nil, []string{"2023-02-29", "2024-09-11", "2024-13-01"})
	require.ErrorContains(t, err, "2023-02-29")
	require.ErrorContains(t, err, "2024-13-01")
	var converted []dateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &converted))
	require.Len(t, converted, 1)
	require.Equal(t, 2, strings.Count(logs.String(), "level=ERROR"))
	require.Contains(t, logs.String(), "date=2023-02-29")
	require.Contains(t, logs.String(), "date=2024-13-01")
}

func TestFromEpochDay(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "")
	require.NoError(t, a.fromEpochDay(ctx, nil, []string{"0"}))
	require.Equal(t, "1962-04-23 AM  1970-01-01  Thursday\n", out.String())

	require.Error(t, a.fromEpochDay(ctx, nil, []string{"1.5"}))

	out.Reset()
	err := a.fromEpochDay(ctx, nil, []string{"200000000000000"})
	require.ErrorIs(t, err, ethiopic.ErrEpochDayOutOfRange)
	require.Zero(t, out.Len())
}

func TestYearDay(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "text")
	require.NoError(t, a.yearDay(ctx, nil, []string{"2015", "366"}))
	require.Equal(t, "2015-13-06 AM  2023-09-11  Monday\n", out.String())

	err := a.yearDay(ctx, nil, []string{"2007", "30"})
	require.ErrorIs(t, err, ethiopic.ErrDayOutOfRange)
}

func TestNow(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "text")
	a.now = func() time.Time {
		return time.Date(2024, 9, 11, 22, 0, 0, 0, time.UTC)
	}
	require.NoError(t, a.today(ctx, &nowFlags{Location: "UTC"}, nil))
	require.Equal(t, "2017-01-01 AM  2024-09-11  Wednesday\n", out.String())

	// Addis Ababa is 3 hours ahead of UTC.
	out.Reset()
	require.NoError(t, a.today(ctx, &nowFlags{Location: "Africa/Addis_Ababa"}, nil))
	require.Equal(t, "2017-01-02 AM  2024-09-12  Thursday\n", out.String())

	require.Error(t, a.today(ctx, &nowFlags{Location: "Nowhere/Special"}, nil))
}

func TestYear(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "yaml")
	require.NoError(t, a.year(ctx, nil, []string{"2015"}))

	var rec struct {
		Year     int    `yaml:"year"`
		Era      string `yaml:"era"`
		LeapYear bool   `yaml:"leap_year"`
		Days     int    `yaml:"days"`
		Months   []struct {
			Ethiopian string `yaml:"ethiopian"`
			Gregorian string `yaml:"gregorian"`
		} `yaml:"months"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, 2015, rec.Year)
	require.Equal(t, "AmeteMihret", rec.Era)
	require.True(t, rec.LeapYear)
	require.Equal(t, 366, rec.Days)
	require.Len(t, rec.Months, ethiopic.Pagume)
	require.Equal(t, "2022-09-11", rec.Months[0].Gregorian)
	require.Equal(t, "2015-13-01 AM", rec.Months[12].Ethiopian)
	require.Equal(t, "2023-09-06", rec.Months[12].Gregorian)

	a, out = newApp(t, "text")
	require.NoError(t, a.year(ctx, nil, []string{"2016"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 14)
	require.Equal(t, "2016 AM: leap year: false, days: 365", lines[0])
}

func TestEras(t *testing.T) {
	ctx := context.Background()
	a, out := newApp(t, "json")
	require.NoError(t, a.eras(ctx, nil, nil))

	var records []eraRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	require.Equal(t, ethiopic.AmeteAlem, records[0].Name)
	require.Equal(t, "AA", records[0].Abbreviation)
	require.Equal(t, -285019, records[0].EpochOffset)
	require.Equal(t, ethiopic.AmeteMihret, records[1].Name)
	require.Equal(t, 1, records[1].Code)
	require.Equal(t, "0008-08-27", records[1].FirstDay)

	a, out = newApp(t, "text")
	require.NoError(t, a.eras(ctx, nil, nil))
	require.Contains(t, out.String(), "1  AM  AmeteMihret  epoch offset: 1723856, 1-01-01 is 0008-08-27\n")
}

func TestConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	filename := filepath.Join(dir, "ethdate.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(`format: json
era: AA
location: Africa/Addis_Ababa
logging:
  level: 2
  format: text
`), 0600))

	cfg, err := loadConfig(ctx, filename)
	require.NoError(t, err)
	cfg.applyFlags(GlobalFlags{Format: "yaml", LogLevel: -1})
	require.NoError(t, cfg.validate())
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, 2, cfg.Logging.Level)
	require.NotNil(t, cfg.era)
	require.Equal(t, ethiopic.AmeteAlem, *cfg.era)
	require.Equal(t, "Africa/Addis_Ababa", cfg.location().String())

	cfg.applyFlags(GlobalFlags{LogLevel: 3, LogFormat: "json"})
	require.Equal(t, 3, cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)

	cfg, err = loadConfig(ctx, "")
	require.NoError(t, err)
	require.Equal(t, time.Local, cfg.location())

	require.NoError(t, os.WriteFile(filename, []byte("unknown: field\n"), 0600))
	_, err = loadConfig(ctx, filename)
	require.Error(t, err)

	cfg = Config{Format: "xml", Era: "BC", Location: "Nowhere/Special"}
	err = cfg.validate()
	require.ErrorContains(t, err, "xml")
	require.ErrorContains(t, err, "BC")
	require.ErrorContains(t, err, "Nowhere/Special")
	require.True(t, errors.Is(err, ethiopic.ErrInvalidEra))
}

func TestDescribeConfig(t *testing.T) {
	a, out := newApp(t, "text")
	require.NoError(t, a.describeConfig(context.Background(), nil, nil))
	for _, field := range []string{"format:", "era:", "location:", "logging:", "level:"} {
		require.Contains(t, out.String(), field)
	}
}
