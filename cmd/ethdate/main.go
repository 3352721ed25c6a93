// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command ethdate converts dates between the Ethiopian and Gregorian
// calendars.
package main

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: ethdate
summary: convert dates between the Ethiopian and Gregorian calendars. Negative years, which denote the Amete Alem era, must follow a -- argument.
commands:
  - name: to-gregorian
    summary: convert an Ethiopian date to the Gregorian calendar.
    arguments:
      - <year>
      - <month>
      - <day>
  - name: from-gregorian
    summary: convert one or more Gregorian dates, in YYYY-MM-DD format, to the Ethiopian calendar.
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: from-epoch-day
    summary: convert a number of days since 1970-01-01 to the Ethiopian calendar.
    arguments:
      - <days>
  - name: year-day
    summary: display the Ethiopian date for a day of the year, days that are multiples of 30 are rejected.
    arguments:
      - <year>
      - <day-of-year>
  - name: now
    summary: display the current Ethiopian date.
  - name: year
    summary: display the leap year status, length and the first day of each month of an Ethiopian year.
    arguments:
      - <year>
  - name: eras
    summary: list the supported eras.
  - name: config
    summary: describe the configuration file format.
`

// GlobalFlags are available to all commands. Flags that are not
// set explicitly defer to the configuration file.
type GlobalFlags struct {
	Config    string `subcmd:"config,,'yaml configuration file'"`
	Format    string `subcmd:"format,,'output format: text, json or yaml'"`
	LogLevel  int    `subcmd:"log-level,-1,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	LogFile   string `subcmd:"log-file,,'log file path. If not specified logs are written to stderr'"`
	LogFormat string `subcmd:"log-format,,'log format: text or json'"`
}

type noFlags struct{}

var (
	cmdSet      = subcmd.MustFromYAML(cmdSpec)
	globalFlags GlobalFlags
	cli         = &app{out: os.Stdout, now: time.Now}
)

func init() {
	cmdSet.Set("to-gregorian").MustRunnerAndFlags(cli.toGregorian,
		subcmd.MustRegisteredFlagSet(&toGregorianFlags{}))
	cmdSet.Set("from-gregorian").MustRunnerAndFlags(cli.fromGregorian,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("from-epoch-day").MustRunnerAndFlags(cli.fromEpochDay,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("year-day").MustRunnerAndFlags(cli.yearDay,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("now").MustRunnerAndFlags(cli.today,
		subcmd.MustRegisteredFlagSet(&nowFlags{}))
	cmdSet.Set("year").MustRunnerAndFlags(cli.year,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("eras").MustRunnerAndFlags(cli.eras,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("config").MustRunnerAndFlags(cli.describeConfig,
		subcmd.MustRegisteredFlagSet(&noFlags{}))

	gfs := subcmd.GlobalFlagSet().MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(gfs)
	cmdSet.WithMain(mainWrapper)
}

func mainWrapper(ctx context.Context, cmdRunner func(ctx context.Context) error) error {
	cfg, err := loadConfig(ctx, globalFlags.Config)
	if err != nil {
		return err
	}
	cfg.applyFlags(globalFlags)
	if err := cfg.validate(); err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.LogBuildInfo()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("ethdate", "config", globalFlags.Config, "format", cfg.Format)
	cli.config = cfg
	return cmdRunner(ctx)
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
