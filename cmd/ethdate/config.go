// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/errors"
	"cloudeng.io/ethiopic"
)

// Config represents the optional yaml configuration file.
type Config struct {
	Format   string                `yaml:"format" cmd:"output format: text, json or yaml, defaults to text"`
	Era      string                `yaml:"era" cmd:"era used by to-gregorian when --era is not specified: AA or AM. If not set the era is inferred from the sign of the year"`
	Location string                `yaml:"location" cmd:"IANA time zone used by the now command, defaults to the local time zone"`
	Logging  cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`

	era *ethiopic.Era
	loc *time.Location
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", filename, err)
	}
	return cfg, nil
}

// applyFlags overrides the configuration with any explicitly set flags.
func (c *Config) applyFlags(fl GlobalFlags) {
	if len(fl.Format) > 0 {
		c.Format = fl.Format
	}
	if fl.LogLevel >= 0 {
		c.Logging.Level = fl.LogLevel
	}
	if len(fl.LogFile) > 0 {
		c.Logging.File = fl.LogFile
	}
	if len(fl.LogFormat) > 0 {
		c.Logging.Format = fl.LogFormat
	}
}

// validate checks all fields and reports every invalid one.
func (c *Config) validate() error {
	errs := &errors.M{}
	switch c.Format {
	case "", "text", "json", "yaml":
	default:
		errs.Append(fmt.Errorf("unsupported output format %q", c.Format))
	}
	if len(c.Era) > 0 {
		era, err := ethiopic.ParseEra(c.Era)
		if err != nil {
			errs.Append(err)
		} else {
			c.era = &era
		}
	}
	if len(c.Location) > 0 {
		loc, err := time.LoadLocation(c.Location)
		if err != nil {
			errs.Append(fmt.Errorf("invalid location %q: %w", c.Location, err))
		} else {
			c.loc = loc
		}
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs.Append(fmt.Errorf("unsupported log format %q", c.Logging.Format))
	}
	return errs.Err()
}

func (c Config) location() *time.Location {
	if c.loc != nil {
		return c.loc
	}
	return time.Local
}

func describeConfig() (string, error) {
	desc, err := structdoc.Describe(Config{}, "cmd", "ethdate configuration file fields:\n")
	if err != nil {
		return "", err
	}
	return desc.String(), nil
}
