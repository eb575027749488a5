// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/intuitivelabs/slog"
	"github.com/spf13/cobra"

	"github.com/intuitivelabs/evtimer"
)

var logLevels = map[string]slog.LogLevel{
	"debug": slog.LDBG,
	"info":  slog.LINFO,
	"warn":  slog.LWARN,
	"error": slog.LERR,
}

// pollConfig holds the command line options.
type pollConfig struct {
	offset     time.Duration
	resolution string
	repeat     bool
	rearm      bool
	count      int
	interval   time.Duration
	extend     time.Duration
	shrink     time.Duration
	timeout    time.Duration
	base       uint64
	logLevel   string
}

var cfg pollConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "evtpoll",
	Short: "Poll an event timer on the system clock.",
	Long: `evtpoll arms an event timer and polls it from a single loop, ` +
		`printing each time it is due. It can start the tick counters close ` +
		`to their wraparound point (--base) to watch timers survive it.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return poll(cmd.OutOrStdout(), &cfg)
	},
}

func init() {
	f := rootCmd.Flags()
	f.DurationVar(&cfg.offset, "offset", 500*time.Millisecond,
		"time until the first deadline")
	f.StringVar(&cfg.resolution, "resolution", "coarse",
		"tick resolution: coarse or fine")
	f.BoolVar(&cfg.repeat, "repeat", false,
		"repeating timer (due on every poll after the deadline)")
	f.BoolVar(&cfg.rearm, "rearm", false,
		"re-arm a one-shot timer with --offset after each fire")
	f.IntVar(&cfg.count, "count", 1, "number of fires before exiting")
	f.DurationVar(&cfg.interval, "interval", time.Millisecond,
		"sleep between polls")
	f.DurationVar(&cfg.extend, "extend", 0,
		"extend the timer by this much right after arming")
	f.DurationVar(&cfg.shrink, "shrink", 0,
		"shrink the timer by this much right after arming")
	f.DurationVar(&cfg.timeout, "timeout", 10*time.Second,
		"give up after this long")
	f.Uint64Var(&cfg.base, "base", 0,
		"initial value for both tick counters")
	f.StringVar(&cfg.logLevel, "log-level", "info",
		"log level: debug, info, warn or error")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func poll(out io.Writer, c *pollConfig) error {
	lev, ok := logLevels[strings.ToLower(c.logLevel)]
	if !ok {
		return fmt.Errorf("invalid --log-level %q", c.logLevel)
	}
	slog.SetLevel(&evtimer.Log, lev)

	res, err := evtimer.ParseResolution(c.resolution)
	if err != nil {
		return fmt.Errorf("--resolution %q: %w", c.resolution, err)
	}
	if c.count < 1 {
		return fmt.Errorf("invalid --count %d", c.count)
	}
	if c.count > 1 && !c.repeat && !c.rearm {
		return fmt.Errorf("--count %d needs --repeat or --rearm"+
			" (a one-shot timer fires only once)", c.count)
	}
	base := evtimer.NewTicks(c.base)
	src, err := evtimer.NewMonoSourceAt(evtimer.DefaultTickRate, base, base)
	if err != nil {
		return fmt.Errorf("tick source: %w", err)
	}

	offset := src.TicksRoundUp(c.offset, res)
	tm := evtimer.New(src, res, offset)
	if c.repeat {
		tm.SetRepeating()
	}
	if c.extend > 0 {
		tm.ExtendBy(src.TicksRoundUp(c.extend, res))
	}
	if c.shrink > 0 {
		tm.ShrinkBy(src.TicksRoundUp(c.shrink, res))
	}
	deadline := evtimer.New(src, evtimer.Coarse,
		src.TicksRoundUp(c.timeout, evtimer.Coarse))

	fmt.Fprintf(out, "armed %s now %s remaining %s\n",
		&tm, evtimer.ReadTicks(src, res), tm.TimeRemaining())

	var polls uint64
	for fires := 0; fires < c.count; {
		polls++
		if tm.IsDue() {
			fires++
			fmt.Fprintf(out, "fire %d: now %s target %s overdue %s polls %d\n",
				fires, evtimer.ReadTicks(src, res), tm.Target(),
				tm.Overdue(), polls)
			if c.rearm && !tm.Repeating() {
				tm.Set(offset)
			}
			continue
		}
		if deadline.IsDue() {
			return fmt.Errorf("timeout after %s (%d polls, %d fires, timer %s)",
				c.timeout, polls, fires, &tm)
		}
		time.Sleep(c.interval)
	}
	return nil
}
