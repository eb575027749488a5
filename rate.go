// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"strings"
	"time"
)

// Resolution selects which of the 2 platform tick counters is used.
type Resolution uint8

const (
	Coarse Resolution = iota // millisecond-like ticks (millis())
	Fine                     // microsecond-like ticks (micros())
)

// default tick lengths, matching millis() and micros()
const (
	DefaultCoarseTick = time.Millisecond
	DefaultFineTick   = time.Microsecond
)

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case Coarse:
		return "coarse"
	case Fine:
		return "fine"
	}
	return "invalid"
}

// Valid returns true if r is a known resolution.
func (r Resolution) Valid() bool {
	return r == Coarse || r == Fine
}

// ParseResolution converts a resolution name ("coarse", "fine" or the
// aliases "ms", "us") into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coarse", "ms", "millis":
		return Coarse, nil
	case "fine", "us", "micros":
		return Fine, nil
	}
	return Coarse, ErrInvalidResolution
}

// TickRate holds the tick length for each resolution and converts
// between time.Duration and Ticks.
type TickRate struct {
	Coarse time.Duration
	Fine   time.Duration
}

// DefaultTickRate is the millis() / micros() tick rate.
var DefaultTickRate = TickRate{Coarse: DefaultCoarseTick, Fine: DefaultFineTick}

// checkTickRate validates the tick lengths.
func checkTickRate(r TickRate) error {
	if r.Coarse < time.Microsecond || r.Fine < time.Microsecond {
		return ErrTickTooSmall
	} else if r.Coarse > (time.Hour*24) || r.Fine > (time.Hour*24) {
		// probably an error
		return ErrTickTooHigh
	}
	if r.Fine > r.Coarse {
		return ErrInvalidParameters
	}
	return nil
}

// Tick returns the length of one tick for the given resolution.
func (r TickRate) Tick(res Resolution) time.Duration {
	if res == Fine {
		return r.Fine
	}
	return r.Coarse
}

// Ticks returns the duration d converted to Ticks (round-down) and
// the rest (if the passed duration is not an integer number of ticks).
func (r TickRate) Ticks(d time.Duration, res Resolution) (Ticks, time.Duration) {
	td := r.Tick(res)
	if td != 0 {
		t := d / td
		return NewTicks(uint64(t)), d % td
	}
	return NewTicks(0), d
}

// Duration converts a tick number to a time.Duration
// (according to the tick length for res).
func (r TickRate) Duration(t Ticks, res Resolution) time.Duration {
	return time.Duration(t.Val()) * r.Tick(res)
}

// TicksRoundUp converts a duration into ticks number rounding-up
// if the duration is less then 1 tick or if duration >= 0.5 ticks.
func (r TickRate) TicksRoundUp(d time.Duration, res Resolution) Ticks {
	dticks, rest := r.Ticks(d, res)
	td := r.Tick(res)
	if dticks.Val() == 0 || rest >= 50*td/100 {
		// round-up if smaller then 1 tick or if value between ticks
		return dticks.AddUint64(1)
	}
	return dticks
}
