// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"time"
)

// A TickSource provides the 2 monotonic, wrapping platform tick counters.
// Both counters are expected to wrap at TicksBits.
type TickSource interface {
	// CoarseTicks returns the elapsed ticks at millisecond-like resolution.
	CoarseTicks() Ticks
	// FineTicks returns the elapsed ticks at microsecond-like resolution.
	FineTicks() Ticks
}

// DefaultSource is the TickSource used by timers created without an
// explicit source (e.g. a zero EventTimer). It counts from package
// initialisation, with millis() / micros() tick lengths.
var DefaultSource TickSource = newDefaultSource()

func newDefaultSource() TickSource {
	s, err := NewMonoSource(DefaultTickRate)
	if err != nil {
		PANIC("failed to init the default tick source: %s\n", err)
	}
	return s
}

// ReadTicks returns the current value of the src counter selected by res.
func ReadTicks(src TickSource, res Resolution) Ticks {
	if res == Fine {
		return src.FineTicks()
	}
	return src.CoarseTicks()
}

// tickCounter converts elapsed time since a reference point into
// wrapping counter values, starting from a configurable base.
type tickCounter struct {
	TickRate
	base [2]Ticks // start value, indexed by Resolution
}

func (c *tickCounter) init(rate TickRate, coarseBase, fineBase Ticks) error {
	if err := checkTickRate(rate); err != nil {
		return err
	}
	c.TickRate = rate
	c.base[Coarse] = coarseBase
	c.base[Fine] = fineBase
	return nil
}

// counter returns the counter value after elapsed time.
func (c *tickCounter) counter(elapsed time.Duration, res Resolution) Ticks {
	t, _ := c.Ticks(elapsed, res)
	return c.base[res].Add(t)
}
