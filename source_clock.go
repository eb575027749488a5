// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"time"

	"github.com/xmidt-org/chronon"
)

// ClockSource is a TickSource driven by a chronon.Clock.
// Use chronon.SystemClock() for real time or a *chronon.FakeClock for
// fully controlled tests.
type ClockSource struct {
	tickCounter
	clock chronon.Clock
	ref   time.Time
}

// NewClockSource creates a new ClockSource on top of clock, with both
// counters starting at 0 at the clock's current time.
func NewClockSource(clock chronon.Clock, rate TickRate) (*ClockSource, error) {
	return NewClockSourceAt(clock, rate, NewTicks(0), NewTicks(0))
}

// NewClockSourceAt is like NewClockSource, but starts the counters at
// coarseBase and fineBase.
func NewClockSourceAt(clock chronon.Clock, rate TickRate,
	coarseBase, fineBase Ticks) (*ClockSource, error) {
	if clock == nil {
		return nil, ErrNilSource
	}
	var s ClockSource
	if err := s.tickCounter.init(rate, coarseBase, fineBase); err != nil {
		return nil, err
	}
	s.clock = clock
	s.ref = clock.Now()
	return &s, nil
}

// Clock returns the underlying clock.
func (s *ClockSource) Clock() chronon.Clock {
	return s.clock
}

// CoarseTicks implements TickSource.
func (s *ClockSource) CoarseTicks() Ticks {
	return s.counter(s.elapsed(), Coarse)
}

// FineTicks implements TickSource.
func (s *ClockSource) FineTicks() Ticks {
	return s.counter(s.elapsed(), Fine)
}

func (s *ClockSource) elapsed() time.Duration {
	d := s.clock.Now().Sub(s.ref)
	if d < 0 {
		if WARNon() {
			WARN("clock source: clock before reference point with %s\n", -d)
		}
		return 0
	}
	return d
}
