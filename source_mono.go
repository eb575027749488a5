// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"sync"
	"time"

	"github.com/intuitivelabs/timestamp"
)

// maximum consecutive "time going backwards" reads before re-basing
const maxBadTime = 10

// MonoSource is the production TickSource: it derives both counters from
// timestamp.Now() relative to the moment it was created.
// Reads are serialised internally, so one MonoSource (e.g. DefaultSource)
// can be shared by timers owned by different go routines.
type MonoSource struct {
	tickCounter
	mu      sync.Mutex   // protects refTS, lastTS and badTime
	refTS   timestamp.TS // counters reference point
	lastTS  timestamp.TS // last read
	badTime int

	now func() timestamp.TS
}

// NewMonoSource creates a new MonoSource with both counters starting at 0.
func NewMonoSource(rate TickRate) (*MonoSource, error) {
	return NewMonoSourceAt(rate, NewTicks(0), NewTicks(0))
}

// NewMonoSourceAt creates a new MonoSource with the counters starting
// at coarseBase and fineBase (useful for forcing an early wraparound).
func NewMonoSourceAt(rate TickRate, coarseBase, fineBase Ticks) (*MonoSource, error) {
	var s MonoSource
	if err := s.tickCounter.init(rate, coarseBase, fineBase); err != nil {
		return nil, err
	}
	s.now = timestamp.Now
	s.refTS = s.now()
	s.lastTS = s.refTS
	return &s, nil
}

// CoarseTicks implements TickSource.
func (s *MonoSource) CoarseTicks() Ticks {
	return s.counter(s.elapsed(), Coarse)
}

// FineTicks implements TickSource.
func (s *MonoSource) FineTicks() Ticks {
	return s.counter(s.elapsed(), Fine)
}

// elapsed returns the time passed since the reference point, making sure
// it never goes backwards.
func (s *MonoSource) elapsed() time.Duration {
	s.mu.Lock()
	ts := s.read()
	d := ts.Sub(s.refTS)
	s.mu.Unlock()
	return d
}

// read returns the current timestamp or the last one if time went
// backwards. Must be called with s.mu held.
func (s *MonoSource) read() timestamp.TS {
	now := s.now()
	if now.Before(s.lastTS) {
		// time going backwards!!
		s.badTime++
		if s.badTime > maxBadTime {
			// re-base, keeping the counters continuous
			if ERRon() {
				ERR("trying to recover after time going backward %d times"+
					" with %s\n",
					s.badTime, s.lastTS.Sub(now))
			}
			s.refTS = now.Add(-s.lastTS.Sub(s.refTS))
			s.lastTS = now
			s.badTime = 0
			return now
		} else if DBGon() {
			DBG("mono source: time going backward with %s (%d times)\n",
				s.lastTS.Sub(now), s.badTime)
		}
		return s.lastTS
	}
	s.badTime = 0
	s.lastTS = now
	return now
}
