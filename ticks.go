// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"strconv"
)

const (
	// TicksBits is the width of the tick counter, the size of an
	// "unsigned long" on most MCUs. It must match the Ticks storage.
	TicksBits = 32
	// MaxTicksDiff is half the counter range: two tick values are ordered
	// correctly only while they are less then MaxTicksDiff apart.
	MaxTicksDiff = 1 << (TicksBits - 1)
	TicksMask    = (MaxTicksDiff - 1) | MaxTicksDiff
)

// Ticks holds a reading of a free running counter that wraps to 0 after
// TicksMask. The same type is used for tick deltas (offsets, durations).
//
// There is no absolute origin: a value means something only relative to
// another one. Ordering is decided by the sign of the TicksBits wide
// difference, so the results are right only while the two values are
// less then MaxTicksDiff apart. Use the methods, never compare Val()s.
type Ticks struct {
	v uint32
}

// NewTicks truncates u to TicksBits.
func NewTicks(u uint64) Ticks {
	return Ticks{uint32(u)}
}

// Val returns the counter value.
func (t Ticks) Val() uint64 {
	return uint64(t.v)
}

// Diff is the signed distance from u to t: negative if t comes first.
func (t Ticks) Diff(u Ticks) int64 {
	return int64(int32(t.v - u.v))
}

func (t Ticks) EQ(u Ticks) bool {
	return t.v == u.v
}

func (t Ticks) NE(u Ticks) bool {
	return t.v != u.v
}

// LT returns true if t comes before u (see Diff).
func (t Ticks) LT(u Ticks) bool {
	return t.Diff(u) < 0
}

func (t Ticks) GT(u Ticks) bool {
	return t.Diff(u) > 0
}

func (t Ticks) GE(u Ticks) bool {
	return t.Diff(u) >= 0
}

func (t Ticks) LE(u Ticks) bool {
	return t.Diff(u) <= 0
}

// Add and Sub wrap modulo 2^TicksBits.
func (t Ticks) Add(u Ticks) Ticks {
	return Ticks{t.v + u.v}
}

func (t Ticks) Sub(u Ticks) Ticks {
	return Ticks{t.v - u.v}
}

// AddUint64 is a shortcut for t.Add(NewTicks(u)).
func (t Ticks) AddUint64(u uint64) Ticks {
	return Ticks{t.v + uint32(u)}
}

// SubUint64 is a shortcut for t.Sub(NewTicks(u)).
func (t Ticks) SubUint64(u uint64) Ticks {
	return Ticks{t.v - uint32(u)}
}

func (t Ticks) String() string {
	return strconv.FormatUint(uint64(t.v), 10)
}
