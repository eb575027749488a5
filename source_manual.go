// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

// ManualSource is a TickSource whose counters only move when told to.
type ManualSource struct {
	coarse Ticks
	fine   Ticks
}

// NewManualSource returns a ManualSource with the counters set to the
// passed values.
func NewManualSource(coarse, fine uint64) *ManualSource {
	return &ManualSource{coarse: NewTicks(coarse), fine: NewTicks(fine)}
}

// CoarseTicks implements TickSource.
func (s *ManualSource) CoarseTicks() Ticks {
	return s.coarse
}

// FineTicks implements TickSource.
func (s *ManualSource) FineTicks() Ticks {
	return s.fine
}

// Set sets the coarse counter.
func (s *ManualSource) Set(v uint64) {
	s.coarse = NewTicks(v)
}

// SetFine sets the fine counter.
func (s *ManualSource) SetFine(v uint64) {
	s.fine = NewTicks(v)
}

// Advance moves the coarse counter n ticks forward (wrapping).
func (s *ManualSource) Advance(n uint64) {
	s.coarse = s.coarse.AddUint64(n)
}

// AdvanceFine moves the fine counter n ticks forward (wrapping).
func (s *ManualSource) AdvanceFine(n uint64) {
	s.fine = s.fine.AddUint64(n)
}
