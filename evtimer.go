// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package evtimer provides polled event timers on top of a wrapping
// monotonic tick counter. A timer stores an absolute deadline in ticks
// and answers "is it due" / "how much time is left" without blocking,
// correctly across counter wraparound (as long as the real distance
// between the deadline and the current time stays under MaxTicksDiff).
//
// There is no scheduling and a timer has no internal locking: each timer
// is owned by one control loop that polls it at its own cadence.
package evtimer

import (
	"fmt"
	"reflect"
)

const NAME = "evtimer"

var BuildTags []string

// timer flags
const (
	fArmed  = 1 // deadline pending
	fFired  = 2 // one-shot deadline already reported
	fRepeat = 4 // repeating timer, never consumed

	fStateMask = fArmed | fFired
)

// An EventTimer is a polled deadline.
//
// A one-shot timer reports "due" exactly once per arm cycle: the first
// IsDue() (or NotDue()) call that observes the deadline consumes it and
// all the following polls return "not due" until the timer is re-armed
// with Set(), ExtendBy(), ShrinkBy() or SetRepeating().
// A repeating timer is never consumed: it reports "due" on every poll
// once the deadline was reached, until re-armed.
//
// Every clock read of a timer uses the single resolution chosen when
// the timer was created.
// The zero value is an inert coarse resolution timer using DefaultSource.
// An inert timer is never due.
type EventTimer struct {
	src    TickSource
	res    Resolution
	target Ticks // absolute deadline
	flags  uint8
}

// New returns a timer armed to fire offset ticks from now.
func New(src TickSource, res Resolution, offset Ticks) EventTimer {
	t := NewInert(src, res)
	t.Set(offset)
	return t
}

// NewInert returns a not armed timer bound to src and res.
// A nil src means DefaultSource.
func NewInert(src TickSource, res Resolution) EventTimer {
	assertf(res.Valid(), ErrInvalidResolution, "resolution %d", uint8(res))
	return EventTimer{src: src, res: res}
}

// Source returns the timer tick source.
func (t *EventTimer) Source() TickSource {
	if t.src == nil {
		return DefaultSource
	}
	return t.src
}

// Resolution returns the resolution the timer was bound to.
func (t *EventTimer) Resolution() Resolution {
	return t.res
}

func (t *EventTimer) now() Ticks {
	return ReadTicks(t.Source(), t.res)
}

// arm marks the timer as pending (clearing the consumed state).
func (t *EventTimer) arm() {
	t.flags = (t.flags &^ fStateMask) | fArmed
}

// Set re-arms the timer to fire offset ticks from now.
func (t *EventTimer) Set(offset Ticks) {
	t.target = t.now().Add(offset)
	t.arm()
}

// SetFrom copies the absolute deadline and the armed / consumed state
// of o. The deadline is not re-computed relative to now.
// The repeat mode of t is kept: a repeating t copying a consumed one-shot
// becomes pending again, like after SetRepeating().
// If t has no source yet, it is bound to o's source and resolution,
// otherwise both timers must use the same source and resolution.
func (t *EventTimer) SetFrom(o *EventTimer) {
	if t.src == nil {
		t.src = o.src
		t.res = o.res
	} else {
		assertf(t.res == o.res, ErrResolutionMismatch,
			"set from a %s timer to a %s timer", o.res, t.res)
		assertf(sameSource(t.Source(), o.Source()), ErrSourceMismatch,
			"set from a %T timer to a %T timer", o.Source(), t.Source())
	}
	t.target = o.target
	t.flags = (t.flags &^ fStateMask) | (o.flags & fStateMask)
	if t.flags&(fRepeat|fFired) == fRepeat|fFired {
		t.arm()
	}
}

// sameSource returns false if a and b are known to be different sources.
func sameSource(a, b TickSource) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta == nil || !ta.Comparable() {
		return true
	}
	return a == b
}

// elapsed returns true if there is no pending deadline at now.
func (t *EventTimer) elapsed(now Ticks) bool {
	return t.flags&fArmed == 0 || t.target.Diff(now) <= 0
}

// ExtendBy adds delta ticks to the remaining time.
// If the timer is not pending any more (elapsed, consumed or inert), it
// is re-armed to fire delta ticks from now.
func (t *EventTimer) ExtendBy(delta Ticks) {
	now := t.now()
	if t.elapsed(now) {
		t.target = now.Add(delta)
	} else {
		t.target = t.target.Add(delta)
	}
	t.arm()
}

// ShrinkBy subtracts delta ticks from the remaining time.
// The deadline never moves before now: if delta is bigger then the
// remaining time or if the timer is not pending any more, the timer
// is re-armed as "due now".
func (t *EventTimer) ShrinkBy(delta Ticks) {
	now := t.now()
	if t.elapsed(now) || int64(delta.Val()) >= t.target.Diff(now) {
		t.target = now
	} else {
		t.target = t.target.Sub(delta)
	}
	t.arm()
}

// SetRepeating converts the timer into a repeating one.
// A consumed one-shot timer becomes pending again (and since its
// deadline already passed, it will be due on the next poll).
// An inert timer stays inert until Set().
func (t *EventTimer) SetRepeating() {
	t.flags |= fRepeat
	if t.flags&fFired != 0 {
		t.arm()
	}
}

// SetOneShot converts the timer back into a one-shot timer.
func (t *EventTimer) SetOneShot() {
	t.flags &^= fRepeat
}

// Disarm cancels the pending deadline, making the timer inert.
func (t *EventTimer) Disarm() {
	t.flags &^= fStateMask
}

// Target returns the absolute deadline in ticks.
func (t *EventTimer) Target() Ticks {
	return t.target
}

// Armed returns true if the timer has a pending (not consumed) deadline.
func (t *EventTimer) Armed() bool {
	return t.flags&fArmed != 0
}

// Fired returns true for a consumed one-shot timer.
func (t *EventTimer) Fired() bool {
	return t.flags&fFired != 0
}

// Inert returns true if the timer was never armed or was disarmed.
func (t *EventTimer) Inert() bool {
	return t.flags&fStateMask == 0
}

// Repeating returns true for repeating timers.
func (t *EventTimer) Repeating() bool {
	return t.flags&fRepeat != 0
}

// IsDue returns true if the deadline was reached.
// For a one-shot timer the first call returning true consumes the timer,
// the following calls return false until it is re-armed.
// Polling a consumed one-shot timer is not treated as an error (no
// assertion), it is only logged at debug level.
// A repeating timer has no side effects.
func (t *EventTimer) IsDue() bool {
	if t.flags&fArmed == 0 {
		if t.flags&fFired != 0 && DBGon() {
			DBG("poll on already fired one-shot timer %s\n", t)
		}
		return false
	}
	due := t.target.Diff(t.now()) <= 0
	if due && t.flags&fRepeat == 0 {
		t.flags = (t.flags &^ fArmed) | fFired
	}
	return due
}

// NotDue is the negation of IsDue(), with the same side effect on
// one-shot timers.
func (t *EventTimer) NotDue() bool {
	return !t.IsDue()
}

// remaining returns the signed number of ticks until the deadline
// (negative once the deadline has passed, 0 for inert timers).
func (t *EventTimer) remaining() int64 {
	if t.Inert() {
		return 0
	}
	return t.target.Diff(t.now())
}

// TimeRemaining returns the ticks left until the deadline, 0 if
// the deadline was reached.
func (t *EventTimer) TimeRemaining() Ticks {
	if r := t.remaining(); r > 0 {
		return NewTicks(uint64(r))
	}
	return NewTicks(0)
}

// Overdue returns with how many ticks the deadline was missed
// (0 if it is still in the future).
func (t *EventTimer) Overdue() Ticks {
	if r := t.remaining(); r < 0 {
		return NewTicks(uint64(-r))
	}
	return NewTicks(0)
}

// RemainingLT returns true if less then d ticks remain until the deadline.
// An overdue timer has "negative" remaining time.
// None of the Remaining* comparisons consume a one-shot timer.
func (t *EventTimer) RemainingLT(d Ticks) bool {
	return t.remaining() < int64(d.Val())
}

// RemainingGT returns true if more then d ticks remain.
func (t *EventTimer) RemainingGT(d Ticks) bool {
	return t.remaining() > int64(d.Val())
}

// RemainingLE returns true if at most d ticks remain.
func (t *EventTimer) RemainingLE(d Ticks) bool {
	return t.remaining() <= int64(d.Val())
}

// RemainingGE returns true if at least d ticks remain.
func (t *EventTimer) RemainingGE(d Ticks) bool {
	return t.remaining() >= int64(d.Val())
}

// RemainingEQ returns true if exactly d ticks remain.
func (t *EventTimer) RemainingEQ(d Ticks) bool {
	return t.remaining() == int64(d.Val())
}

// RemainingNE returns true if the remaining time is not d ticks.
func (t *EventTimer) RemainingNE(d Ticks) bool {
	return t.remaining() != int64(d.Val())
}

// Before returns true if t's deadline comes before o's.
// Both timers must use the same resolution.
func (t *EventTimer) Before(o *EventTimer) bool {
	assertf(t.res == o.res, ErrResolutionMismatch,
		"comparing a %s timer with a %s timer", t.res, o.res)
	return t.target.LT(o.target)
}

// String returns a short description, useful for debugging.
func (t *EventTimer) String() string {
	state := "inert"
	switch {
	case t.Armed():
		state = "armed"
	case t.Fired():
		state = "fired"
	}
	mode := "once"
	if t.Repeating() {
		mode = "repeat"
	}
	return fmt.Sprintf("%s:%s:%s@%s", state, mode, t.res, t.target)
}
