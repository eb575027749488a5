// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"errors"
)

var ErrTickTooSmall = errors.New("tick duration too small")
var ErrTickTooHigh = errors.New("tick duration too high")
var ErrInvalidParameters = errors.New("invalid parameters")
var ErrInvalidResolution = errors.New("invalid resolution")
var ErrResolutionMismatch = errors.New("timers with different tick resolution")
var ErrSourceMismatch = errors.New("timers with different tick sources")
var ErrNilSource = errors.New("nil tick source")
