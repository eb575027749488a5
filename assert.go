// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"fmt"
)

// assertf panics with err (wrapped, so errors.Is() works on the recovered
// value) if cond is false and the assertions are compiled in
// (i.e. not built with the evtimer_noassert tag).
func assertf(cond bool, err error, f string, a ...interface{}) {
	if !assertsOn || cond {
		return
	}
	msg := fmt.Sprintf(f, a...)
	BUG("assertion failed: %s: %s\n", err, msg)
	panic(fmt.Errorf("%w: %s", err, msg))
}
