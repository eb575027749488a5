// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package evtimer

import (
	"fmt"

	"github.com/intuitivelabs/slog"
)

// Log is the package logger. Its level can be changed with
// slog.SetLevel(&evtimer.Log, level).
var Log slog.Log = slog.New(slog.LINFO, slog.LbackTraceS|slog.LlocInfoS,
	slog.LStdErr)

// DBGon is a shorthand for checking if debug logging is enabled.
func DBGon() bool {
	return Log.DBGon()
}

// DBG is a shorthand for logging a debug message.
func DBG(f string, a ...interface{}) {
	Log.LLog(slog.LDBG, 1, "DBG: "+NAME+": ", f, a...)
}

// WARNon is a shorthand for checking if logging at LWARN level is enabled.
func WARNon() bool {
	return Log.WARNon()
}

// WARN is a shorthand for logging a warning message.
func WARN(f string, a ...interface{}) {
	Log.LLog(slog.LWARN, 1, "WARNING: "+NAME+": ", f, a...)
}

// ERRon is a shorthand for checking if logging at LERR level is enabled.
func ERRon() bool {
	return Log.ERRon()
}

// ERR is a shorthand for logging an error message.
func ERR(f string, a ...interface{}) {
	Log.LLog(slog.LERR, 1, "ERROR: "+NAME+": ", f, a...)
}

// BUG logs a "should never happen" message.
func BUG(f string, a ...interface{}) {
	Log.LLog(slog.LBUG, 1, "BUG: "+NAME+": ", f, a...)
}

// PANIC logs the message and then panics with it.
func PANIC(f string, a ...interface{}) {
	Log.LLog(slog.LBUG, 1, "PANIC: "+NAME+": ", f, a...)
	panic(fmt.Sprintf(f, a...))
}
