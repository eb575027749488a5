// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Command evtpoll arms an event timer on the real clock and runs a
// cooperative polling loop, printing every time the timer is due.
package main

func main() {
	Execute()
}
