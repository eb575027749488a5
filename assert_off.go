// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

//go:build evtimer_noassert
// +build evtimer_noassert

package evtimer

const assertsOn = false

func init() {
	BuildTags = append(BuildTags, "evtimer_noassert")
}
