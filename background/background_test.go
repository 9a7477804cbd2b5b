// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/tokenvault/vaultd/background"
)

type worker struct {
	ticks   int
	stopped bool
}

func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	n := args.(int)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Duration(n) * time.Millisecond):
			w.ticks += 1
		}
	}
	w.stopped = true
}

// test starting and stopping a set of processes
func TestStartStop(t *testing.T) {

	w1 := &worker{}
	w2 := &worker{}

	processes := background.Processes{w1, w2}

	b := background.Start(processes, 5)

	time.Sleep(50 * time.Millisecond)
	b.Stop()

	if !w1.stopped || !w2.stopped {
		t.Fatalf("processes did not stop: %v %v", w1.stopped, w2.stopped)
	}
	if 0 == w1.ticks || 0 == w2.ticks {
		t.Errorf("processes did not run: %d %d", w1.ticks, w2.ticks)
	}
}

// test that stopping a nil handle is harmless
func TestStopNil(t *testing.T) {
	var b *background.T
	b.Stop()
}
