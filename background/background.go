// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - the interface for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of background processes
type T struct {
	finished chan struct{}
	shutdown chan struct{}
}

// Start - run a set of background processes
//
// args is passed unchanged to each process Run
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finished: make(chan struct{}),
		shutdown: make(chan struct{}),
	}

	doneChannel := make(chan bool)

	for _, p := range processes {
		go func(p Process) {
			// pass the shutdown to the Run loop for shutdown signalling
			p.Run(args, register.shutdown)
			doneChannel <- true
		}(p)
	}

	// wait for all processes to end
	go func(count int) {
		for i := 0; i < count; i += 1 {
			<-doneChannel
		}
		close(register.finished)
	}(len(processes))

	return register
}

// Stop - shutdown all background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	close(t.shutdown)
	<-t.finished
}
