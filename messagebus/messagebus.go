// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	subscriberQueueSize = 1000
)

// Message - data to put into a queue
type Message struct {
	Command    string   // type of the message
	Parameters [][]byte // message data
}

// Broadcaster - fan-out queue, each subscriber receives every message
type Broadcaster struct {
	sync.RWMutex
	subscribers []chan Message
}

// busses
type busses struct {
	Events *Broadcaster // vault operation notifications
}

// Bus - all available message queues
var Bus busses

func init() {
	Bus.Events = &Broadcaster{}
}

// Send - broadcast a message to all subscribers
//
// a subscriber that cannot keep up has its messages silently dropped;
// notifications are observability events, not part of correctness
func (b *Broadcaster) Send(command string, parameters ...[]byte) {
	b.RLock()
	defer b.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- Message{Command: command, Parameters: parameters}:
		default:
		}
	}
}

// Chan - register a new subscriber and return its channel
func (b *Broadcaster) Chan() <-chan Message {
	ch := make(chan Message, subscriberQueueSize)

	b.Lock()
	b.subscribers = append(b.subscribers, ch)
	b.Unlock()

	return ch
}

// Release - drop all subscribers
//
// used on shutdown and to reset state in between tests
func (b *Broadcaster) Release() {
	b.Lock()
	defer b.Unlock()

	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}
