// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue system for notifications
//
// vault operations push notification messages to the bus; any
// subsystem interested in them (the zmq publisher, tests) subscribes
// for its own copy of the stream
package messagebus
