// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - shared helpers for the ZeroMQ event broadcast
//
// CURVE key file handling and one time start of the ZeroMQ
// authentication subsystem
package zmqutil
