// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/counter"
	"github.com/tokenvault/vaultd/mode"
	"github.com/tokenvault/vaultd/rpc/node"
	rpcvault "github.com/tokenvault/vaultd/rpc/vault"
	"github.com/tokenvault/vaultd/vault"
)

// Create - register all services with a fresh RPC server
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	engine *vault.Vault,
	readOnly bool,
	requireSignatures bool,
) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(rpcvault.New(log, mode.Is, engine, readOnly, requireSignatures))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
