// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/counter"
	"github.com/bitmark-inc/auditd/mode"
	"github.com/bitmark-inc/auditd/registry"
	"github.com/bitmark-inc/auditd/rpc/audit"
	"github.com/bitmark-inc/auditd/rpc/node"
	"github.com/bitmark-inc/auditd/rpc/nonce"
	rpctreasury "github.com/bitmark-inc/auditd/rpc/treasury"
	"github.com/bitmark-inc/auditd/treasury"
)

// Services - the back ends the rpc methods call
type Services struct {
	Registry   registry.Registry
	Treasury   treasury.Treasury
	Nonces     nonce.Nonces
	Clock      registry.Clock
	PublishKey func() []byte
}

// Create - an rpc server with every auditd service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(audit.New(log, services.Registry, services.Nonces, services.Clock, mode.Is, mode.IsTesting))
	_ = server.Register(rpctreasury.New(log, services.Treasury, services.Nonces))
	_ = server.Register(node.New(log, services.Registry, start, version, rpcCount, services.PublishKey))

	return server
}
