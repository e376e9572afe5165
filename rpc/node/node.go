// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/counter"
	"github.com/bitmark-inc/auditd/mode"
	"github.com/bitmark-inc/auditd/registry"
	"github.com/bitmark-inc/auditd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Registry   registry.Registry
	PublishKey func() []byte
	counter    *counter.Counter
}

// New - create the node rpc service
func New(log *logger.L, reg registry.Registry, start time.Time, version string, counter *counter.Counter, publishKey func() []byte) *Node {
	return &Node{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:      start,
		Version:    version,
		Registry:   reg,
		PublishKey: publishKey,
		counter:    counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain          string `json:"chain"`
	Mode           string `json:"mode"`
	RPCs           uint64 `json:"rpcs"`
	TotalContracts uint64 `json:"totalContracts,string"`
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
	PublishKey     string `json:"publishKey"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.TotalContracts = node.Registry.TotalContracts()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.PublishKey {
		reply.PublishKey = hex.EncodeToString(node.PublishKey())
	}
	return nil
}
