// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - send registration notifications to subscribers
//
// each registration is published twice on a ZeroMQ PUB socket, once
// per indexed field:
//
//   hash:<64 hex digits>    {"hash":…,"rating":…,"summary":…,"auditor":…,"timestamp":…}
//   auditor:<base58>        same JSON body
//
// a subscriber to "hash:" therefore sees every registration exactly
// once; a subscriber to "auditor:<account>" sees one auditor's work
package publish
