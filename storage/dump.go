// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
)

// Dump - run a function on every element of every pool in declaration order
func Dump(f func(pool string, prefix byte, key []byte, value []byte) error) error {
	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		name := poolType.Field(i).Name
		p, ok := poolValue.Field(i).Interface().(*PoolHandle)
		if !ok || nil == p {
			continue
		}
		err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
			return f(name, p.prefix, key, value)
		})
		if nil != err {
			return err
		}
	}
	return nil
}
