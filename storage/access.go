// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/auditd/fault"
)

// Access - batched writes over a database
//
// Get and Has see the writes of the current batch, GetCommitted and
// Iterator only see committed data
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	GetCommitted([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - LevelDB batch with a cache of pending writes
type AccessData struct {
	sync.Mutex
	writer sync.Mutex
	inUse  bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - wait for exclusive use of the batch
func (d *AccessData) Begin() error {
	d.writer.Lock()

	d.Lock()
	defer d.Unlock()

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically and release it
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.NotInitialised
	}

	err := d.db.Write(d.batch, nil)
	d.release()
	return err
}

// Abort - discard the batch and release it
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return
	}
	d.release()
}

// must hold lock
func (d *AccessData) release() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	d.writer.Unlock()
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	data, found := d.cache.Get(string(key))
	if found {
		if dbDelete == data.op {
			return nil, leveldb.ErrNotFound
		}
		return data.value, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) GetCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	data, found := d.cache.Get(string(key))
	if found {
		return dbDelete != data.op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
