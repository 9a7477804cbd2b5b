// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/tokenvault/vaultd/fault"
)

// Transaction - batch of writes applied atomically
//
// writes are staged in a LevelDB batch and mirrored into the cache so
// that reads through the pool handles observe the staged state; Commit
// writes the whole batch in one call, Abort discards it
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse  bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
	staged []string // cache keys to drop on abort
}

func newTransaction(db *leveldb.DB, cache Cache) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

// TransactionalPut et al are accessed through the singleton

// Trx - the database transaction singleton
//
// only one transaction can be in progress at a time; Begin fails
// rather than blocks if one is already active
func Trx() Transaction {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.trx
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}

	t.inUse = true
	t.batch.Reset()
	t.staged = t.staged[:0]
	return nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	prefixed := p.prefixKey(key)
	t.cache.Set(dbPut, string(prefixed), value)
	t.staged = append(t.staged, string(prefixed))
	t.batch.Put(prefixed, value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	prefixed := p.prefixKey(key)
	t.cache.Set(dbDelete, string(prefixed), []byte{})
	t.staged = append(t.staged, string(prefixed))
	t.batch.Delete(prefixed)
}

func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.NotInitialised
	}

	err := t.db.Write(t.batch, nil)
	if nil != err {
		// staged cache entries no longer reflect the database
		for _, key := range t.staged {
			t.cache.Delete(key)
		}
	}

	t.batch.Reset()
	t.staged = t.staged[:0]
	t.inUse = false
	return err
}

func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, key := range t.staged {
		t.cache.Delete(key)
	}
	t.batch.Reset()
	t.staged = t.staged[:0]
	t.inUse = false
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
