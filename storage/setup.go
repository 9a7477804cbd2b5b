// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	AssetBalance   *PoolHandle `prefix:"A"`
	ShareAllowance *PoolHandle `prefix:"W"`
	ShareQuantity  *PoolHandle `prefix:"Q"`
	VaultState     *PoolHandle `prefix:"S"`
	TestData       *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	trx   *transaction
	cache Cache
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	log := logger.New("storage")
	log.Infof("database: %q", database)

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfExist: false,
		ReadOnly:     readOnly,
	})
	if nil != err {
		log.Criticalf("open error: %s", err)
		return err
	}
	poolData.db = db
	poolData.cache = newCache()
	poolData.trx = newTransaction(db, poolData.cache)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field, binding the tagged prefix to a handle
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			log.Criticalf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
			return fault.InvalidStructPointer
		}

		p := &PoolHandle{
			prefix: prefixTag[0],
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}

	poolData.cache.Clear()
	_ = poolData.db.Close()
	poolData.db = nil
	poolData.trx = nil
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}
