// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvault/vaultd/fixtures"
	"github.com/tokenvault/vaultd/storage"
)

// common test setup: a throwaway database and logging directory
func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage()

	rc := m.Run()

	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// test plain pool reads and writes
func TestPool(t *testing.T) {

	p := storage.Pool.TestData

	key := []byte("alpha")
	p.Put(key, []byte("one"))

	assert.Equal(t, []byte("one"), p.Get(key), "wrong value")
	assert.True(t, p.Has(key), "missing key")
	assert.Nil(t, p.Get([]byte("beta")), "phantom value")

	p.Delete(key)
	assert.False(t, p.Has(key), "key not deleted")
}

// test big endian uint64 records
func TestPoolN(t *testing.T) {

	p := storage.Pool.TestData

	key := []byte("n-record")

	_, found := p.GetN(key)
	assert.False(t, found, "phantom record")

	p.PutN(key, 0x1234_5678_9abc_def0)

	n, found := p.GetN(key)
	assert.True(t, found, "record not stored")
	assert.Equal(t, uint64(0x1234_5678_9abc_def0), n, "wrong value")
}

// test that pools with different prefixes do not alias
func TestPoolIsolation(t *testing.T) {

	key := []byte("shared-key")

	storage.Pool.ShareQuantity.PutN(key, 100)
	storage.Pool.ShareAllowance.PutN(key, 200)

	n, _ := storage.Pool.ShareQuantity.GetN(key)
	assert.Equal(t, uint64(100), n, "share quantity aliased")

	n, _ = storage.Pool.ShareAllowance.GetN(key)
	assert.Equal(t, uint64(200), n, "share allowance aliased")
}

// test transaction commit makes all writes visible together
func TestTransactionCommit(t *testing.T) {

	trx := storage.Trx()
	assert.Nil(t, trx.Begin(), "begin failed")

	trx.PutN(storage.Pool.TestData, []byte("t-one"), 1)
	trx.PutN(storage.Pool.TestData, []byte("t-two"), 2)

	// staged writes are already visible through the handles
	n, found := storage.Pool.TestData.GetN([]byte("t-one"))
	assert.True(t, found, "staged write not visible")
	assert.Equal(t, uint64(1), n, "wrong staged value")

	assert.Nil(t, trx.Commit(), "commit failed")

	n, found = storage.Pool.TestData.GetN([]byte("t-two"))
	assert.True(t, found, "committed write lost")
	assert.Equal(t, uint64(2), n, "wrong committed value")
}

// test transaction abort discards staged writes
func TestTransactionAbort(t *testing.T) {

	storage.Pool.TestData.PutN([]byte("t-keep"), 7)

	trx := storage.Trx()
	assert.Nil(t, trx.Begin(), "begin failed")

	trx.PutN(storage.Pool.TestData, []byte("t-keep"), 8)
	trx.PutN(storage.Pool.TestData, []byte("t-gone"), 9)
	trx.Abort()

	n, found := storage.Pool.TestData.GetN([]byte("t-keep"))
	assert.True(t, found, "record lost on abort")
	assert.Equal(t, uint64(7), n, "aborted write leaked")

	_, found = storage.Pool.TestData.GetN([]byte("t-gone"))
	assert.False(t, found, "aborted write leaked")
}

// test only one transaction can be active
func TestTransactionExclusion(t *testing.T) {

	trx := storage.Trx()
	assert.Nil(t, trx.Begin(), "begin failed")
	assert.NotNil(t, trx.Begin(), "nested begin allowed")
	trx.Abort()

	assert.Nil(t, trx.Begin(), "begin after abort failed")
	trx.Abort()
}
