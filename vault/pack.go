// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/storage"
	"github.com/tokenvault/vaultd/util"
)

// prefix distinguishing nonce records inside the vault state pool
var noncePrefix = []byte{0x4e} // 'N'

// PackRequest - canonical byte form of an operation request
//
// this is the exact message an account signs when the daemon requires
// authenticated operations; field order is fixed: operation name,
// caller, receiver, owner, amount, nonce; absent accounts pack as a
// zero length
func PackRequest(operation string, caller *account.Account, receiver *account.Account, owner *account.Account, amount uint64, nonce uint64) []byte {

	message := util.ToVarint64(uint64(len(operation)))
	message = append(message, operation...)
	message = appendAccount(message, caller)
	message = appendAccount(message, receiver)
	message = appendAccount(message, owner)
	message = append(message, util.ToVarint64(amount)...)
	message = append(message, util.ToVarint64(nonce)...)
	return message
}

func appendAccount(message []byte, acc *account.Account) []byte {
	if nil == acc {
		return append(message, util.ToVarint64(0)...)
	}
	packed := acc.Bytes()
	message = append(message, util.ToVarint64(uint64(len(packed)))...)
	return append(message, packed...)
}

// VerifyRequest - check a signed operation request and burn its nonce
//
// the nonce must be strictly greater than the last one accepted for
// the caller, so a captured request can never be replayed
func VerifyRequest(operation string, caller *account.Account, receiver *account.Account, owner *account.Account, amount uint64, nonce uint64, signature account.Signature) error {

	if nonce <= LastNonce(caller) {
		return fault.InvalidNonce
	}

	message := PackRequest(operation, caller, receiver, owner, amount, nonce)
	err := caller.CheckSignature(message, signature)
	if nil != err {
		return err
	}

	storage.Pool.VaultState.PutN(nonceKey(caller), nonce)
	return nil
}

// LastNonce - the highest nonce accepted for an account so far
func LastNonce(acc *account.Account) uint64 {
	n, _ := storage.Pool.VaultState.GetN(nonceKey(acc))
	return n
}

func nonceKey(acc *account.Account) []byte {
	return append(append([]byte{}, noncePrefix...), acc.Bytes()...)
}
