// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/tokenvault/vaultd/fault"
)

// PrivateKey - the signing half of an account keypair
type PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// NewKeypair - generate a new account and its private key
func NewKeypair(test bool) (*Account, *PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}

	account := &Account{
		Test:      test,
		PublicKey: publicKey,
	}
	private := &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}
	return account, private, nil
}

// PrivateKeyFromSeed - recreate a keypair from a stored 32 byte seed
func PrivateKeyFromSeed(seed []byte, test bool) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// Seed - the 32 byte seed that regenerates this private key
func (private *PrivateKey) Seed() []byte {
	return ed25519.PrivateKey(private.PrivateKey).Seed()
}

// Account - the public account matching this private key
func (private *PrivateKey) Account() *Account {
	publicKey := ed25519.PrivateKey(private.PrivateKey).Public().(ed25519.PublicKey)
	return &Account{
		Test:      private.Test,
		PublicKey: publicKey,
	}
}

// Sign - sign a message
func (private *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(private.PrivateKey, message))
}
