// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}

		if decrypted != plainText {
			t.Errorf("decrypt: expected: %s", plainText)
			t.Errorf("decrypt: actual:   %s", decrypted)
		}

		// a wrong password must never decrypt
		badKey, err := generateKey("A Bad Password", salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}
		_, err = decryptData(encrypted, badKey)
		if nil == err {
			t.Errorf("unexpected decryption success")
		}
	}
}

// two encryptions of the same text must differ, otherwise nonce
// generation is broken
func TestNoDuplication(t *testing.T) {

	plainText := "This is some text for testing 1234567890"

	_, key, err := hashPassword("1234567890")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	first, err := encryptData(plainText, key)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}

	second, err := encryptData(plainText, key)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}

	if first == second {
		t.Errorf("encryption produced duplicate result - must never happen")
	}
}

// store an identity and unlock it again
func TestIdentityRoundTrip(t *testing.T) {

	config := &Configuration{
		DefaultIdentity: "tester",
		TestNet:         true,
		Identities:      make(map[string]Identity),
	}

	seed := "3132333435363738393041424344454631323334353637383930414243444546"

	err := config.AddIdentity("tester", "unit test identity", seed, "secret-password")
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	private, err := config.Private("secret-password", "tester")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}
	if private.Seed != seed {
		t.Errorf("seed: expected: %s", seed)
		t.Errorf("seed: actual:   %s", private.Seed)
	}

	acc, err := config.Account("tester")
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	if acc.String() != private.PrivateKey.Account().String() {
		t.Errorf("account mismatch: %s != %s", acc, private.PrivateKey.Account())
	}

	_, err = config.Private("wrong-password", "tester")
	if nil == err {
		t.Errorf("unexpected unlock with wrong password")
	}
}
