// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AllowanceError - a spender lacks sufficient share allowance
	AllowanceError GenericError

	// ArithmeticError - a conversion has no defined result or would overflow
	ArithmeticError GenericError

	// ExistsError - a record is already present
	ExistsError GenericError

	// InvalidError - an argument is malformed or out of range
	InvalidError GenericError

	// LimitExceededError - an operation argument exceeds its policy bound
	LimitExceededError GenericError

	// NotFoundError - a record is missing
	NotFoundError GenericError

	// ProcessError - a subsystem lifecycle or internal failure
	ProcessError GenericError

	// TransferError - the underlying asset ledger reported a failure
	TransferError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	BalanceOverflow              = ArithmeticError("balance overflow")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = InvalidError("checksum mismatch")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	CryptoFailed                 = ProcessError("crypto failed")
	DepositBelowMinimum          = LimitExceededError("deposit is below the configured minimum")
	DepositLimitExceeded         = LimitExceededError("deposit exceeds maximum deposit")
	DivisionByZero               = ArithmeticError("division by zero")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	InsufficientAllowance        = AllowanceError("share allowance is insufficient")
	InsufficientFunds            = TransferError("insufficient funds for transfer")
	InsufficientShares           = InvalidError("share balance is insufficient")
	InvalidCertificateFile       = InvalidError("invalid certificate file")
	InvalidConfigurationFile     = InvalidError("configuration script must return a table")
	InvalidDecimals              = InvalidError("invalid decimal precision")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("key length is invalid")
	InvalidNonce                 = InvalidError("operation nonce is out of sequence")
	InvalidPasswordLength        = InvalidError("invalid password length")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = ProcessError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MintLimitExceeded            = LimitExceededError("mint exceeds maximum mint")
	MissingParameters            = InvalidError("missing parameters")
	NoBackingAssets              = ArithmeticError("shares are outstanding with no backing assets")
	NotAccount                   = InvalidError("not an account")
	NotAvailableInReadOnly       = ProcessError("not available in read only mode")
	NotAvailableWhenStopped      = ProcessError("not available when stopped")
	NotInitialised               = ProcessError("not initialised")
	NotPrivateKey                = InvalidError("not a private key")
	PasswordMismatch             = InvalidError("password mismatch")
	QuotientOverflow             = ArithmeticError("quotient exceeds 64 bits")
	RateLimiting                 = ProcessError("rate limiting")
	RedeemLimitExceeded          = LimitExceededError("redeem exceeds maximum redeem")
	TransactionInUse             = ProcessError("transaction already in use")
	WithdrawLimitExceeded        = LimitExceededError("withdraw exceeds maximum withdraw")
	WrongNetworkForAccount       = InvalidError("account is for a different network")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AllowanceError) Error() string     { return string(e) }
func (e ArithmeticError) Error() string    { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LimitExceededError) Error() string { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e TransferError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAllowance(e error) bool     { _, ok := e.(AllowanceError); return ok }
func IsErrArithmetic(e error) bool    { _, ok := e.(ArithmeticError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLimitExceeded(e error) bool { _, ok := e.(LimitExceededError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrTransfer(e error) bool      { _, ok := e.(TransferError); return ok }

// WrapTransfer - force an underlying ledger failure into the transfer
// class so that callers always receive a typed reason
//
// errors already carrying a fault class pass through unchanged
func WrapTransfer(e error) error {
	switch e.(type) {
	case nil:
		return nil
	case AllowanceError, ArithmeticError, ExistsError, InvalidError,
		LimitExceededError, NotFoundError, ProcessError, TransferError:
		return e
	default:
		return TransferError(fmt.Sprintf("underlying transfer failed: %s", e))
	}
}
