// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AccountNotFound              = NotFoundError("account not found")
	AlreadyInitialised           = ExistsError("already initialised")
	AuditNotFound                = NotFoundError("no audits found for this contract")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodeSeed             = InvalidError("cannot decode seed")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationOwnerBlank      = InvalidError("owner account is required")
	CryptoFailed                 = ProcessError("crypto failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DatabaseVersion              = InvalidError("incompatible database version")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleOptions          = InvalidError("incompatible options")
	InconsistentIndex            = ProcessError("index is inconsistent with ledger")
	IndexOutOfBounds             = LengthError("start index out of bounds")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidContentHash           = LengthError("content hash must be 32 bytes")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidPasswordLength        = InvalidError("invalid password length")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSeedHeader            = InvalidError("invalid seed header")
	InvalidSeedLength            = InvalidError("invalid seed length")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotAPublicKey                = InvalidError("not a public key")
	NotAPrivateKey               = InvalidError("not a private key")
	NotAvailable                 = ProcessError("service not available")
	NotInitialised               = ProcessError("not initialised")
	NotTestingAccount            = InvalidError("account network does not match chain")
	OwnerMismatch                = InvalidError("configured owner differs from stored owner")
	PasswordMismatch             = InvalidError("password mismatch")
	PacketTruncated              = LengthError("packet truncated")
	PacketTrailingData           = LengthError("packet has trailing data")
	RatingOutOfRange             = InvalidError("stars must be between 0 and 5")
	RateLimiting                 = InvalidError("rate limiting")
	StaleNonce                   = InvalidError("nonce must be greater than previous request")
	SummaryEmpty                 = InvalidError("summary cannot be empty")
	SummaryTooLong               = InvalidError("summary too long")
	Unauthorised                 = AuthorisationError("caller is not the owner")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// IsValidationError - true for errors that reject the arguments of a
// registration without touching any stored state
func IsValidationError(e error) bool {
	return e == RatingOutOfRange || e == SummaryEmpty || e == SummaryTooLong
}

// IsSummaryInvalid - true for either form of summary rejection
func IsSummaryInvalid(e error) bool {
	return e == SummaryEmpty || e == SummaryTooLong
}
