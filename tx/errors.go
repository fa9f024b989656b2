package tx

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("tx: required parameter is nil")

	// ErrNoClauses indicates a transaction was built without any clause.
	ErrNoClauses = errors.New("tx: transaction needs at least one clause")

	// ErrInvalidNonce indicates the nonce is not exactly 8 bytes.
	ErrInvalidNonce = errors.New("tx: nonce must be 8 bytes")

	// ErrSigningFailed indicates transaction signing failed.
	ErrSigningFailed = errors.New("tx: signing failed")

	// ErrNotSigned indicates an operation requiring a signature was called
	// on an unsigned transaction.
	ErrNotSigned = errors.New("tx: transaction is not signed")

	// ErrInvalidSignature indicates the signature has the wrong length or
	// cannot be recovered.
	ErrInvalidSignature = errors.New("tx: invalid signature")

	// ErrDecode indicates raw transaction bytes cannot be decoded.
	ErrDecode = errors.New("tx: cannot decode raw transaction")

	// ErrGasOverflow indicates the intrinsic gas computation overflowed.
	ErrGasOverflow = errors.New("tx: intrinsic gas overflow")
)
