package contracts

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("contracts: required parameter is nil")

	// ErrLengthMismatch indicates parallel argument arrays differ in
	// length.
	ErrLengthMismatch = errors.New("contracts: parallel arrays must have equal length")

	// ErrEmptyBatch indicates a multi-clause operation was called with no
	// targets at all.
	ErrEmptyBatch = errors.New("contracts: no targets given")

	// ErrCallReverted indicates a read-only contract call reverted.
	ErrCallReverted = errors.New("contracts: call reverted")
)
