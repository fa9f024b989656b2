package thor

import "errors"

var (
	// ErrInvalidAddress indicates a string is not a valid 20-byte hex address.
	ErrInvalidAddress = errors.New("thor: invalid address")

	// ErrInvalidID indicates a string is not a valid 32-byte hex identifier.
	ErrInvalidID = errors.New("thor: invalid 32-byte id")

	// ErrInvalidBlockRef indicates a block reference is not exactly 8 bytes.
	ErrInvalidBlockRef = errors.New("thor: invalid block reference")

	// ErrInvalidAmount indicates a decimal amount string cannot be parsed
	// for the token's precision.
	ErrInvalidAmount = errors.New("thor: invalid amount")

	// ErrNegativeAmount indicates an amount value is negative.
	ErrNegativeAmount = errors.New("thor: negative amount")
)
