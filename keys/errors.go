package keys

import "errors"

var (
	// ErrInvalidPrivateKey indicates the private key material is malformed
	// or outside the curve order.
	ErrInvalidPrivateKey = errors.New("keys: invalid private key")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("keys: required parameter is nil")
)
