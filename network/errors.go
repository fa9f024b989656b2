package network

import "errors"

var (
	// ErrConnectionFailed indicates the client could not reach the node or
	// the node answered with a non-2xx status.
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrInvalidResponse indicates the node returned a malformed or
	// unexpected response body.
	ErrInvalidResponse = errors.New("network: invalid response")

	// ErrTxNotFound indicates the requested transaction does not exist on
	// the node.
	ErrTxNotFound = errors.New("network: transaction not found")

	// ErrBlockNotFound indicates the requested block revision does not
	// exist on the node.
	ErrBlockNotFound = errors.New("network: block not found")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("network: required parameter is nil")
)
