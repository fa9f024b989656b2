package abi

import "errors"

var (
	// ErrMethodNotFound indicates the requested method is absent from the
	// contract's ABI metadata.
	ErrMethodNotFound = errors.New("abi: method not found")

	// ErrBadMetadata indicates the contract ABI JSON could not be parsed.
	ErrBadMetadata = errors.New("abi: bad contract metadata")

	// ErrEncoding indicates an argument value does not match its declared
	// ABI type.
	ErrEncoding = errors.New("abi: cannot encode argument")

	// ErrDecoding indicates return data does not match the declared output
	// types.
	ErrDecoding = errors.New("abi: cannot decode return data")

	// ErrUnsupportedType indicates an ABI type outside the static subset
	// this encoder handles.
	ErrUnsupportedType = errors.New("abi: unsupported parameter type")
)
