package thor

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of a Thor account address.
const AddressLength = 20

// Address is a 20-byte Thor account address.
type Address [AddressLength]byte

// ParseAddress decodes a hex address string into an Address. The "0x" prefix
// is optional and hex digits are case-insensitive. The decoded value must be
// exactly 20 bytes.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := decodeHex(s)
	if err != nil {
		return a, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAddress, len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on error. Intended for
// package-level constants such as built-in contract addresses.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// BytesToAddress creates an Address from a 20-byte slice.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAddress, len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// Hex returns the lowercase hex encoding of the address without a prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// String returns the "0x"-prefixed lowercase hex encoding of the address.
func (a Address) String() string {
	return "0x" + a.Hex()
}

// IsZero reports whether the address is all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

// decodeHex decodes a hex string, tolerating an optional "0x"/"0X" prefix
// and an odd number of digits (a leading zero is assumed).
func decodeHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
