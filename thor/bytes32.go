package thor

import (
	"encoding/hex"
	"fmt"
)

// Bytes32 is a 32-byte identifier such as a transaction or block id.
type Bytes32 [32]byte

// ParseBytes32 decodes a hex string into a Bytes32. The "0x" prefix is
// optional; the decoded value must be exactly 32 bytes.
func ParseBytes32(s string) (Bytes32, error) {
	var id Bytes32
	b, err := decodeHex(s)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidID, len(b), len(id))
	}
	copy(id[:], b)
	return id, nil
}

// BytesToBytes32 creates a Bytes32 from a 32-byte slice.
func BytesToBytes32(b []byte) (Bytes32, error) {
	var id Bytes32
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidID, len(b), len(id))
	}
	copy(id[:], b)
	return id, nil
}

// Bytes returns a copy of the identifier bytes.
func (id Bytes32) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// String returns the "0x"-prefixed lowercase hex encoding.
func (id Bytes32) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// IsZero reports whether the identifier is all zero bytes.
func (id Bytes32) IsZero() bool {
	return id == Bytes32{}
}
