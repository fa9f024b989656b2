package thor

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// BlockRef is the first 8 bytes of a block id, used to anchor a transaction
// to a point in the chain. The leading 4 bytes carry the block number.
type BlockRef [8]byte

// NewBlockRef derives a BlockRef from a full block id.
func NewBlockRef(blockID Bytes32) BlockRef {
	var r BlockRef
	copy(r[:], blockID[:8])
	return r
}

// ParseBlockRef decodes an 8-byte hex block reference, "0x" prefix optional.
func ParseBlockRef(s string) (BlockRef, error) {
	var r BlockRef
	b, err := decodeHex(s)
	if err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalidBlockRef, err)
	}
	if len(b) != len(r) {
		return r, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockRef, len(b), len(r))
	}
	copy(r[:], b)
	return r, nil
}

// BytesToBlockRef creates a BlockRef from an 8-byte slice.
func BytesToBlockRef(b []byte) (BlockRef, error) {
	var r BlockRef
	if len(b) != len(r) {
		return r, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockRef, len(b), len(r))
	}
	copy(r[:], b)
	return r, nil
}

// Number returns the block number encoded in the reference.
func (r BlockRef) Number() uint32 {
	return binary.BigEndian.Uint32(r[:4])
}

// Uint64 returns the reference as a big-endian integer, the form used in
// the transaction's canonical encoding.
func (r BlockRef) Uint64() uint64 {
	return binary.BigEndian.Uint64(r[:])
}

// Bytes returns a copy of the reference bytes.
func (r BlockRef) Bytes() []byte {
	b := make([]byte, len(r))
	copy(b, r[:])
	return b
}

// String returns the "0x"-prefixed hex encoding.
func (r BlockRef) String() string {
	return "0x" + hex.EncodeToString(r[:])
}
