package tx

import (
	"bytes"
	"errors"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// DelegatedMask is the feature bit marking a fee-delegated transaction.
const DelegatedMask Features = 1

// Features is the reserved feature bitmap of a transaction.
type Features uint32

// IsDelegated reports whether the fee-delegation bit is set.
func (f Features) IsDelegated() bool {
	return f&DelegatedMask == DelegatedMask
}

// SetDelegated sets or clears the fee-delegation bit.
func (f *Features) SetDelegated(on bool) {
	if on {
		*f |= DelegatedMask
	} else {
		*f &= ^DelegatedMask
	}
}

// reserved is the transaction's trailing reserved field. It encodes as a
// list and must be trimmed: trailing zero-valued items are dropped, so an
// all-zero reserved field is an empty list. Untrimmed input is rejected to
// keep the encoding canonical.
type reserved struct {
	Features Features
	Unused   []rlp.RawValue
}

var emptyItem = rlp.RawValue{0x80}

// EncodeRLP implements rlp.Encoder.
func (r *reserved) EncodeRLP(w io.Writer) error {
	items := make([]rlp.RawValue, 0, len(r.Unused)+1)
	featBytes, err := rlp.EncodeToBytes(uint32(r.Features))
	if err != nil {
		return err
	}
	items = append(items, featBytes)
	items = append(items, r.Unused...)

	// Trim trailing zero-valued items.
	for len(items) > 0 {
		last := items[len(items)-1]
		if len(last) > 0 && !bytes.Equal(last, emptyItem) {
			break
		}
		items = items[:len(items)-1]
	}
	return rlp.Encode(w, items)
}

// DecodeRLP implements rlp.Decoder.
func (r *reserved) DecodeRLP(s *rlp.Stream) error {
	var items []rlp.RawValue
	if err := s.Decode(&items); err != nil {
		return err
	}
	if len(items) == 0 {
		*r = reserved{}
		return nil
	}
	last := items[len(items)-1]
	if len(last) == 0 || bytes.Equal(last, emptyItem) {
		return errors.New("tx: reserved field not trimmed")
	}
	var features uint32
	if err := rlp.DecodeBytes(items[0], &features); err != nil {
		return err
	}
	*r = reserved{
		Features: Features(features),
		Unused:   items[1:],
	}
	return nil
}
