// Package tx builds, canonically encodes, and signs Thor transactions.
//
// A transaction is assembled once by NewRawTransaction, signed once by
// Sign, and then handed to the network layer; the canonical RLP encoding
// produced here is a wire-compatibility invariant — the node rejects any
// deviation in field order or integer minimality.
package tx

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/blake2b"

	"github.com/vechain/thorclient-go/thor"
)

// NonceLength is the required byte length of a transaction nonce.
const NonceLength = 8

// Transaction is a Thor transaction. It is immutable: Sign and the With
// methods return modified copies. An unsigned transaction encodes as a
// 9-field RLP list; signing appends the signature as the tenth field.
type Transaction struct {
	body body
}

// body is the canonical field order of the wire encoding.
type body struct {
	ChainTag     uint8
	BlockRef     uint64
	Expiration   uint32
	Clauses      []*Clause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *thor.Bytes32 `rlp:"nil"`
	Nonce        uint64
	Reserved     reserved
	Signature    []byte `rlp:"optional"`
}

// NewRawTransaction assembles an unsigned transaction from its
// transaction-level fields and clauses.
//
// The nonce must be exactly 8 bytes from a collision-resistant random
// source (see GenerateNonce); clauses must be non-empty with no nil
// entries. Gas sufficiency is not checked here — see IntrinsicGas.
func NewRawTransaction(chainTag byte, blockRef thor.BlockRef, expiration uint32,
	gas uint64, gasPriceCoef byte, nonce []byte, clauses ...*Clause) (*Transaction, error) {

	if len(nonce) != NonceLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonce, len(nonce))
	}
	if len(clauses) == 0 {
		return nil, ErrNoClauses
	}
	for i, c := range clauses {
		if c == nil {
			return nil, fmt.Errorf("%w: clause %d", ErrNilParam, i)
		}
	}
	return &Transaction{body{
		ChainTag:     chainTag,
		BlockRef:     blockRef.Uint64(),
		Expiration:   expiration,
		Clauses:      append([]*Clause(nil), clauses...),
		GasPriceCoef: gasPriceCoef,
		Gas:          gas,
		Nonce:        binary.BigEndian.Uint64(nonce),
	}}, nil
}

// ChainTag returns the 1-byte chain identifier the transaction is bound to.
func (t *Transaction) ChainTag() byte { return t.body.ChainTag }

// BlockRef returns the block reference anchoring the transaction.
func (t *Transaction) BlockRef() thor.BlockRef {
	var ref thor.BlockRef
	binary.BigEndian.PutUint64(ref[:], t.body.BlockRef)
	return ref
}

// Expiration returns the number of blocks the transaction stays valid for,
// counted from the referenced block.
func (t *Transaction) Expiration() uint32 { return t.body.Expiration }

// Clauses returns a copy of the clause list.
func (t *Transaction) Clauses() []*Clause {
	return append([]*Clause(nil), t.body.Clauses...)
}

// GasPriceCoef returns the gas price coefficient.
func (t *Transaction) GasPriceCoef() byte { return t.body.GasPriceCoef }

// Gas returns the gas limit.
func (t *Transaction) Gas() uint64 { return t.body.Gas }

// DependsOn returns the id of the transaction this one depends on, or nil.
func (t *Transaction) DependsOn() *thor.Bytes32 {
	if t.body.DependsOn == nil {
		return nil
	}
	cpy := *t.body.DependsOn
	return &cpy
}

// Nonce returns the nonce as 8 big-endian bytes.
func (t *Transaction) Nonce() []byte {
	nonce := make([]byte, NonceLength)
	binary.BigEndian.PutUint64(nonce, t.body.Nonce)
	return nonce
}

// Features returns the reserved feature bitmap.
func (t *Transaction) Features() Features { return t.body.Reserved.Features }

// Signature returns a copy of the signature, or nil if unsigned.
func (t *Transaction) Signature() []byte {
	if t.body.Signature == nil {
		return nil
	}
	return append([]byte(nil), t.body.Signature...)
}

// WithDependsOn returns a copy of the transaction depending on the given
// transaction id. Passing nil clears the dependency.
func (t *Transaction) WithDependsOn(id *thor.Bytes32) *Transaction {
	newTx := *t
	if id == nil {
		newTx.body.DependsOn = nil
	} else {
		cpy := *id
		newTx.body.DependsOn = &cpy
	}
	newTx.body.Signature = nil
	return &newTx
}

// WithFeatures returns a copy of the transaction with the given reserved
// feature bitmap.
func (t *Transaction) WithFeatures(f Features) *Transaction {
	newTx := *t
	newTx.body.Reserved.Features = f
	newTx.body.Signature = nil
	return &newTx
}

// WithSignature returns a copy of the transaction carrying the given
// 65-byte recoverable signature.
func (t *Transaction) WithSignature(sig []byte) (*Transaction, error) {
	if len(sig) != signatureLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(sig), signatureLength)
	}
	newTx := *t
	newTx.body.Signature = append([]byte(nil), sig...)
	return &newTx, nil
}

// Encode returns the canonical RLP encoding of the transaction. The result
// is deterministic: encoding the same transaction twice yields identical
// bytes.
func (t *Transaction) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(t)
}

// SigningHash returns the Blake2b-256 hash of the unsigned canonical
// encoding, the digest the origin signs.
func (t *Transaction) SigningHash() (thor.Bytes32, error) {
	unsigned := t.body
	unsigned.Signature = nil
	enc, err := rlp.EncodeToBytes(&unsigned)
	if err != nil {
		return thor.Bytes32{}, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	return thor.Bytes32(blake2b.Sum256(enc)), nil
}

// ID returns the transaction id: the Blake2b-256 hash of the signed
// canonical encoding. It fails with ErrNotSigned on an unsigned
// transaction.
func (t *Transaction) ID() (thor.Bytes32, error) {
	if len(t.body.Signature) == 0 {
		return thor.Bytes32{}, ErrNotSigned
	}
	enc, err := t.Encode()
	if err != nil {
		return thor.Bytes32{}, err
	}
	return thor.Bytes32(blake2b.Sum256(enc)), nil
}

// EncodeRLP implements rlp.Encoder.
func (t *Transaction) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &t.body)
}

// DecodeRLP implements rlp.Decoder.
func (t *Transaction) DecodeRLP(s *rlp.Stream) error {
	var body body
	if err := s.Decode(&body); err != nil {
		return err
	}
	t.body = body
	return nil
}

// Decode parses canonical RLP transaction bytes, signed or unsigned.
// Decode(Encode(t)) recovers t exactly.
func Decode(data []byte) (*Transaction, error) {
	var t Transaction
	if err := rlp.DecodeBytes(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &t, nil
}
