package tx

import (
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/thorclient-go/thor"
)

// Clause is one atomic {to, value, data} action inside a transaction. A
// transaction carrying N clauses performs all N actions atomically. Clauses
// are immutable; the With methods return copies.
type Clause struct {
	body clauseBody
}

// clauseBody is the canonical wire form of a clause: to, value, data, in
// that order. A nil To encodes as an empty byte string (contract creation).
type clauseBody struct {
	To    *thor.Address `rlp:"nil"`
	Value *big.Int
	Data  []byte
}

// NewClause creates a clause to the given recipient with zero value and
// empty data. A nil recipient means contract creation.
func NewClause(to *thor.Address) *Clause {
	var toCopy *thor.Address
	if to != nil {
		cpy := *to
		toCopy = &cpy
	}
	return &Clause{clauseBody{
		To:    toCopy,
		Value: new(big.Int),
	}}
}

// WithValue returns a copy of the clause carrying the given value in the
// token's minimal unit.
func (c *Clause) WithValue(value *big.Int) *Clause {
	newClause := *c
	newClause.body.Value = new(big.Int).Set(value)
	return &newClause
}

// WithData returns a copy of the clause carrying the given call data.
func (c *Clause) WithData(data []byte) *Clause {
	newClause := *c
	newClause.body.Data = make([]byte, len(data))
	copy(newClause.body.Data, data)
	return &newClause
}

// To returns the recipient address, or nil for contract creation.
func (c *Clause) To() *thor.Address {
	if c.body.To == nil {
		return nil
	}
	cpy := *c.body.To
	return &cpy
}

// Value returns the clause value in the token's minimal unit.
func (c *Clause) Value() *big.Int {
	return new(big.Int).Set(c.body.Value)
}

// Data returns the clause call data.
func (c *Clause) Data() []byte {
	data := make([]byte, len(c.body.Data))
	copy(data, c.body.Data)
	return data
}

// EncodeRLP implements rlp.Encoder.
func (c *Clause) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &c.body)
}

// DecodeRLP implements rlp.Decoder.
func (c *Clause) DecodeRLP(s *rlp.Stream) error {
	var body clauseBody
	if err := s.Decode(&body); err != nil {
		return err
	}
	if body.Value == nil {
		body.Value = new(big.Int)
	}
	c.body = body
	return nil
}
