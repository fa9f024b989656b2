// Package abi encodes contract method calls into call data and decodes
// their return values, covering the static (fixed 32-byte slot) subset of
// the contract ABI used by the chain's built-in contracts.
package abi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vechain/thorclient-go/thor"
)

// SelectorLength is the byte length of a method selector.
const SelectorLength = 4

// Definition describes one contract method: its name, parameter types and
// return types.
type Definition struct {
	Name    string
	Inputs  []string
	Outputs []string
}

// Signature returns the canonical method signature, e.g.
// "addUser(address,address)".
func (d *Definition) Signature() string {
	return d.Name + "(" + strings.Join(d.Inputs, ",") + ")"
}

// Selector returns the 4-byte method selector: the truncated Keccak-256
// hash of the canonical signature. Pure function of the signature string.
func (d *Definition) Selector() []byte {
	return crypto.Keccak256([]byte(d.Signature()))[:SelectorLength]
}

// Contract is a read-only registry of method definitions bound to a fixed
// contract address.
type Contract struct {
	Address thor.Address
	methods map[string]*Definition
}

// jsonEntry mirrors one entry of standard contract-metadata JSON.
type jsonEntry struct {
	Type    string      `json:"type"`
	Name    string      `json:"name"`
	Inputs  []jsonParam `json:"inputs"`
	Outputs []jsonParam `json:"outputs"`
}

type jsonParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// New parses standard contract-metadata JSON into a Contract bound to the
// given address. Non-function entries (events, constructors) are skipped.
func New(address thor.Address, metadata []byte) (*Contract, error) {
	var entries []jsonEntry
	if err := json.Unmarshal(metadata, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMetadata, err)
	}
	c := &Contract{
		Address: address,
		methods: make(map[string]*Definition, len(entries)),
	}
	for _, e := range entries {
		if e.Type != "function" || e.Name == "" {
			continue
		}
		def := &Definition{Name: e.Name}
		for _, p := range e.Inputs {
			def.Inputs = append(def.Inputs, p.Type)
		}
		for _, p := range e.Outputs {
			def.Outputs = append(def.Outputs, p.Type)
		}
		c.methods[e.Name] = def
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for bundled built-in
// contract metadata.
func MustNew(address thor.Address, metadata []byte) *Contract {
	c, err := New(address, metadata)
	if err != nil {
		panic(err)
	}
	return c
}

// Method looks up a method definition by name.
func (c *Contract) Method(name string) (*Definition, error) {
	def, ok := c.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return def, nil
}
