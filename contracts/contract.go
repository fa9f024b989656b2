// Package contracts provides clause builders and high-level clients for
// the chain's built-in contracts: the ProtoType multi-party payment
// contract and the VTHO energy token, plus plain VET transfers.
package contracts

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vechain/thorclient-go/abi"
	"github.com/vechain/thorclient-go/network"
	"github.com/vechain/thorclient-go/tx"
)

// BuildCallClause builds one transaction clause invoking a contract
// method: the clause targets the contract's address, carries zero value
// and the ABI-encoded call data.
func BuildCallClause(contract *abi.Contract, method string, args ...string) (*tx.Clause, error) {
	if contract == nil {
		return nil, fmt.Errorf("%w: contract", ErrNilParam)
	}
	def, err := contract.Method(method)
	if err != nil {
		return nil, err
	}
	data, err := abi.EncodeCall(def, args...)
	if err != nil {
		return nil, err
	}
	to := contract.Address
	return tx.NewClause(&to).WithData(data), nil
}

// BuildCall builds a read-only call request for a contract method.
func BuildCall(contract *abi.Contract, method string, args ...string) (*network.ContractCall, error) {
	if contract == nil {
		return nil, fmt.Errorf("%w: contract", ErrNilParam)
	}
	def, err := contract.Method(method)
	if err != nil {
		return nil, err
	}
	data, err := abi.EncodeCall(def, args...)
	if err != nil {
		return nil, err
	}
	return &network.ContractCall{
		Value: "0x0",
		Data:  "0x" + hex.EncodeToString(data),
	}, nil
}

// decodeCallData decodes the hex return data of a read-only call into one
// string per declared output. A reverted call surfaces as ErrCallReverted.
func decodeCallData(contract *abi.Contract, method string, result *network.ContractCallResult) ([]string, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: call result", ErrNilParam)
	}
	if result.Reverted {
		if result.VMError != "" {
			return nil, fmt.Errorf("%w: %s", ErrCallReverted, result.VMError)
		}
		return nil, ErrCallReverted
	}
	def, err := contract.Method(method)
	if err != nil {
		return nil, err
	}
	raw := strings.TrimPrefix(result.Data, "0x")
	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: return data not hex: %w", network.ErrInvalidResponse, err)
	}
	return abi.DecodeResult(def, data)
}

// sameLength verifies that every parallel array has the given length.
func sameLength(n int, lengths ...int) error {
	if n == 0 {
		return ErrEmptyBatch
	}
	for _, l := range lengths {
		if l != n {
			return ErrLengthMismatch
		}
	}
	return nil
}
