package tx

import "math"

// Intrinsic gas parameters of the chain.
const (
	baseGas           = 5000
	clauseGas         = 16000
	clauseGasCreation = 48000 // clause with nil To creates a contract
	zeroByteGas       = 4
	nonZeroByteGas    = 68
)

// IntrinsicGas computes the minimum gas a transaction with the given
// clauses needs before any contract execution. A transaction with no
// clauses costs the base plus one clause, matching the chain's floor of
// 21000 for a single empty clause.
func IntrinsicGas(clauses ...*Clause) (uint64, error) {
	if len(clauses) == 0 {
		return baseGas + clauseGas, nil
	}
	total := uint64(baseGas)
	for _, c := range clauses {
		if c == nil {
			return 0, ErrNilParam
		}
		gas := dataGas(c.body.Data)
		if c.body.To == nil {
			gas += clauseGasCreation
		} else {
			gas += clauseGas
		}
		if total > math.MaxUint64-gas {
			return 0, ErrGasOverflow
		}
		total += gas
	}
	return total, nil
}

func dataGas(data []byte) uint64 {
	var zeros, nonZeros uint64
	for _, b := range data {
		if b == 0 {
			zeros++
		} else {
			nonZeros++
		}
	}
	return zeros*zeroByteGas + nonZeros*nonZeroByteGas
}
