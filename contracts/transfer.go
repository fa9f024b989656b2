package contracts

import (
	"context"
	"fmt"

	"github.com/vechain/thorclient-go/keys"
	"github.com/vechain/thorclient-go/network"
	"github.com/vechain/thorclient-go/thor"
	"github.com/vechain/thorclient-go/tx"
)

// BuildVETTransferClause builds a plain native-token transfer clause: the
// amount's minimal-unit value and no call data.
func BuildVETTransferClause(to thor.Address, amount *thor.Amount) (*tx.Clause, error) {
	if amount == nil {
		return nil, fmt.Errorf("%w: amount", ErrNilParam)
	}
	return tx.NewClause(&to).WithValue(amount.Units()), nil
}

// TransferVET sends a native-token amount to the given address in one
// single-clause transaction.
func TransferVET(ctx context.Context, node network.NodeService, keyPair *keys.KeyPair,
	to thor.Address, amount *thor.Amount, opts TxOptions) (*network.TransferResult, error) {

	clause, err := BuildVETTransferClause(to, amount)
	if err != nil {
		return nil, err
	}
	return InvokeMethod(ctx, node, keyPair, opts, clause)
}
