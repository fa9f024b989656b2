package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/vechain/thorclient-go/abi"
	"github.com/vechain/thorclient-go/keys"
	"github.com/vechain/thorclient-go/network"
	"github.com/vechain/thorclient-go/thor"
	"github.com/vechain/thorclient-go/tx"
)

// erc20Metadata covers the token methods the SDK uses.
const erc20Metadata = `[
	{"type":"function","name":"totalSupply","constant":true,
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","constant":true,
	 "inputs":[{"name":"_owner","type":"address"}],
	 "outputs":[{"name":"balance","type":"uint256"}]},
	{"type":"function","name":"transfer","constant":false,
	 "inputs":[{"name":"_to","type":"address"},{"name":"_amount","type":"uint256"}],
	 "outputs":[{"name":"success","type":"bool"}]}
]`

// VTHO is the chain's energy token, paid as transaction fees.
var VTHO = thor.Token{Name: "VeThor", Symbol: "VTHO", Decimals: 18}

// Energy is the built-in contract managing the VTHO token.
var Energy = abi.MustNew(
	thor.MustParseAddress("0x0000000000000000000000000000456e65726779"),
	[]byte(erc20Metadata),
)

// BuildTokenTransferClause builds a clause transferring an ERC-20 token
// amount to the given address. The clause carries zero native value; the
// token movement lives in the call data.
func BuildTokenTransferClause(token *abi.Contract, to thor.Address, amount *thor.Amount) (*tx.Clause, error) {
	if amount == nil {
		return nil, fmt.Errorf("%w: amount", ErrNilParam)
	}
	return BuildCallClause(token, "transfer", to.String(), amount.Hex())
}

// ERC20Client invokes and reads an ERC-20 token contract through a node.
type ERC20Client struct {
	node     network.NodeService
	contract *abi.Contract
	token    thor.Token
}

// NewERC20Client creates a client for an arbitrary ERC-20 token contract.
func NewERC20Client(node network.NodeService, contract *abi.Contract, token thor.Token) *ERC20Client {
	return &ERC20Client{node: node, contract: contract, token: token}
}

// NewVTHOClient creates a client for the built-in energy token.
func NewVTHOClient(node network.NodeService) *ERC20Client {
	return NewERC20Client(node, Energy, VTHO)
}

// Token returns the token metadata the client is bound to.
func (e *ERC20Client) Token() thor.Token {
	return e.token
}

// Transfer moves an amount of the token to the given address in one
// single-clause transaction.
func (e *ERC20Client) Transfer(ctx context.Context, to thor.Address, amount *thor.Amount,
	opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	clause, err := BuildTokenTransferClause(e.contract, to, amount)
	if err != nil {
		return nil, err
	}
	return InvokeMethod(ctx, e.node, keyPair, opts, clause)
}

// BalanceOf returns the owner's token balance in minimal units.
func (e *ERC20Client) BalanceOf(ctx context.Context, owner thor.Address, revision thor.Revision) (*big.Int, error) {
	callReq, err := BuildCall(e.contract, "balanceOf", owner.String())
	if err != nil {
		return nil, err
	}
	result, err := e.node.CallContract(ctx, e.contract.Address, callReq, revision)
	if err != nil {
		return nil, err
	}
	out, err := decodeCallData(e.contract, "balanceOf", result)
	if err != nil {
		return nil, err
	}
	return parseBigHex(out[0])
}
