package network

import (
	"context"
	"fmt"

	"github.com/vechain/thorclient-go/thor"
)

// NodeService is the transport interface to a Thor node's REST API. The
// HTTP Client implements it; MockNodeService is the test double.
type NodeService interface {
	// GetBestBlock returns the current best block.
	GetBestBlock(ctx context.Context) (*Block, error)

	// GetBlock returns the block at the given revision, or ErrBlockNotFound.
	GetBlock(ctx context.Context, revision thor.Revision) (*Block, error)

	// ChainTag returns the chain's 1-byte identifier, the last byte of the
	// genesis block id.
	ChainTag(ctx context.Context) (byte, error)

	// SendTransaction submits signed raw transaction bytes and returns the
	// node-assigned transaction id.
	SendTransaction(ctx context.Context, raw []byte) (*TransferResult, error)

	// GetTransaction returns a transaction by id, optionally including its
	// raw wire bytes. Returns ErrTxNotFound if the node does not know it.
	GetTransaction(ctx context.Context, id thor.Bytes32, includeRaw bool) (*Transaction, error)

	// GetTransactionReceipt returns the receipt of a transaction at the
	// given revision. A (nil, nil) result means the transaction is not yet
	// included in a block; callers poll until the receipt appears.
	GetTransactionReceipt(ctx context.Context, id thor.Bytes32, revision thor.Revision) (*Receipt, error)

	// CallContract executes a read-only contract call against the state at
	// the given revision. Reverts are reported inside the result, not as
	// an error.
	CallContract(ctx context.Context, contract thor.Address, call *ContractCall, revision thor.Revision) (*ContractCallResult, error)
}

// Block is the node's view of a block.
type Block struct {
	Number       uint32   `json:"number"`
	ID           string   `json:"id"`
	ParentID     string   `json:"parentID"`
	Timestamp    uint64   `json:"timestamp"`
	GasLimit     uint64   `json:"gasLimit"`
	GasUsed      uint64   `json:"gasUsed"`
	Signer       string   `json:"signer"`
	Transactions []string `json:"transactions"`
}

// BlockRef returns the 8-byte transaction anchor derived from the block id.
func (b *Block) BlockRef() (thor.BlockRef, error) {
	id, err := thor.ParseBytes32(b.ID)
	if err != nil {
		return thor.BlockRef{}, fmt.Errorf("%w: block id %q: %w", ErrInvalidResponse, b.ID, err)
	}
	return thor.NewBlockRef(id), nil
}

// Transaction is the node's view of a transaction.
type Transaction struct {
	ID           string     `json:"id"`
	ChainTag     byte       `json:"chainTag"`
	BlockRef     string     `json:"blockRef"`
	Expiration   uint32     `json:"expiration"`
	Clauses      []TxClause `json:"clauses"`
	GasPriceCoef byte       `json:"gasPriceCoef"`
	Gas          uint64     `json:"gas"`
	Origin       string     `json:"origin"`
	Nonce        string     `json:"nonce"`
	DependsOn    *string    `json:"dependsOn"`
	Size         uint32     `json:"size"`
	Meta         *TxMeta    `json:"meta"`
	Raw          string     `json:"raw,omitempty"`
}

// TxClause is one clause of a transaction as reported by the node.
type TxClause struct {
	To    *string `json:"to"`
	Value string  `json:"value"`
	Data  string  `json:"data"`
}

// TxMeta locates a transaction inside a block.
type TxMeta struct {
	BlockID        string `json:"blockID"`
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
}

// TransferResult carries the transaction id assigned by the node on
// submission.
type TransferResult struct {
	ID string `json:"id"`
}

// Receipt is the node's record of a transaction's execution outcome,
// available once the transaction is included in a block.
type Receipt struct {
	GasUsed  uint64          `json:"gasUsed"`
	GasPayer string          `json:"gasPayer"`
	Paid     string          `json:"paid"`
	Reward   string          `json:"reward"`
	Reverted bool            `json:"reverted"`
	Outputs  []ReceiptOutput `json:"outputs"`
	Meta     ReceiptMeta     `json:"meta"`
}

// ReceiptOutput is the per-clause outcome inside a receipt.
type ReceiptOutput struct {
	ContractAddress *string    `json:"contractAddress"`
	Events          []Event    `json:"events"`
	Transfers       []Transfer `json:"transfers"`
}

// Event is a contract event logged during execution.
type Event struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

// Transfer is a token movement logged during execution.
type Transfer struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// ReceiptMeta locates a receipt inside a block.
type ReceiptMeta struct {
	BlockID        string `json:"blockID"`
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
	TxID           string `json:"txID"`
	TxOrigin       string `json:"txOrigin"`
}

// ContractCall is a read-only call request: optional value and ABI-encoded
// call data, both "0x"-prefixed hex.
type ContractCall struct {
	Value string `json:"value"`
	Data  string `json:"data"`
}

// ContractCallResult is the outcome of a read-only contract call. Reverted
// reports contract-level failure; it is not a transport error.
type ContractCallResult struct {
	Data      string     `json:"data"`
	Events    []Event    `json:"events"`
	Transfers []Transfer `json:"transfers"`
	GasUsed   uint64     `json:"gasUsed"`
	Reverted  bool       `json:"reverted"`
	VMError   string     `json:"vmError"`
}
