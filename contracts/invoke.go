package contracts

import (
	"context"
	"fmt"

	"github.com/vechain/thorclient-go/keys"
	"github.com/vechain/thorclient-go/network"
	"github.com/vechain/thorclient-go/tx"
)

// DefaultExpiration is the number of blocks a transaction stays valid for
// when TxOptions does not say otherwise.
const DefaultExpiration = 720

// TxOptions carries the transaction-level parameters of a contract
// invocation.
type TxOptions struct {
	// Gas is the gas limit. See tx.IntrinsicGas for the floor.
	Gas uint64
	// GasPriceCoef tunes the gas price, 0-255.
	GasPriceCoef byte
	// Expiration is the validity window in blocks. Zero means
	// DefaultExpiration.
	Expiration uint32
	// Nonce is the 8-byte transaction nonce. Nil means a fresh random
	// nonce per invocation; supplying the same nonce again reproduces the
	// same transaction id, which is how a caller chooses between
	// idempotent resubmission and a new intent after an ambiguous network
	// failure.
	Nonce []byte
}

// InvokeMethod submits one atomic transaction carrying the given clauses:
// it fetches the chain tag and best block reference from the node,
// assembles the raw transaction per opts, signs it with the key pair, and
// broadcasts it. All clauses commit or none do.
func InvokeMethod(ctx context.Context, node network.NodeService, keyPair *keys.KeyPair,
	opts TxOptions, clauses ...*tx.Clause) (*network.TransferResult, error) {

	if node == nil {
		return nil, fmt.Errorf("%w: node", ErrNilParam)
	}
	if keyPair == nil {
		return nil, fmt.Errorf("%w: key pair", ErrNilParam)
	}

	chainTag, err := node.ChainTag(ctx)
	if err != nil {
		return nil, err
	}
	best, err := node.GetBestBlock(ctx)
	if err != nil {
		return nil, err
	}
	blockRef, err := best.BlockRef()
	if err != nil {
		return nil, err
	}

	expiration := opts.Expiration
	if expiration == 0 {
		expiration = DefaultExpiration
	}
	nonce := opts.Nonce
	if nonce == nil {
		if nonce, err = tx.GenerateNonce(); err != nil {
			return nil, err
		}
	}

	rawTx, err := tx.NewRawTransaction(chainTag, blockRef, expiration,
		opts.Gas, opts.GasPriceCoef, nonce, clauses...)
	if err != nil {
		return nil, err
	}
	return SignThenTransfer(ctx, node, rawTx, keyPair)
}

// SignThenTransfer signs a raw transaction locally and submits the signed
// bytes, returning the node-assigned transaction id. It never retries: a
// failed or ambiguous submission is resolved by the caller through receipt
// lookup, not resubmission.
func SignThenTransfer(ctx context.Context, node network.NodeService,
	rawTx *tx.Transaction, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if node == nil {
		return nil, fmt.Errorf("%w: node", ErrNilParam)
	}
	signed, err := tx.Sign(rawTx, keyPair)
	if err != nil {
		return nil, err
	}
	raw, err := signed.Encode()
	if err != nil {
		return nil, err
	}
	return node.SendTransaction(ctx, raw)
}
