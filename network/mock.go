package network

import (
	"context"

	"github.com/vechain/thorclient-go/thor"
)

// MockNodeService is a test double for NodeService. All function fields
// must be set before the corresponding method is called.
type MockNodeService struct {
	GetBestBlockFn          func(ctx context.Context) (*Block, error)
	GetBlockFn              func(ctx context.Context, revision thor.Revision) (*Block, error)
	ChainTagFn              func(ctx context.Context) (byte, error)
	SendTransactionFn       func(ctx context.Context, raw []byte) (*TransferResult, error)
	GetTransactionFn        func(ctx context.Context, id thor.Bytes32, includeRaw bool) (*Transaction, error)
	GetTransactionReceiptFn func(ctx context.Context, id thor.Bytes32, revision thor.Revision) (*Receipt, error)
	CallContractFn          func(ctx context.Context, contract thor.Address, call *ContractCall, revision thor.Revision) (*ContractCallResult, error)
}

func (m *MockNodeService) GetBestBlock(ctx context.Context) (*Block, error) {
	return m.GetBestBlockFn(ctx)
}

func (m *MockNodeService) GetBlock(ctx context.Context, revision thor.Revision) (*Block, error) {
	return m.GetBlockFn(ctx, revision)
}

func (m *MockNodeService) ChainTag(ctx context.Context) (byte, error) {
	return m.ChainTagFn(ctx)
}

func (m *MockNodeService) SendTransaction(ctx context.Context, raw []byte) (*TransferResult, error) {
	return m.SendTransactionFn(ctx, raw)
}

func (m *MockNodeService) GetTransaction(ctx context.Context, id thor.Bytes32, includeRaw bool) (*Transaction, error) {
	return m.GetTransactionFn(ctx, id, includeRaw)
}

func (m *MockNodeService) GetTransactionReceipt(ctx context.Context, id thor.Bytes32, revision thor.Revision) (*Receipt, error) {
	return m.GetTransactionReceiptFn(ctx, id, revision)
}

func (m *MockNodeService) CallContract(ctx context.Context, contract thor.Address, call *ContractCall, revision thor.Revision) (*ContractCallResult, error) {
	return m.CallContractFn(ctx, contract, call, revision)
}
