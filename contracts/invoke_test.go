package contracts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/thorclient-go/keys"
	"github.com/vechain/thorclient-go/network"
	"github.com/vechain/thorclient-go/thor"
	"github.com/vechain/thorclient-go/tx"
)

const (
	testPrivHex   = "0x88f5b5f3b592918c1f4e2d9dbcb0b8d1f3c9e0aa0f3a2c8b4d5e6f70812a3b4c"
	testBestID    = "0x000000089ebb42aeff0e1f6fb9a9f501b07023ef0f0098da6a35d01b061bbacd"
	testChainTag  = byte(0x4a)
	testSubmitted = "0x5485ab3aaf5ff9160a33566de7d727aa5eb9e49b041edbb72b5e7877ada9b168"
)

func testKeyPair(t *testing.T) *keys.KeyPair {
	t.Helper()
	k, err := keys.FromHex(testPrivHex)
	require.NoError(t, err)
	return k
}

// submissionNode serves chain tag and best block from fixtures and
// captures every submitted raw transaction.
func submissionNode(t *testing.T, rawOut *[][]byte) *network.MockNodeService {
	t.Helper()
	return &network.MockNodeService{
		ChainTagFn: func(ctx context.Context) (byte, error) {
			return testChainTag, nil
		},
		GetBestBlockFn: func(ctx context.Context) (*network.Block, error) {
			return &network.Block{Number: 8, ID: testBestID}, nil
		},
		SendTransactionFn: func(ctx context.Context, raw []byte) (*network.TransferResult, error) {
			*rawOut = append(*rawOut, raw)
			return &network.TransferResult{ID: testSubmitted}, nil
		},
	}
}

// haltingNode fails the test on any network interaction. Used to verify
// that validation errors surface before any bytes are sent.
func haltingNode(t *testing.T) *network.MockNodeService {
	t.Helper()
	fail := func(ctx context.Context) (byte, error) {
		t.Fatal("unexpected network call")
		return 0, nil
	}
	return &network.MockNodeService{
		ChainTagFn: fail,
		GetBestBlockFn: func(ctx context.Context) (*network.Block, error) {
			t.Fatal("unexpected network call")
			return nil, nil
		},
		SendTransactionFn: func(ctx context.Context, raw []byte) (*network.TransferResult, error) {
			t.Fatal("unexpected network call")
			return nil, nil
		},
	}
}

// TestAddUser_EndToEnd covers the multi-clause scenario: two
// receiver/user pairs produce one transaction with two clauses, each
// targeting the ProtoType contract with addUser call data.
func TestAddUser_EndToEnd(t *testing.T) {
	var submitted [][]byte
	node := submissionNode(t, &submitted)
	keyPair := testKeyPair(t)

	receivers := []thor.Address{testReceiver, testReceiver}
	users := []thor.Address{testUser, testUser}

	result, err := NewProtoTypeClient(node).AddUser(context.Background(), receivers, users,
		TxOptions{Gas: 80000, GasPriceCoef: 0x01}, keyPair)
	require.NoError(t, err)
	assert.Equal(t, testSubmitted, result.ID)

	require.Len(t, submitted, 1)
	decoded, err := tx.Decode(submitted[0])
	require.NoError(t, err)

	assert.Equal(t, testChainTag, decoded.ChainTag())
	assert.Equal(t, "0x000000089ebb42ae", decoded.BlockRef().String())
	assert.EqualValues(t, DefaultExpiration, decoded.Expiration())
	assert.EqualValues(t, 80000, decoded.Gas())
	assert.EqualValues(t, 0x01, decoded.GasPriceCoef())

	def, err := ProtoType.Method("addUser")
	require.NoError(t, err)
	clauses := decoded.Clauses()
	require.Len(t, clauses, 2)
	for _, clause := range clauses {
		assert.Equal(t, ProtoType.Address, *clause.To())
		assert.Zero(t, clause.Value().Sign())
		assert.Equal(t, def.Selector(), clause.Data()[:4])
	}

	origin, err := decoded.Origin()
	require.NoError(t, err)
	assert.Equal(t, keyPair.Address(), origin)
}

// TestAddUser_LengthMismatch: unequal parallel arrays fail before any
// network interaction and produce no clauses.
func TestAddUser_LengthMismatch(t *testing.T) {
	p := NewProtoTypeClient(haltingNode(t))

	_, err := p.AddUser(context.Background(),
		[]thor.Address{testReceiver, testReceiver},
		[]thor.Address{testUser},
		TxOptions{Gas: 80000}, testKeyPair(t))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAddUser_Empty(t *testing.T) {
	p := NewProtoTypeClient(haltingNode(t))

	_, err := p.AddUser(context.Background(), nil, nil, TxOptions{}, testKeyPair(t))
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestSetUserPlans_LengthMismatch(t *testing.T) {
	p := NewProtoTypeClient(haltingNode(t))
	credit, err := thor.ParseAmount(VTHO, "100")
	require.NoError(t, err)

	_, err = p.SetUserPlans(context.Background(),
		[]thor.Address{testReceiver},
		[]*thor.Amount{credit, credit},
		[]*thor.Amount{credit},
		TxOptions{}, testKeyPair(t))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestInvokeMethod_NilNode(t *testing.T) {
	_, err := InvokeMethod(context.Background(), nil, testKeyPair(t), TxOptions{},
		tx.NewClause(&testReceiver))
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestInvokeMethod_NilKey(t *testing.T) {
	_, err := InvokeMethod(context.Background(), haltingNode(t), nil, TxOptions{},
		tx.NewClause(&testReceiver))
	assert.ErrorIs(t, err, ErrNilParam)
}

// TestInvokeMethod_FixedNonceReproducible: supplying the same nonce twice
// reproduces byte-identical submissions and hence the same transaction id.
func TestInvokeMethod_FixedNonceReproducible(t *testing.T) {
	var submitted [][]byte
	node := submissionNode(t, &submitted)
	keyPair := testKeyPair(t)
	nonce := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xbf, 0x31}

	opts := TxOptions{Gas: 21000, Nonce: nonce}
	clause := tx.NewClause(&testReceiver)

	_, err := InvokeMethod(context.Background(), node, keyPair, opts, clause)
	require.NoError(t, err)
	_, err = InvokeMethod(context.Background(), node, keyPair, opts, clause)
	require.NoError(t, err)

	require.Len(t, submitted, 2)
	assert.Equal(t, submitted[0], submitted[1])
}

// TestInvokeMethod_FreshNonces: without an explicit nonce, consecutive
// invocations are distinct transactions.
func TestInvokeMethod_FreshNonces(t *testing.T) {
	var submitted [][]byte
	node := submissionNode(t, &submitted)
	keyPair := testKeyPair(t)

	for range 2 {
		_, err := InvokeMethod(context.Background(), node, keyPair,
			TxOptions{Gas: 21000}, tx.NewClause(&testReceiver))
		require.NoError(t, err)
	}

	require.Len(t, submitted, 2)
	assert.NotEqual(t, submitted[0], submitted[1])
}

// TestSignThenTransfer_IDMatchesLocalComputation: the submitted bytes
// decode to a transaction whose locally computed id is available for
// receipt correlation.
func TestSignThenTransfer_IDMatchesLocalComputation(t *testing.T) {
	var submitted [][]byte
	node := submissionNode(t, &submitted)
	keyPair := testKeyPair(t)

	ref, err := thor.ParseBlockRef("0x000000089ebb42ae")
	require.NoError(t, err)
	nonce := []byte{0, 0, 0, 0, 0, 0, 0xbf, 0x31}
	rawTx, err := tx.NewRawTransaction(testChainTag, ref, 720, 21000, 0x01, nonce,
		tx.NewClause(&testReceiver))
	require.NoError(t, err)

	_, err = SignThenTransfer(context.Background(), node, rawTx, keyPair)
	require.NoError(t, err)

	require.Len(t, submitted, 1)
	decoded, err := tx.Decode(submitted[0])
	require.NoError(t, err)
	id, err := decoded.ID()
	require.NoError(t, err)

	signed, err := tx.Sign(rawTx, keyPair)
	require.NoError(t, err)
	localID, err := signed.ID()
	require.NoError(t, err)
	assert.Equal(t, localID, id)
}

func TestSignThenTransfer_NilNode(t *testing.T) {
	rawTx, err := tx.NewRawTransaction(testChainTag, thor.BlockRef{}, 720, 21000, 0,
		[]byte{0, 0, 0, 0, 0, 0, 0, 1}, tx.NewClause(&testReceiver))
	require.NoError(t, err)

	_, err = SignThenTransfer(context.Background(), nil, rawTx, testKeyPair(t))
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestTransferVET_EndToEnd(t *testing.T) {
	var submitted [][]byte
	node := submissionNode(t, &submitted)
	amount, err := thor.ParseAmount(thor.VET, "21.12")
	require.NoError(t, err)

	result, err := TransferVET(context.Background(), node, testKeyPair(t),
		testReceiver, amount, TxOptions{Gas: 21000, GasPriceCoef: 0x01})
	require.NoError(t, err)
	assert.Equal(t, testSubmitted, result.ID)

	require.Len(t, submitted, 1)
	decoded, err := tx.Decode(submitted[0])
	require.NoError(t, err)
	clauses := decoded.Clauses()
	require.Len(t, clauses, 1)
	assert.Equal(t, amount.Units(), clauses[0].Value())
	assert.Empty(t, clauses[0].Data())
}
