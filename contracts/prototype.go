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

// prototypeMetadata is the ABI of the built-in ProtoType contract.
const prototypeMetadata = `[
	{"type":"function","name":"master","constant":true,
	 "inputs":[{"name":"_self","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"setMaster","constant":false,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_newMaster","type":"address"}],
	 "outputs":[]},
	{"type":"function","name":"addUser","constant":false,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_user","type":"address"}],
	 "outputs":[]},
	{"type":"function","name":"removeUser","constant":false,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_user","type":"address"}],
	 "outputs":[]},
	{"type":"function","name":"isUser","constant":true,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_user","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"userPlan","constant":true,
	 "inputs":[{"name":"_self","type":"address"}],
	 "outputs":[{"name":"credit","type":"uint256"},{"name":"recoveryRate","type":"uint256"}]},
	{"type":"function","name":"setUserPlan","constant":false,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_credit","type":"uint256"},{"name":"_recoveryRate","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"userCredit","constant":true,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_user","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"sponsor","constant":false,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_yesOrNo","type":"bool"}],
	 "outputs":[]},
	{"type":"function","name":"selectSponsor","constant":false,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_sponsor","type":"address"}],
	 "outputs":[]},
	{"type":"function","name":"currentSponsor","constant":true,
	 "inputs":[{"name":"_self","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"isSponsor","constant":true,
	 "inputs":[{"name":"_self","type":"address"},{"name":"_sponsor","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

// ProtoType is the built-in multi-party payment contract. A receiver's
// master adds users and sets a credit plan; once sponsored, the receiver's
// account books transaction fees for its users.
var ProtoType = abi.MustNew(
	thor.MustParseAddress("0x000000000000000000000050726f746f74797065"),
	[]byte(prototypeMetadata),
)

// UserPlan is a receiver's credit plan: the maximum credit a user may
// hold and the per-second recovery rate, both in VTHO minimal units.
type UserPlan struct {
	Credit       *big.Int
	RecoveryRate *big.Int
}

// ProtoTypeClient invokes and reads the ProtoType contract through a node.
type ProtoTypeClient struct {
	node network.NodeService
}

// NewProtoTypeClient creates a ProtoType client using the given node
// transport.
func NewProtoTypeClient(node network.NodeService) *ProtoTypeClient {
	return &ProtoTypeClient{node: node}
}

// buildPairClauses fans one method out over parallel receiver/argument
// arrays, one clause per pair.
func buildPairClauses(method string, receivers []thor.Address, args []string) ([]*tx.Clause, error) {
	clauses := make([]*tx.Clause, len(receivers))
	for i := range receivers {
		clause, err := BuildCallClause(ProtoType, method, receivers[i].String(), args[i])
		if err != nil {
			return nil, err
		}
		clauses[i] = clause
	}
	return clauses, nil
}

// SetMasterAddress sets a new master for each receiver. Both arrays must
// have the same length; pair i produces clause i of one atomic
// transaction.
func (p *ProtoTypeClient) SetMasterAddress(ctx context.Context, receivers, newMasters []thor.Address,
	opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if err := sameLength(len(receivers), len(newMasters)); err != nil {
		return nil, err
	}
	clauses, err := buildPairClauses("setMaster", receivers, addressStrings(newMasters))
	if err != nil {
		return nil, err
	}
	return InvokeMethod(ctx, p.node, keyPair, opts, clauses...)
}

// AddUser adds each user to the corresponding receiver's user plan.
func (p *ProtoTypeClient) AddUser(ctx context.Context, receivers, users []thor.Address,
	opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if err := sameLength(len(receivers), len(users)); err != nil {
		return nil, err
	}
	clauses, err := buildPairClauses("addUser", receivers, addressStrings(users))
	if err != nil {
		return nil, err
	}
	return InvokeMethod(ctx, p.node, keyPair, opts, clauses...)
}

// RemoveUsers removes each user from the corresponding receiver's user
// plan.
func (p *ProtoTypeClient) RemoveUsers(ctx context.Context, receivers, users []thor.Address,
	opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if err := sameLength(len(receivers), len(users)); err != nil {
		return nil, err
	}
	clauses, err := buildPairClauses("removeUser", receivers, addressStrings(users))
	if err != nil {
		return nil, err
	}
	return InvokeMethod(ctx, p.node, keyPair, opts, clauses...)
}

// SetUserPlans sets each receiver's credit plan: credit and recovery rate
// per second, in VTHO minimal units.
func (p *ProtoTypeClient) SetUserPlans(ctx context.Context, receivers []thor.Address,
	credits, recoveryRates []*thor.Amount, opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if err := sameLength(len(receivers), len(credits), len(recoveryRates)); err != nil {
		return nil, err
	}
	clauses := make([]*tx.Clause, len(receivers))
	for i := range receivers {
		if credits[i] == nil || recoveryRates[i] == nil {
			return nil, fmt.Errorf("%w: amount %d", ErrNilParam, i)
		}
		clause, err := BuildCallClause(ProtoType, "setUserPlan",
			receivers[i].String(), credits[i].Hex(), recoveryRates[i].Hex())
		if err != nil {
			return nil, err
		}
		clauses[i] = clause
	}
	return InvokeMethod(ctx, p.node, keyPair, opts, clauses...)
}

// Sponsor offers (or withdraws, with yesOrNo false) sponsorship to each
// receiver.
func (p *ProtoTypeClient) Sponsor(ctx context.Context, receivers []thor.Address, yesOrNo bool,
	opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if err := sameLength(len(receivers)); err != nil {
		return nil, err
	}
	arg := "0x00"
	if yesOrNo {
		arg = "0x01"
	}
	clauses := make([]*tx.Clause, len(receivers))
	for i := range receivers {
		clause, err := BuildCallClause(ProtoType, "sponsor", receivers[i].String(), arg)
		if err != nil {
			return nil, err
		}
		clauses[i] = clause
	}
	return InvokeMethod(ctx, p.node, keyPair, opts, clauses...)
}

// SelectSponsor selects, as master, the active sponsor for each receiver.
func (p *ProtoTypeClient) SelectSponsor(ctx context.Context, receivers, sponsors []thor.Address,
	opts TxOptions, keyPair *keys.KeyPair) (*network.TransferResult, error) {

	if err := sameLength(len(receivers), len(sponsors)); err != nil {
		return nil, err
	}
	clauses, err := buildPairClauses("selectSponsor", receivers, addressStrings(sponsors))
	if err != nil {
		return nil, err
	}
	return InvokeMethod(ctx, p.node, keyPair, opts, clauses...)
}

// Master returns the master address of a receiver.
func (p *ProtoTypeClient) Master(ctx context.Context, receiver thor.Address, revision thor.Revision) (thor.Address, error) {
	out, err := p.call(ctx, revision, "master", receiver.String())
	if err != nil {
		return thor.Address{}, err
	}
	return thor.ParseAddress(out[0])
}

// IsUser reports whether user is on the receiver's user plan.
func (p *ProtoTypeClient) IsUser(ctx context.Context, receiver, user thor.Address, revision thor.Revision) (bool, error) {
	out, err := p.call(ctx, revision, "isUser", receiver.String(), user.String())
	if err != nil {
		return false, err
	}
	return out[0] == "true", nil
}

// UserPlan returns the receiver's credit plan.
func (p *ProtoTypeClient) UserPlan(ctx context.Context, receiver thor.Address, revision thor.Revision) (*UserPlan, error) {
	out, err := p.call(ctx, revision, "userPlan", receiver.String())
	if err != nil {
		return nil, err
	}
	credit, err := parseBigHex(out[0])
	if err != nil {
		return nil, err
	}
	rate, err := parseBigHex(out[1])
	if err != nil {
		return nil, err
	}
	return &UserPlan{Credit: credit, RecoveryRate: rate}, nil
}

// UserCredit returns the user's remaining credit with the receiver, in
// VTHO minimal units.
func (p *ProtoTypeClient) UserCredit(ctx context.Context, receiver, user thor.Address, revision thor.Revision) (*big.Int, error) {
	out, err := p.call(ctx, revision, "userCredit", receiver.String(), user.String())
	if err != nil {
		return nil, err
	}
	return parseBigHex(out[0])
}

// CurrentSponsor returns the receiver's active sponsor address.
func (p *ProtoTypeClient) CurrentSponsor(ctx context.Context, receiver thor.Address, revision thor.Revision) (thor.Address, error) {
	out, err := p.call(ctx, revision, "currentSponsor", receiver.String())
	if err != nil {
		return thor.Address{}, err
	}
	return thor.ParseAddress(out[0])
}

// IsSponsor reports whether sponsor has offered sponsorship to the
// receiver.
func (p *ProtoTypeClient) IsSponsor(ctx context.Context, receiver, sponsor thor.Address, revision thor.Revision) (bool, error) {
	out, err := p.call(ctx, revision, "isSponsor", receiver.String(), sponsor.String())
	if err != nil {
		return false, err
	}
	return out[0] == "true", nil
}

// call runs a read-only ProtoType method and decodes its outputs.
func (p *ProtoTypeClient) call(ctx context.Context, revision thor.Revision, method string, args ...string) ([]string, error) {
	callReq, err := BuildCall(ProtoType, method, args...)
	if err != nil {
		return nil, err
	}
	result, err := p.node.CallContract(ctx, ProtoType.Address, callReq, revision)
	if err != nil {
		return nil, err
	}
	return decodeCallData(ProtoType, method, result)
}

func addressStrings(addrs []thor.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

func parseBigHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a hex integer", network.ErrInvalidResponse, s)
	}
	return v, nil
}
