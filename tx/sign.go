package tx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vechain/thorclient-go/keys"
	"github.com/vechain/thorclient-go/thor"
)

// signatureLength is 64 bytes of ECDSA signature plus 1 recovery byte.
const signatureLength = 65

// Sign hashes the transaction's unsigned canonical encoding with
// Blake2b-256 and signs the digest with the key pair's secp256k1 private
// key, returning a signed copy. The signature is deterministic low-S ECDSA
// with a trailing recovery indicator, so the origin address is recoverable
// from the transaction alone.
//
// The key pair is only used for the duration of the call and never
// retained.
func Sign(t *Transaction, keyPair *keys.KeyPair) (*Transaction, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: transaction", ErrNilParam)
	}
	if keyPair == nil {
		return nil, fmt.Errorf("%w: key pair", ErrNilParam)
	}
	hash, err := t.SigningHash()
	if err != nil {
		return nil, err
	}
	sig, err := keyPair.Sign(hash.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	return t.WithSignature(sig)
}

// Origin recovers the signer's address from the transaction's signature
// and signing hash. It fails with ErrNotSigned on an unsigned transaction.
func (t *Transaction) Origin() (thor.Address, error) {
	if len(t.body.Signature) == 0 {
		return thor.Address{}, ErrNotSigned
	}
	if len(t.body.Signature) != signatureLength {
		return thor.Address{}, fmt.Errorf("%w: got %d bytes, want %d",
			ErrInvalidSignature, len(t.body.Signature), signatureLength)
	}
	hash, err := t.SigningHash()
	if err != nil {
		return thor.Address{}, err
	}
	pub, err := crypto.SigToPub(hash.Bytes(), t.body.Signature)
	if err != nil {
		return thor.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return thor.BytesToAddress(crypto.PubkeyToAddress(*pub).Bytes())
}
