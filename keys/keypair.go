// Package keys holds secp256k1 key pairs and derives the account address
// owned by a key. A KeyPair is a signing capability: callers should scope
// it to the signing operation and Zero it when finished.
package keys

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vechain/thorclient-go/thor"
)

// KeyPair is a secp256k1 private scalar with its derived public key.
// The private key is never logged; KeyPair deliberately has no String or
// Format method exposing it.
type KeyPair struct {
	priv *ecdsa.PrivateKey
}

// Generate creates a new KeyPair from the process's CSPRNG.
func Generate() (*KeyPair, error) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return &KeyPair{priv: priv}, nil
}

// FromHex creates a KeyPair from a 32-byte hex private key, "0x" prefix
// optional.
func FromHex(s string) (*KeyPair, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	priv, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return &KeyPair{priv: priv}, nil
}

// FromBytes creates a KeyPair from a 32-byte private scalar.
func FromBytes(b []byte) (*KeyPair, error) {
	priv, err := crypto.ToECDSA(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return &KeyPair{priv: priv}, nil
}

// Address derives the account address owned by this key: the last 20 bytes
// of the Keccak-256 hash of the uncompressed public key. A zeroed key pair
// returns the zero address.
func (k *KeyPair) Address() thor.Address {
	var a thor.Address
	if k.priv == nil {
		return a
	}
	copy(a[:], crypto.PubkeyToAddress(k.priv.PublicKey).Bytes())
	return a
}

// PublicKey returns the 65-byte uncompressed public key, or nil for a
// zeroed key pair.
func (k *KeyPair) PublicKey() []byte {
	if k.priv == nil {
		return nil
	}
	return crypto.FromECDSAPub(&k.priv.PublicKey)
}

// Sign produces a 65-byte recoverable ECDSA signature [R || S || V] over a
// 32-byte digest. S is canonical (low-S) and V is the recovery indicator,
// so the signer's public key can be recovered from digest and signature
// alone.
func (k *KeyPair) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil || k.priv.D == nil || k.priv.D.Sign() == 0 {
		return nil, fmt.Errorf("%w: key has been zeroed", ErrInvalidPrivateKey)
	}
	sig, err := crypto.Sign(digest, k.priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return sig, nil
}

// Zero wipes the private scalar. The KeyPair is unusable afterwards; Sign
// returns ErrInvalidPrivateKey.
func (k *KeyPair) Zero() {
	if k.priv != nil && k.priv.D != nil {
		// big.Int offers no in-place byte wipe; overwriting the value is
		// the closest the runtime allows.
		k.priv.D.SetInt64(0)
	}
	k.priv = nil
}
