package keys

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivHex = "0x88f5b5f3b592918c1f4e2d9dbcb0b8d1f3c9e0aa0f3a2c8b4d5e6f70812a3b4c"

func TestFromHex(t *testing.T) {
	k, err := FromHex(testPrivHex)
	require.NoError(t, err)
	assert.False(t, k.Address().IsZero())

	// The "0x" prefix must not matter.
	k2, err := FromHex(testPrivHex[2:])
	require.NoError(t, err)
	assert.Equal(t, k.Address(), k2.Address())
}

func TestFromHex_Invalid(t *testing.T) {
	_, err := FromHex("0x1234")
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = FromHex("not hex at all")
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestFromBytes_MatchesFromHex(t *testing.T) {
	k1, err := FromHex(testPrivHex)
	require.NoError(t, err)

	raw := make([]byte, 32)
	copy(raw, crypto.FromECDSA(k1.priv))
	k2, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, k1.Address(), k2.Address())
}

func TestFromBytes_ZeroKey(t *testing.T) {
	_, err := FromBytes(make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestGenerate_Distinct(t *testing.T) {
	k1, err := Generate()
	require.NoError(t, err)
	k2, err := Generate()
	require.NoError(t, err)
	assert.NotEqual(t, k1.Address(), k2.Address())
}

func TestSign_RecoversToOwnAddress(t *testing.T) {
	k, err := FromHex(testPrivHex)
	require.NoError(t, err)

	digest := crypto.Keccak256([]byte("payload"))
	sig, err := k.Sign(digest)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	pub, err := crypto.SigToPub(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, k.Address().Bytes(), crypto.PubkeyToAddress(*pub).Bytes())
}

func TestSign_Deterministic(t *testing.T) {
	k, err := FromHex(testPrivHex)
	require.NoError(t, err)

	digest := crypto.Keccak256([]byte("payload"))
	sig1, err := k.Sign(digest)
	require.NoError(t, err)
	sig2, err := k.Sign(digest)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(sig1, sig2))
}

func TestZero(t *testing.T) {
	k, err := FromHex(testPrivHex)
	require.NoError(t, err)

	k.Zero()
	_, err = k.Sign(make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)

	// The accessors degrade to zero values instead of panicking.
	assert.True(t, k.Address().IsZero())
	assert.Nil(t, k.PublicKey())
}

func TestPublicKey(t *testing.T) {
	k, err := FromHex(testPrivHex)
	require.NoError(t, err)

	pub := k.PublicKey()
	require.Len(t, pub, 65)
	assert.EqualValues(t, 0x04, pub[0])
}
