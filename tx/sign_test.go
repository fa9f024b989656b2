package tx

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/vechain/thorclient-go/keys"
	"github.com/vechain/thorclient-go/thor"
)

const testPrivHex = "0x88f5b5f3b592918c1f4e2d9dbcb0b8d1f3c9e0aa0f3a2c8b4d5e6f70812a3b4c"

func testKeyPair(t *testing.T) *keys.KeyPair {
	t.Helper()
	k, err := keys.FromHex(testPrivHex)
	require.NoError(t, err)
	return k
}

func TestSign_NilParams(t *testing.T) {
	_, err := Sign(nil, testKeyPair(t))
	assert.ErrorIs(t, err, ErrNilParam)

	_, err = Sign(testTransaction(t), nil)
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestSign_OriginMatchesKeyAddress(t *testing.T) {
	k := testKeyPair(t)
	signed, err := Sign(testTransaction(t), k)
	require.NoError(t, err)

	require.Len(t, signed.Signature(), signatureLength)

	origin, err := signed.Origin()
	require.NoError(t, err)
	assert.Equal(t, k.Address(), origin)
}

func TestSign_LeavesOriginalUnsigned(t *testing.T) {
	trx := testTransaction(t)
	_, err := Sign(trx, testKeyPair(t))
	require.NoError(t, err)
	assert.Nil(t, trx.Signature())
}

// TestSign_ReproducibleID covers the reproducibility requirement: the same
// transaction signed twice with the same key yields the same signature and
// the same transaction id.
func TestSign_ReproducibleID(t *testing.T) {
	k := testKeyPair(t)
	trx := testTransaction(t)

	signed1, err := Sign(trx, k)
	require.NoError(t, err)
	signed2, err := Sign(trx, k)
	require.NoError(t, err)

	assert.Equal(t, signed1.Signature(), signed2.Signature())

	id1, err := signed1.ID()
	require.NoError(t, err)
	id2, err := signed2.ID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.False(t, id1.IsZero())
}

// TestSign_GoldenID pins the exact transaction id of a fixed fixture.
// Deterministic signing makes the id a pure function of the transaction
// and the key; any change here is a chain-compatibility break.
func TestSign_GoldenID(t *testing.T) {
	signed, err := Sign(testTransaction(t), testKeyPair(t))
	require.NoError(t, err)

	id, err := signed.ID()
	require.NoError(t, err)
	assert.Equal(t, "0xb776263e62b14ac41c7882777b7262e402e676d02f917526eaf2e1fae19e9c1c", id.String())
}

// TestID_IsHashOfSignedEncoding pins the id convention: Blake2b-256 over
// the signed canonical encoding.
func TestID_IsHashOfSignedEncoding(t *testing.T) {
	signed, err := Sign(testTransaction(t), testKeyPair(t))
	require.NoError(t, err)

	enc, err := signed.Encode()
	require.NoError(t, err)
	want := thor.Bytes32(blake2b.Sum256(enc))

	id, err := signed.ID()
	require.NoError(t, err)
	assert.Equal(t, want, id)
}

func TestID_Unsigned(t *testing.T) {
	_, err := testTransaction(t).ID()
	assert.ErrorIs(t, err, ErrNotSigned)
}

func TestOrigin_Unsigned(t *testing.T) {
	_, err := testTransaction(t).Origin()
	assert.ErrorIs(t, err, ErrNotSigned)
}

func TestSign_ZeroedKey(t *testing.T) {
	k := testKeyPair(t)
	k.Zero()
	_, err := Sign(testTransaction(t), k)
	assert.ErrorIs(t, err, ErrSigningFailed)
}

// TestSigningHash_ExcludesSignature verifies the signing hash covers only
// the unsigned fields, so it is identical before and after signing.
func TestSigningHash_ExcludesSignature(t *testing.T) {
	trx := testTransaction(t)
	unsignedHash, err := trx.SigningHash()
	require.NoError(t, err)

	signed, err := Sign(trx, testKeyPair(t))
	require.NoError(t, err)
	signedHash, err := signed.SigningHash()
	require.NoError(t, err)

	assert.Equal(t, unsignedHash, signedHash)
}

// TestSigningHash_IsHashOfUnsignedEncoding pins the digest convention:
// Blake2b-256 over the unsigned canonical encoding.
func TestSigningHash_IsHashOfUnsignedEncoding(t *testing.T) {
	trx := testTransaction(t)

	enc, err := trx.Encode()
	require.NoError(t, err)
	want := blake2b.Sum256(enc)

	hash, err := trx.SigningHash()
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(want[:]), hex.EncodeToString(hash.Bytes()))
}

func TestWithSignature_WrongLength(t *testing.T) {
	_, err := testTransaction(t).WithSignature([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
