package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHexKey is a 32-byte key in hex, used directly without derivation.
const testHexKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestCipher(t *testing.T) *EnvelopeCipherService {
	t.Helper()
	ring, err := NewKeyRing(map[byte]string{1: testHexKey}, 1)
	require.NoError(t, err)
	return NewEnvelopeCipherService(ring)
}

func TestNewKeyRing_Validation(t *testing.T) {
	_, err := NewKeyRing(map[byte]string{}, 1)
	assert.Error(t, err)

	_, err = NewKeyRing(map[byte]string{1: testHexKey}, 2)
	assert.Error(t, err, "active version without a secret must fail")
}

func TestEnvelopeCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	inputs := [][]byte{
		[]byte("0xsignature"),
		[]byte(""),
		{0x00, 0xff, 0x10, 0x80},
		[]byte(`{"amount":50000}`),
	}

	for _, plaintext := range inputs {
		blob, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		got, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEnvelopeCipher_BlobCarriesVersion(t *testing.T) {
	c := newTestCipher(t)

	blob, err := c.Encrypt([]byte("data"))
	require.NoError(t, err)

	raw, err := hex.DecodeString(blob)
	require.NoError(t, err)
	assert.Equal(t, byte(1), raw[0])
}

func TestEnvelopeCipher_DecryptAfterRotation(t *testing.T) {
	oldRing, err := NewKeyRing(map[byte]string{1: testHexKey}, 1)
	require.NoError(t, err)
	oldCipher := NewEnvelopeCipherService(oldRing)

	blob, err := oldCipher.Encrypt([]byte("pre-rotation record"))
	require.NoError(t, err)

	// Rotate: version 2 becomes active, version 1 is retained for reads.
	newRing, err := NewKeyRing(map[byte]string{1: testHexKey, 2: "fresh-secret"}, 2)
	require.NoError(t, err)
	newCipher := NewEnvelopeCipherService(newRing)

	got, err := newCipher.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("pre-rotation record"), got)

	// New data is sealed under version 2 and old ring cannot open it.
	blob2, err := newCipher.Encrypt([]byte("post-rotation record"))
	require.NoError(t, err)
	raw, err := hex.DecodeString(blob2)
	require.NoError(t, err)
	assert.Equal(t, byte(2), raw[0])

	_, err = oldCipher.Decrypt(blob2)
	assert.Error(t, err)
}

func TestEnvelopeCipher_TamperFailsClosed(t *testing.T) {
	c := newTestCipher(t)

	blob, err := c.Encrypt([]byte("sensitive"))
	require.NoError(t, err)

	raw, err := hex.DecodeString(blob)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := hex.EncodeToString(raw)

	got, err := c.Decrypt(tampered)
	assert.Error(t, err)
	assert.Nil(t, got, "no partial plaintext on tag mismatch")
}

func TestEnvelopeCipher_DecryptErrors(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.Decrypt("not hex")
	assert.Error(t, err)

	_, err = c.Decrypt("01")
	assert.Error(t, err)

	// Unknown key version.
	blob, err := c.Encrypt([]byte("x"))
	require.NoError(t, err)
	raw, _ := hex.DecodeString(blob)
	raw[0] = 9
	_, err = c.Decrypt(hex.EncodeToString(raw))
	assert.Error(t, err)
}

func TestEnvelopeCipher_JSONRoundTrip(t *testing.T) {
	c := newTestCipher(t)

	type ctxPayload struct {
		Amount int64  `json:"amount"`
		Wallet string `json:"wallet"`
	}
	in := ctxPayload{Amount: 50_000, Wallet: "0xabc"}

	blob, err := c.EncryptJSON(in)
	require.NoError(t, err)

	var out ctxPayload
	require.NoError(t, c.DecryptJSON(blob, &out))
	assert.Equal(t, in, out)
}

func TestKeyRing_DerivedKeyIsDeterministic(t *testing.T) {
	ringA, err := NewKeyRing(map[byte]string{3: "short-secret"}, 3)
	require.NoError(t, err)
	ringB, err := NewKeyRing(map[byte]string{3: "short-secret"}, 3)
	require.NoError(t, err)

	keyA, err := ringA.Key(3)
	require.NoError(t, err)
	keyB, err := ringB.Key(3)
	require.NoError(t, err)

	assert.Equal(t, keyA, keyB)
	assert.Len(t, keyA, 32)

	// Cached on second access.
	keyA2, err := ringA.Key(3)
	require.NoError(t, err)
	assert.Equal(t, keyA, keyA2)
}
