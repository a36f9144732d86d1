package ss58

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceHex  = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceSS58 = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

func TestEncodeHex(t *testing.T) {
	t.Run("encodes a known account under the substrate prefix", func(t *testing.T) {
		addr, err := EncodeHex(aliceHex, SubstratePrefix)
		require.NoError(t, err)
		assert.Equal(t, aliceSS58, addr)
	})

	t.Run("accepts ids without the 0x prefix", func(t *testing.T) {
		addr, err := EncodeHex(aliceHex[2:], SubstratePrefix)
		require.NoError(t, err)
		assert.Equal(t, aliceSS58, addr)
	})

	t.Run("rejects non hex input", func(t *testing.T) {
		_, err := EncodeHex("0xzz", SubstratePrefix)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("rejects short ids", func(t *testing.T) {
		_, err := EncodeHex("0x0102", SubstratePrefix)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}

func TestEncode(t *testing.T) {
	t.Run("rejects prefixes out of range", func(t *testing.T) {
		_, err := Encode(make([]byte, 32), maxPrefix+1)
		assert.ErrorIs(t, err, ErrInvalidPrefix)
	})
}

func TestDecode(t *testing.T) {
	t.Run("returns the account id and prefix of a known address", func(t *testing.T) {
		id, prefix, err := Decode(aliceSS58)
		require.NoError(t, err)
		assert.Equal(t, SubstratePrefix, prefix)
		assert.Equal(t, aliceHex[2:], hex.EncodeToString(id))
	})

	t.Run("round trips two byte prefixes", func(t *testing.T) {
		id := make([]byte, 32)
		for i := range id {
			id[i] = byte(i)
		}

		addr, err := Encode(id, 1284)
		require.NoError(t, err)

		decoded, prefix, err := Decode(addr)
		require.NoError(t, err)
		assert.Equal(t, uint16(1284), prefix)
		assert.Equal(t, id, decoded)
	})

	t.Run("rejects a corrupted checksum", func(t *testing.T) {
		corrupted := aliceSS58[:len(aliceSS58)-1] + "Z"
		assert.False(t, IsValid(corrupted))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := Decode("not-an-address")
		assert.Error(t, err)
	})
}
