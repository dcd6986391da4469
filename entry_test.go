package moveargs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryMode(t *testing.T) {
	for _, mode := range []EntryMode{EntryString, EntryHex, EntryDecimal} {
		got, err := ParseEntryMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseEntryMode("HEX")
	require.NoError(t, err)
	assert.Equal(t, EntryHex, got)

	_, err = ParseEntryMode("base64")
	assert.Error(t, err)
	assert.Equal(t, "EntryMode(9)", EntryMode(9).String())
}

func TestParseEntry(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v, err := ParseEntry("abc", EntryString)
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	})

	t.Run("hex", func(t *testing.T) {
		tests := map[string][]byte{
			"0x616263": []byte("abc"),
			"616263":   []byte("abc"),
			"0X1":      {0x01},
			"61 62 63": []byte("abc"),
		}
		for raw, want := range tests {
			v, err := ParseEntry(raw, EntryHex)
			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, want, v, "raw %q", raw)
		}
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := ParseEntry("0xzz", EntryHex)
		assert.ErrorIs(t, err, ErrInvalidVectorArg)
	})

	t.Run("decimal", func(t *testing.T) {
		v, err := ParseEntry("[97, 98,99]", EntryDecimal)
		require.NoError(t, err)
		assert.Equal(t, []any{big.NewInt(97), big.NewInt(98), big.NewInt(99)}, v)

		v, err = ParseEntry(" [ ] ", EntryDecimal)
		require.NoError(t, err)
		assert.Equal(t, []any{}, v)
	})

	t.Run("bad decimal", func(t *testing.T) {
		_, err := ParseEntry("1,,2", EntryDecimal)
		assert.ErrorIs(t, err, ErrInvalidVectorArg)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := ParseEntry("1", EntryMode(7))
		assert.Error(t, err)
	})
}

func TestEntryModesSerializeAlike(t *testing.T) {
	tag := MustParseTypeTag("vector<u8>")
	want := []byte{0x03, 'a', 'b', 'c'}

	for raw, mode := range map[string]EntryMode{
		"abc":        EntryString,
		"0x616263":   EntryHex,
		"[97,98,99]": EntryDecimal,
	} {
		v, err := ParseEntry(raw, mode)
		require.NoError(t, err)
		got, err := SerializeArgToBytes(v, tag)
		require.NoError(t, err)
		assert.Equal(t, want, got, "mode %s", mode)
	}
}
