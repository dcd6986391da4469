package moveargs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountAddress(t *testing.T) {
	full := "0x" + strings.Repeat("0", 63) + "1"

	tests := []struct {
		input string
		short string
	}{
		{"0x1", "0x1"},
		{"1", "0x1"},
		{"0X1", "0x1"},
		{"0xcafe", "0xcafe"},
		{"0x0", "0x0"},
		{full, "0x1"},
		{"0xABC", "0xabc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr, err := ParseAccountAddress(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.short, addr.ShortString())
			assert.Len(t, addr.String(), 66)
		})
	}

	assert.Equal(t, full, MustParseAccountAddress("0x1").String())
}

func TestParseAccountAddressErrors(t *testing.T) {
	for _, input := range []string{"", "0x", "0xzz", "0x" + strings.Repeat("1", 65), "0x1 "} {
		_, err := ParseAccountAddress(input)
		assert.ErrorIs(t, err, ErrInvalidAccountAddress, "input %q", input)
	}

	assert.Panics(t, func() { MustParseAccountAddress("nope") })
}

func TestAccountAddressText(t *testing.T) {
	type holder struct {
		Addr AccountAddress `json:"addr"`
	}

	b, err := json.Marshal(holder{Addr: MustParseAccountAddress("0x2")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"addr":"0x2"}`, string(b))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"addr":"0xa"}`), &h))
	assert.Equal(t, "0xa", h.Addr.ShortString())

	assert.Error(t, json.Unmarshal([]byte(`{"addr":"0xzz"}`), &h))
}

func TestAccountAddressBytes(t *testing.T) {
	addr := MustParseAccountAddress("0x1")
	b := addr.Bytes()
	b[31] = 0xff
	assert.Equal(t, byte(0x01), addr[31])
}
