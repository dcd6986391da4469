package moveargs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/branched-services/go-moveargs/bcs"
)

func tagBytes(tag TypeTag) []byte {
	s := bcs.NewSerializer()
	tag.Serialize(s)
	return s.Bytes()
}

func TestTypeTagSerialize(t *testing.T) {
	tests := []struct {
		tag  string
		want []byte
	}{
		{"bool", []byte{0}},
		{"u8", []byte{1}},
		{"u64", []byte{2}},
		{"u128", []byte{3}},
		{"address", []byte{4}},
		{"signer", []byte{5}},
		{"u16", []byte{8}},
		{"u32", []byte{9}},
		{"u256", []byte{10}},
		{"vector<u8>", []byte{6, 1}},
		{"vector<vector<bool>>", []byte{6, 6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, tagBytes(MustParseTypeTag(tt.tag)))
		})
	}

	t.Run("struct", func(t *testing.T) {
		var want []byte
		want = append(want, 7)
		want = append(want, MustParseAccountAddress("0x1").Bytes()...)
		want = append(want, 4, 'c', 'o', 'i', 'n')
		want = append(want, 4, 'C', 'o', 'i', 'n')
		want = append(want, 1, 2)

		assert.Equal(t, want, tagBytes(MustParseTypeTag("0x1::coin::Coin<u64>")))
	})
}

func TestIsStringStruct(t *testing.T) {
	assert.True(t, IsStringStruct(MustParseTypeTag("0x1::string::String")))
	assert.True(t, IsStringStruct(MustParseTypeTag("0x0000000000000000000000000000000000000000000000000000000000000001::string::String")))
	assert.False(t, IsStringStruct(MustParseTypeTag("0x2::string::String")))
	assert.False(t, IsStringStruct(MustParseTypeTag("0x1::string::Strings")))
	assert.False(t, IsStringStruct(MustParseTypeTag("0x1::string::String<u8>")))
	assert.False(t, IsStringStruct(TypeU8))
	assert.False(t, IsStringStruct(nil))
}

func TestEqual(t *testing.T) {
	a := MustParseTypeTag("0x1::coin::Coin<vector<u8>>")

	assert.True(t, Equal(a, MustParseTypeTag("0x01::coin::Coin< vector<u8> >")))
	assert.False(t, Equal(a, MustParseTypeTag("0x1::coin::Coin<vector<u16>>")))
	assert.False(t, Equal(a, MustParseTypeTag("0x1::coin::Coin")))
	assert.False(t, Equal(TypeU8, NewVector(TypeU8)))
	assert.False(t, Equal(nil, nil))
}

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "address", TypeAddress.String())
	assert.Equal(t, "invalid", Primitive(0).String())
	assert.Equal(t, "vector<u8>", NewVector(TypeU8).String())
}
