package moveargs

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitives(t *testing.T) {
	tests := []struct {
		input string
		want  Primitive
	}{
		{"bool", TypeBool},
		{"u8", TypeU8},
		{"u16", TypeU16},
		{"u32", TypeU32},
		{"u64", TypeU64},
		{"u128", TypeU128},
		{"u256", TypeU256},
		{"address", TypeAddress},
		{"signer", TypeSigner},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := ParseTypeTag(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
			assert.Equal(t, tt.input, tag.String())
		})
	}
}

func TestParseVector(t *testing.T) {
	t.Run("vector of address", func(t *testing.T) {
		tag, err := ParseTypeTag("vector<address>")
		require.NoError(t, err)
		assert.Equal(t, &VectorTag{Elem: TypeAddress}, tag)
	})

	t.Run("whitespace is ignored", func(t *testing.T) {
		tag, err := ParseTypeTag(" vector < u64 > ")
		require.NoError(t, err)
		assert.Equal(t, &VectorTag{Elem: TypeU64}, tag)
	})

	t.Run("nested", func(t *testing.T) {
		tag, err := ParseTypeTag("vector<vector<u8>>")
		require.NoError(t, err)
		assert.Equal(t, NewVector(NewVector(TypeU8)), tag)
		assert.Equal(t, "vector<vector<u8>>", tag.String())
	})

	t.Run("missing closing bracket", func(t *testing.T) {
		_, err := ParseTypeTag("vector<u64")
		assert.ErrorIs(t, err, ErrInvalidTypeTag)
	})

	t.Run("missing opening bracket", func(t *testing.T) {
		_, err := ParseTypeTag("vector u64>")
		assert.ErrorIs(t, err, ErrInvalidTypeTag)
	})
}

func TestParseStruct(t *testing.T) {
	t.Run("without type args", func(t *testing.T) {
		tag, err := ParseTypeTag("0x1::test_coin::Coin")
		require.NoError(t, err)

		st, ok := tag.(*StructTag)
		require.True(t, ok)
		assert.Equal(t, "0x1", st.Address.ShortString())
		assert.Equal(t, "test_coin", st.Module)
		assert.Equal(t, "Coin", st.Name)
		assert.Empty(t, st.TypeArgs)
	})

	t.Run("with type args", func(t *testing.T) {
		tag, err := ParseTypeTag("0x1::coin::CoinStore<0x1::test_coin::AptosCoin1, 0x1::test_coin::AptosCoin2>")
		require.NoError(t, err)

		st := tag.(*StructTag)
		require.Len(t, st.TypeArgs, 2)
		assert.Equal(t, "AptosCoin1", st.TypeArgs[0].(*StructTag).Name)
		assert.Equal(t, "AptosCoin2", st.TypeArgs[1].(*StructTag).Name)
	})

	t.Run("trailing comma", func(t *testing.T) {
		withComma, err := ParseTypeTag("0x1::coin::CoinStore<0x1::test_coin::AptosCoin1, 0x1::test_coin::AptosCoin2,>")
		require.NoError(t, err)
		without, err := ParseTypeTag("0x1::coin::CoinStore<0x1::test_coin::AptosCoin1, 0x1::test_coin::AptosCoin2>")
		require.NoError(t, err)

		assert.Equal(t, without, withComma)
		assert.True(t, Equal(without, withComma))
	})

	t.Run("nested vector and struct args", func(t *testing.T) {
		tag, err := ParseTypeTag("0x1::table::Table<vector<u8>, 0x1::string::String>")
		require.NoError(t, err)

		st := tag.(*StructTag)
		require.Len(t, st.TypeArgs, 2)
		assert.Equal(t, NewVector(TypeU8), st.TypeArgs[0])
		assert.True(t, IsStringStruct(st.TypeArgs[1]))
	})

	t.Run("long address", func(t *testing.T) {
		full := "0x" + strings.Repeat("0", 63) + "1"
		tag, err := ParseTypeTag(full + "::coin::Coin")
		require.NoError(t, err)
		assert.Equal(t, "0x1::coin::Coin", tag.String())
	})
}

func TestParseTypeTagErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		msg   string
	}{
		{"missing struct name", "0x1::test_coin", ErrInvalidTypeTag, "Invalid type tag"},
		{"unbalanced type args", "0x1::test_coin::CoinStore<0x1::test_coin::AptosCoin", ErrInvalidTypeTag, "Invalid type tag"},
		{"single colon", "0x1:test_coin::AptosCoin", ErrUnrecognizedToken, "Unrecognized token"},
		{"bad hex", "0x!::test_coin::AptosCoin", ErrUnrecognizedToken, "Unrecognized token"},
		{"empty", "", ErrInvalidTypeTag, "Invalid type tag"},
		{"blank", "   ", ErrInvalidTypeTag, "Invalid type tag"},
		{"unknown keyword", "u3", ErrInvalidTypeTag, "Invalid type tag"},
		{"wrong case", "U8", ErrInvalidTypeTag, "Invalid type tag"},
		{"trailing tokens", "u8 u16", ErrInvalidTypeTag, "Invalid type tag"},
		{"trailing bracket", "u8>", ErrInvalidTypeTag, "Invalid type tag"},
		{"empty type args", "0x1::coin::Coin<>", ErrInvalidTypeTag, "Invalid type tag"},
		{"missing comma", "0x1::coin::Coin<u8 u16>", ErrInvalidTypeTag, "Invalid type tag"},
		{"double comma", "0x1::coin::Coin<u8,,>", ErrInvalidTypeTag, "Invalid type tag"},
		{"too many segments", "0x1::a::b::c", ErrInvalidTypeTag, "Invalid type tag"},
		{"bare address", "0x1", ErrInvalidTypeTag, "Invalid type tag"},
		{"dangling separator", "0x1::coin::", ErrUnrecognizedToken, "Unrecognized token"},
		{"address too long", "0x" + strings.Repeat("1", 65) + "::a::B", ErrUnrecognizedToken, "Unrecognized token"},
		{"unresolved generic", "vector<T0>", ErrInvalidTypeTag, "Invalid type tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := ParseTypeTag(tt.input)
			require.Error(t, err)
			assert.Nil(t, tag)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.msg)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseTypeTag("vector<u64 u8>")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 11, perr.Pos)
}

func TestParseGenerics(t *testing.T) {
	coin := MustParseTypeTag("0x1::aptos_coin::AptosCoin")

	t.Run("resolves placeholder", func(t *testing.T) {
		tag, err := ParseTypeTag("0x1::coin::Coin<T0>", WithTypeArgs(coin))
		require.NoError(t, err)
		assert.Equal(t, "0x1::coin::Coin<0x1::aptos_coin::AptosCoin>", tag.String())
	})

	t.Run("inside vector", func(t *testing.T) {
		tag, err := ParseTypeTag("vector<T1>", WithTypeArgs(coin, TypeU64))
		require.NoError(t, err)
		assert.Equal(t, NewVector(TypeU64), tag)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := ParseTypeTag("T2", WithTypeArgs(coin))
		assert.ErrorIs(t, err, ErrInvalidTypeTag)
	})
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("vector<", 4) + "u8" + strings.Repeat(">", 4)

	_, err := ParseTypeTag(deep)
	require.NoError(t, err)

	_, err = ParseTypeTag(deep, WithMaxDepth(4))
	assert.ErrorIs(t, err, ErrInvalidTypeTag)

	_, err = ParseTypeTag(deep, WithMaxDepth(5))
	assert.NoError(t, err)
}

func TestTypeTagStringRoundTrip(t *testing.T) {
	inputs := []string{
		"u256",
		"vector<0x1::string::String>",
		"0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>",
		"0xcafe::pool::Pool<0x1::coin::Coin<u64>, vector<address>>",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tag := MustParseTypeTag(input)
			assert.Equal(t, input, tag.String())

			again, err := ParseTypeTag(tag.String())
			require.NoError(t, err)
			assert.True(t, Equal(tag, again))
		})
	}
}

func TestParseStructTag(t *testing.T) {
	st, err := ParseStructTag("0x1::string::String")
	require.NoError(t, err)
	assert.True(t, IsStringStruct(st))

	_, err = ParseStructTag("u8")
	assert.ErrorIs(t, err, ErrInvalidTypeTag)
}

func TestMustParseTypeTagPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseTypeTag("0x1::test_coin")
	})
}
