package moveargs

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/branched-services/go-moveargs/bcs"
)

// TransactionArgument is a typed argument for script-style transactions.
// This is a sealed interface - only the *Arg types in this package implement it.
type TransactionArgument interface {
	// isTransactionArgument is unexported to seal the interface.
	isTransactionArgument()

	// Serialize writes the variant index followed by the value.
	Serialize(s *bcs.Serializer) error
}

// Variant indices of the on-chain TransactionArgument enum.
const (
	argVariantU8 uint32 = iota
	argVariantU64
	argVariantU128
	argVariantAddress
	argVariantU8Vector
	argVariantBool
	argVariantU16
	argVariantU32
	argVariantU256
)

// U8Arg wraps a u8.
type U8Arg struct{ Value uint8 }

// U16Arg wraps a u16.
type U16Arg struct{ Value uint16 }

// U32Arg wraps a u32.
type U32Arg struct{ Value uint32 }

// U64Arg wraps a u64.
type U64Arg struct{ Value uint64 }

// U128Arg wraps a u128.
type U128Arg struct{ Value *big.Int }

// U256Arg wraps a u256.
type U256Arg struct{ Value *uint256.Int }

// AddressArg wraps an account address.
type AddressArg struct{ Value AccountAddress }

// U8VectorArg wraps a byte vector.
type U8VectorArg struct{ Value []byte }

// BoolArg wraps a bool.
type BoolArg struct{ Value bool }

func (*U8Arg) isTransactionArgument()       {}
func (*U16Arg) isTransactionArgument()      {}
func (*U32Arg) isTransactionArgument()      {}
func (*U64Arg) isTransactionArgument()      {}
func (*U128Arg) isTransactionArgument()     {}
func (*U256Arg) isTransactionArgument()     {}
func (*AddressArg) isTransactionArgument()  {}
func (*U8VectorArg) isTransactionArgument() {}
func (*BoolArg) isTransactionArgument()     {}

func (a *U8Arg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantU8)
	s.U8(a.Value)
	return nil
}

func (a *U16Arg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantU16)
	s.U16(a.Value)
	return nil
}

func (a *U32Arg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantU32)
	s.U32(a.Value)
	return nil
}

func (a *U64Arg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantU64)
	s.U64(a.Value)
	return nil
}

func (a *U128Arg) Serialize(s *bcs.Serializer) error {
	scratch := bcs.NewSerializer()
	scratch.Uleb128(argVariantU128)
	if err := scratch.U128(a.Value); err != nil {
		return err
	}
	s.FixedBytes(scratch.Bytes())
	return nil
}

func (a *U256Arg) Serialize(s *bcs.Serializer) error {
	if a.Value == nil {
		return bcs.ErrOutOfRange
	}
	s.Uleb128(argVariantU256)
	s.U256(a.Value)
	return nil
}

func (a *AddressArg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantAddress)
	a.Value.Serialize(s)
	return nil
}

func (a *U8VectorArg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantU8Vector)
	s.ByteVector(a.Value)
	return nil
}

func (a *BoolArg) Serialize(s *bcs.Serializer) error {
	s.Uleb128(argVariantBool)
	s.Bool(a.Value)
	return nil
}

// ArgToTransactionArgument converts value into the TransactionArgument
// variant matching tag. Bools also accept "true" and "false". Only
// primitives and vector<u8> have a variant; anything else returns
// ErrUnknownTransactionArgumentType.
func ArgToTransactionArgument(value any, tag TypeTag) (TransactionArgument, error) {
	switch t := tag.(type) {
	case Primitive:
		return primitiveToTransactionArgument(value, t)
	case *VectorTag:
		if t.Elem != TypeU8 {
			return nil, ErrUnknownTransactionArgumentType
		}
		b, err := toByteVector(value)
		if err != nil {
			return nil, err
		}
		return &U8VectorArg{Value: b}, nil
	default:
		return nil, ErrUnknownTransactionArgumentType
	}
}

func primitiveToTransactionArgument(value any, t Primitive) (TransactionArgument, error) {
	switch t {
	case TypeBool:
		b, err := EnsureBoolean(value)
		if err != nil {
			return nil, err
		}
		return &BoolArg{Value: b}, nil

	case TypeU8, TypeU16, TypeU32:
		n, err := toFixedWidth(value, t)
		if err != nil {
			return nil, err
		}
		switch t {
		case TypeU8:
			return &U8Arg{Value: uint8(n)}, nil
		case TypeU16:
			return &U16Arg{Value: uint16(n)}, nil
		default:
			return &U32Arg{Value: uint32(n)}, nil
		}

	case TypeU64:
		n, err := toUnsignedBig(value, 64)
		if err != nil {
			return nil, err
		}
		return &U64Arg{Value: n.Uint64()}, nil

	case TypeU128:
		n, err := toUnsignedBig(value, 128)
		if err != nil {
			return nil, err
		}
		return &U128Arg{Value: n}, nil

	case TypeU256:
		n, err := toUint256(value)
		if err != nil {
			return nil, err
		}
		return &U256Arg{Value: n}, nil

	case TypeAddress:
		addr, err := toAccountAddress(value)
		if err != nil {
			return nil, err
		}
		return &AddressArg{Value: addr}, nil

	default:
		return nil, ErrUnknownTransactionArgumentType
	}
}

// toByteVector accepts []byte, a string or a slice of numbers.
func toByteVector(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []byte(v), nil
	}

	s := bcs.NewSerializer()
	if err := serializeVector(value, &VectorTag{Elem: TypeU8}, s); err != nil {
		return nil, err
	}
	// Drop the length prefix written by serializeVector.
	b, err := bcs.NewDeserializer(s.Bytes()).ByteVector()
	if err != nil {
		return nil, ErrInvalidVectorArg
	}
	return b, nil
}
