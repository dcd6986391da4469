package moveargs

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/branched-services/go-moveargs/bcs"
)

// SerializeArg writes the BCS encoding of value interpreted as tag into s.
//
// Accepted values per type:
//   - bool: a Go bool only
//   - u8, u16, u32: Go integers, integral floats or a base-10 string
//   - u64, u128, u256: as above plus *big.Int, *uint256.Int and 0x hex strings
//   - address: an AccountAddress or a hex string such as "0x1"
//   - vector<u8>: []byte, a string (UTF-8 bytes) or any slice of numbers
//   - vector<T>: any slice or array whose elements are accepted by T
//   - 0x1::string::String: a string
//
// On error s is left unchanged.
func SerializeArg(value any, tag TypeTag, s *bcs.Serializer) error {
	scratch := bcs.NewSerializer()
	if err := serializeArg(value, tag, scratch); err != nil {
		return err
	}
	s.FixedBytes(scratch.Bytes())
	return nil
}

// SerializeArgToBytes returns the BCS encoding of value interpreted as tag.
func SerializeArgToBytes(value any, tag TypeTag) ([]byte, error) {
	s := bcs.NewSerializer()
	if err := serializeArg(value, tag, s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func serializeArg(value any, tag TypeTag, s *bcs.Serializer) error {
	switch t := tag.(type) {
	case Primitive:
		return serializePrimitive(value, t, s)
	case *VectorTag:
		return serializeVector(value, t, s)
	case *StructTag:
		if !IsStringStruct(t) {
			return ErrUnsupportedStructArg
		}
		str, ok := value.(string)
		if !ok || !utf8.ValidString(str) {
			return &InvalidArgError{Value: value, Types: []string{"UTF-8 string"}}
		}
		s.Str(str)
		return nil
	default:
		return ErrUnsupportedArgType
	}
}

func serializePrimitive(value any, t Primitive, s *bcs.Serializer) error {
	switch t {
	case TypeBool:
		b, ok := value.(bool)
		if !ok {
			return &InvalidArgError{Value: value, Types: []string{"boolean"}}
		}
		s.Bool(b)

	case TypeU8, TypeU16, TypeU32:
		n, err := toFixedWidth(value, t)
		if err != nil {
			return err
		}
		switch t {
		case TypeU8:
			s.U8(uint8(n))
		case TypeU16:
			s.U16(uint16(n))
		default:
			s.U32(uint32(n))
		}

	case TypeU64:
		n, err := toUnsignedBig(value, 64)
		if err != nil {
			return err
		}
		s.U64(n.Uint64())

	case TypeU128:
		n, err := toUnsignedBig(value, 128)
		if err != nil {
			return err
		}
		return s.U128(n)

	case TypeU256:
		n, err := toUint256(value)
		if err != nil {
			return err
		}
		s.U256(n)

	case TypeAddress:
		addr, err := toAccountAddress(value)
		if err != nil {
			return err
		}
		addr.Serialize(s)

	default:
		// signer and invalid primitives have no argument encoding.
		return ErrUnsupportedArgType
	}
	return nil
}

var fixedWidthMax = map[Primitive]int64{
	TypeU8:  math.MaxUint8,
	TypeU16: math.MaxUint16,
	TypeU32: math.MaxUint32,
}

// toFixedWidth coerces value with EnsureNumber and checks it fits t.
func toFixedWidth(value any, t Primitive) (int64, error) {
	n, err := EnsureNumber(value)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > fixedWidthMax[t] {
		return 0, fmt.Errorf("%w: %d does not fit in %s", bcs.ErrOutOfRange, n, t)
	}
	return n, nil
}

// toUnsignedBig coerces value with EnsureBigInt and checks it fits in bits.
func toUnsignedBig(value any, bits int) (*big.Int, error) {
	n, err := EnsureBigInt(value)
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 || n.BitLen() > bits {
		return nil, fmt.Errorf("%w: %s does not fit in u%d", bcs.ErrOutOfRange, n, bits)
	}
	return n, nil
}

func toUint256(value any) (*uint256.Int, error) {
	if u, ok := value.(*uint256.Int); ok && u != nil {
		return new(uint256.Int).Set(u), nil
	}
	n, err := toUnsignedBig(value, 256)
	if err != nil {
		return nil, err
	}
	u, _ := uint256.FromBig(n)
	return u, nil
}

func toAccountAddress(value any) (AccountAddress, error) {
	switch v := value.(type) {
	case AccountAddress:
		return v, nil
	case *AccountAddress:
		if v == nil {
			return AccountAddress{}, ErrInvalidAccountAddress
		}
		return *v, nil
	case string:
		return ParseAccountAddress(v)
	default:
		return AccountAddress{}, ErrInvalidAccountAddress
	}
}

func serializeVector(value any, t *VectorTag, s *bcs.Serializer) error {
	if t.Elem == TypeU8 {
		switch v := value.(type) {
		case []byte:
			s.ByteVector(v)
			return nil
		case string:
			s.Str(v)
			return nil
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return ErrInvalidVectorArg
	}
	if uint64(rv.Len()) > math.MaxUint32 {
		return ErrInvalidVectorArg
	}

	s.Uleb128(uint32(rv.Len()))
	for i := 0; i < rv.Len(); i++ {
		if err := serializeArg(rv.Index(i).Interface(), t.Elem, s); err != nil {
			return fmt.Errorf("vector element %d: %w", i, err)
		}
	}
	return nil
}
