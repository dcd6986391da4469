package moveargs

import (
	"fmt"
	"unicode/utf8"

	"github.com/branched-services/go-moveargs/bcs"
)

// DecodeArg decodes the BCS encoding of a single argument of type tag. It is
// the inverse of SerializeArg and returns:
//   - bool for bool
//   - uint8, uint16, uint32, uint64 for the fixed-width integers
//   - *big.Int for u128 and u256
//   - AccountAddress for address
//   - []byte for vector<u8>, string for 0x1::string::String
//   - []any for any other vector
//
// The whole input must be consumed.
func DecodeArg(data []byte, tag TypeTag) (any, error) {
	d := bcs.NewDeserializer(data)
	v, err := decodeArg(d, tag)
	if err != nil {
		return nil, err
	}
	if err := d.Done(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeArg(d *bcs.Deserializer, tag TypeTag) (any, error) {
	switch t := tag.(type) {
	case Primitive:
		return decodePrimitive(d, t)

	case *VectorTag:
		if t.Elem == TypeU8 {
			return d.ByteVector()
		}
		n, err := d.Uleb128()
		if err != nil {
			return nil, err
		}
		if int(n) > d.Remaining() {
			// Every element takes at least one byte.
			return nil, bcs.ErrUnexpectedEOF
		}
		out := make([]any, 0, n)
		for i := uint32(0); i < n; i++ {
			elem, err := decodeArg(d, t.Elem)
			if err != nil {
				return nil, fmt.Errorf("vector element %d: %w", i, err)
			}
			out = append(out, elem)
		}
		return out, nil

	case *StructTag:
		if !IsStringStruct(t) {
			return nil, ErrUnsupportedStructArg
		}
		str, err := d.Str()
		if err != nil {
			return nil, err
		}
		if !utf8.ValidString(str) {
			return nil, &InvalidArgError{Value: str, Types: []string{"UTF-8 string"}}
		}
		return str, nil

	default:
		return nil, ErrUnsupportedArgType
	}
}

func decodePrimitive(d *bcs.Deserializer, t Primitive) (any, error) {
	switch t {
	case TypeBool:
		return d.Bool()
	case TypeU8:
		return d.U8()
	case TypeU16:
		return d.U16()
	case TypeU32:
		return d.U32()
	case TypeU64:
		return d.U64()
	case TypeU128:
		return d.U128()
	case TypeU256:
		n, err := d.U256()
		if err != nil {
			return nil, err
		}
		return n.ToBig(), nil
	case TypeAddress:
		b, err := d.FixedBytes(AddressLength)
		if err != nil {
			return nil, err
		}
		var addr AccountAddress
		copy(addr[:], b)
		return addr, nil
	default:
		return nil, ErrUnsupportedArgType
	}
}
