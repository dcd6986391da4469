package moveargs

import (
	"strings"

	"github.com/branched-services/go-moveargs/bcs"
)

// TypeTag describes the type of a Move value: a primitive, a vector or a
// struct with type arguments. This is a sealed interface - only Primitive,
// *VectorTag and *StructTag implement it. Type tags are immutable once built.
type TypeTag interface {
	// isTypeTag is unexported to seal the interface.
	isTypeTag()

	// String returns the canonical Move spelling of the type.
	String() string

	// Serialize writes the BCS encoding of the type tag itself.
	Serialize(s *bcs.Serializer)
}

// Primitive is a type tag without a payload.
type Primitive uint8

// Primitive type tags.
const (
	TypeBool Primitive = iota + 1
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeU128
	TypeU256
	TypeAddress
	TypeSigner
)

// Variant indices of the on-chain TypeTag enum.
const (
	variantBool uint32 = iota
	variantU8
	variantU64
	variantU128
	variantAddress
	variantSigner
	variantVector
	variantStruct
	variantU16
	variantU32
	variantU256
)

var primitiveNames = map[Primitive]string{
	TypeBool:    "bool",
	TypeU8:      "u8",
	TypeU16:     "u16",
	TypeU32:     "u32",
	TypeU64:     "u64",
	TypeU128:    "u128",
	TypeU256:    "u256",
	TypeAddress: "address",
	TypeSigner:  "signer",
}

var primitiveVariants = map[Primitive]uint32{
	TypeBool:    variantBool,
	TypeU8:      variantU8,
	TypeU16:     variantU16,
	TypeU32:     variantU32,
	TypeU64:     variantU64,
	TypeU128:    variantU128,
	TypeU256:    variantU256,
	TypeAddress: variantAddress,
	TypeSigner:  variantSigner,
}

func (Primitive) isTypeTag() {}

// String returns the Move keyword for the primitive.
func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "invalid"
}

// Serialize writes the variant index.
func (p Primitive) Serialize(s *bcs.Serializer) {
	s.Uleb128(primitiveVariants[p])
}

// VectorTag is vector<Elem>.
type VectorTag struct {
	Elem TypeTag
}

func (*VectorTag) isTypeTag() {}

// NewVector returns vector<elem>.
func NewVector(elem TypeTag) *VectorTag {
	return &VectorTag{Elem: elem}
}

// String returns "vector<elem>".
func (v *VectorTag) String() string {
	return "vector<" + v.Elem.String() + ">"
}

// Serialize writes the vector variant followed by the element tag.
func (v *VectorTag) Serialize(s *bcs.Serializer) {
	s.Uleb128(variantVector)
	v.Elem.Serialize(s)
}

// StructTag is address::module::name<type_args>.
// TypeArgs keeps source order and must not be modified after construction.
type StructTag struct {
	Address  AccountAddress
	Module   string
	Name     string
	TypeArgs []TypeTag
}

func (*StructTag) isTypeTag() {}

// String returns the canonical form with a short address, e.g.
// "0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>".
func (t *StructTag) String() string {
	var b strings.Builder
	b.WriteString(t.Address.ShortString())
	b.WriteString("::")
	b.WriteString(t.Module)
	b.WriteString("::")
	b.WriteString(t.Name)
	if len(t.TypeArgs) > 0 {
		b.WriteByte('<')
		for i, arg := range t.TypeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

// Serialize writes the struct variant, address, module, name and type args.
func (t *StructTag) Serialize(s *bcs.Serializer) {
	s.Uleb128(variantStruct)
	t.Address.Serialize(s)
	s.Str(t.Module)
	s.Str(t.Name)
	s.Uleb128(uint32(len(t.TypeArgs)))
	for _, arg := range t.TypeArgs {
		arg.Serialize(s)
	}
}

// stringStructAddress is the address of the standard library.
var stringStructAddress = AccountAddress{AddressLength - 1: 0x1}

// IsStringStruct reports whether tag is 0x1::string::String.
func IsStringStruct(tag TypeTag) bool {
	st, ok := tag.(*StructTag)
	if !ok {
		return false
	}
	return st.Address == stringStructAddress &&
		st.Module == "string" &&
		st.Name == "String" &&
		len(st.TypeArgs) == 0
}

// Equal reports whether two type tags describe the same type.
func Equal(a, b TypeTag) bool {
	switch x := a.(type) {
	case Primitive:
		y, ok := b.(Primitive)
		return ok && x == y
	case *VectorTag:
		y, ok := b.(*VectorTag)
		return ok && Equal(x.Elem, y.Elem)
	case *StructTag:
		y, ok := b.(*StructTag)
		if !ok || x.Address != y.Address || x.Module != y.Module || x.Name != y.Name {
			return false
		}
		if len(x.TypeArgs) != len(y.TypeArgs) {
			return false
		}
		for i := range x.TypeArgs {
			if !Equal(x.TypeArgs[i], y.TypeArgs[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
