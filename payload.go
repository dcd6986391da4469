package moveargs

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/branched-services/go-moveargs/bcs"
)

// transactionPayloadEntryFunction is the TransactionPayload variant index of
// an entry function payload.
const transactionPayloadEntryFunction uint32 = 2

// EntryFunctionPayload is the on-chain EntryFunction: module, function,
// type arguments and BCS encoded arguments.
type EntryFunctionPayload struct {
	Module   ModuleID
	Function string
	TypeArgs []TypeTag
	Args     [][]byte
}

// Serialize writes the BCS encoding of the entry function.
func (p *EntryFunctionPayload) Serialize(s *bcs.Serializer) {
	p.Module.Serialize(s)
	s.Str(p.Function)
	s.Uleb128(uint32(len(p.TypeArgs)))
	for _, tag := range p.TypeArgs {
		tag.Serialize(s)
	}
	s.Uleb128(uint32(len(p.Args)))
	for _, arg := range p.Args {
		s.ByteVector(arg)
	}
}

// Bytes returns the BCS encoding of the entry function.
func (p *EntryFunctionPayload) Bytes() []byte {
	s := bcs.NewSerializer()
	p.Serialize(s)
	return s.Bytes()
}

// TransactionPayloadBytes returns the encoding wrapped in the
// TransactionPayload enum, as embedded in a raw transaction.
func (p *EntryFunctionPayload) TransactionPayloadBytes() []byte {
	s := bcs.NewSerializer()
	s.Uleb128(transactionPayloadEntryFunction)
	p.Serialize(s)
	return s.Bytes()
}

// Hex returns the 0x-prefixed hex of TransactionPayloadBytes, the form
// wallet extensions accept for signing.
func (p *EntryFunctionPayload) Hex() string {
	return hexutil.Encode(p.TransactionPayloadBytes())
}
