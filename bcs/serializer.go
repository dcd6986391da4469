// Package bcs implements the Binary Canonical Serialization primitives used to
// encode Move transaction arguments: little-endian fixed-width integers,
// ULEB128 lengths and length-prefixed byte sequences.
package bcs

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

// Encoding constants.
const (
	// U128Size is the encoded width of a u128 in bytes.
	U128Size = 16

	// U256Size is the encoded width of a u256 in bytes.
	U256Size = 32

	// MaxUleb128Size is the longest ULEB128 encoding of a u32.
	MaxUleb128Size = 5

	// uleb128Continue is set on every ULEB128 byte except the last.
	uleb128Continue = 0x80
)

var (
	// ErrOutOfRange indicates a value that doesn't fit the target width.
	ErrOutOfRange = errors.New("bcs: value out of range")

	// ErrUnexpectedEOF indicates the input ended before a value was complete.
	ErrUnexpectedEOF = errors.New("bcs: unexpected end of input")

	// ErrInvalidBool indicates a bool byte other than 0 or 1.
	ErrInvalidBool = errors.New("bcs: invalid bool encoding")

	// ErrUleb128Overflow indicates a ULEB128 length that exceeds u32.
	ErrUleb128Overflow = errors.New("bcs: uleb128 overflows u32")

	// ErrNonCanonicalUleb128 indicates a ULEB128 value encoded with more bytes than needed.
	ErrNonCanonicalUleb128 = errors.New("bcs: non-canonical uleb128 encoding")

	// ErrTrailingBytes indicates input left over after decoding a value.
	ErrTrailingBytes = errors.New("bcs: trailing bytes after value")
)

// Serializer is an append-only byte sink.
// The zero value is ready to use.
type Serializer struct {
	buf []byte
}

// NewSerializer creates an empty serializer.
func NewSerializer() *Serializer {
	return &Serializer{buf: make([]byte, 0, 64)}
}

// Bytes returns the bytes written so far.
func (s *Serializer) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes written so far.
func (s *Serializer) Len() int {
	return len(s.buf)
}

// Bool writes 0x01 for true and 0x00 for false.
func (s *Serializer) Bool(v bool) {
	if v {
		s.buf = append(s.buf, 1)
		return
	}
	s.buf = append(s.buf, 0)
}

// U8 writes a single byte.
func (s *Serializer) U8(v uint8) {
	s.buf = append(s.buf, v)
}

// U16 writes v as 2 little-endian bytes.
func (s *Serializer) U16(v uint16) {
	s.buf = binary.LittleEndian.AppendUint16(s.buf, v)
}

// U32 writes v as 4 little-endian bytes.
func (s *Serializer) U32(v uint32) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}

// U64 writes v as 8 little-endian bytes.
func (s *Serializer) U64(v uint64) {
	s.buf = binary.LittleEndian.AppendUint64(s.buf, v)
}

// U128 writes v as 16 little-endian bytes.
// Negative values and values wider than 128 bits return ErrOutOfRange.
func (s *Serializer) U128(v *big.Int) error {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return ErrOutOfRange
	}
	be := v.FillBytes(make([]byte, U128Size))
	s.appendReversed(be)
	return nil
}

// U256 writes v as 32 little-endian bytes.
func (s *Serializer) U256(v *uint256.Int) {
	be := v.Bytes32()
	s.appendReversed(be[:])
}

// Uleb128 writes v as an unsigned LEB128 varint.
func (s *Serializer) Uleb128(v uint32) {
	for v >= uleb128Continue {
		s.buf = append(s.buf, byte(v&0x7f)|uleb128Continue)
		v >>= 7
	}
	s.buf = append(s.buf, byte(v))
}

// ByteVector writes a ULEB128 length followed by b.
func (s *Serializer) ByteVector(b []byte) {
	s.Uleb128(uint32(len(b)))
	s.buf = append(s.buf, b...)
}

// Str writes the UTF-8 bytes of v as a byte vector.
func (s *Serializer) Str(v string) {
	s.Uleb128(uint32(len(v)))
	s.buf = append(s.buf, v...)
}

// FixedBytes writes b without a length prefix.
func (s *Serializer) FixedBytes(b []byte) {
	s.buf = append(s.buf, b...)
}

func (s *Serializer) appendReversed(be []byte) {
	for i := len(be) - 1; i >= 0; i-- {
		s.buf = append(s.buf, be[i])
	}
}
