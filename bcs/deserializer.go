package bcs

import (
	"encoding/binary"
	"math/big"

	"github.com/holiman/uint256"
)

// Deserializer reads values written by Serializer.
type Deserializer struct {
	data []byte
	off  int
}

// NewDeserializer creates a deserializer over data.
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{data: data}
}

// Remaining returns the number of unread bytes.
func (d *Deserializer) Remaining() int {
	return len(d.data) - d.off
}

// Done returns ErrTrailingBytes if any input is left unread.
func (d *Deserializer) Done() error {
	if d.Remaining() != 0 {
		return ErrTrailingBytes
	}
	return nil
}

func (d *Deserializer) read(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b, nil
}

// Bool reads a single 0x00 or 0x01 byte.
func (d *Deserializer) Bool() (bool, error) {
	b, err := d.read(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// U8 reads a single byte.
func (d *Deserializer) U8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads 2 little-endian bytes.
func (d *Deserializer) U16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 reads 4 little-endian bytes.
func (d *Deserializer) U32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 reads 8 little-endian bytes.
func (d *Deserializer) U64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// U128 reads 16 little-endian bytes.
func (d *Deserializer) U128() (*big.Int, error) {
	b, err := d.read(U128Size)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(reversed(b)), nil
}

// U256 reads 32 little-endian bytes.
func (d *Deserializer) U256() (*uint256.Int, error) {
	b, err := d.read(U256Size)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(reversed(b)), nil
}

// Uleb128 reads an unsigned LEB128 varint of at most 32 bits.
func (d *Deserializer) Uleb128() (uint32, error) {
	var v uint64
	for i := 0; i < MaxUleb128Size; i++ {
		b, err := d.U8()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b&uleb128Continue == 0 {
			// A zero final byte after the first means a padded encoding.
			if i > 0 && b == 0 {
				return 0, ErrNonCanonicalUleb128
			}
			if v > 0xffffffff {
				return 0, ErrUleb128Overflow
			}
			return uint32(v), nil
		}
	}
	return 0, ErrUleb128Overflow
}

// ByteVector reads a ULEB128 length and that many bytes.
func (d *Deserializer) ByteVector() ([]byte, error) {
	n, err := d.Uleb128()
	if err != nil {
		return nil, err
	}
	b, err := d.read(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Str reads a byte vector as a string.
func (d *Deserializer) Str() (string, error) {
	b, err := d.ByteVector()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FixedBytes reads exactly n bytes.
func (d *Deserializer) FixedBytes(n int) ([]byte, error) {
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
