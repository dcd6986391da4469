package moveargs

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/branched-services/go-moveargs/bcs"
)

// AddressLength is the size of a Move account address in bytes.
const AddressLength = 32

// AccountAddress is a 32-byte Move account address.
type AccountAddress [AddressLength]byte

// ParseAccountAddress parses a hex address such as "0x1" or a full
// 64-nibble address. The 0x prefix is optional and short forms are
// left-padded with zeros.
func ParseAccountAddress(s string) (AccountAddress, error) {
	var addr AccountAddress

	h := s
	if len(h) >= 2 && h[0] == '0' && (h[1] == 'x' || h[1] == 'X') {
		h = h[2:]
	}
	if len(h) == 0 || len(h) > 2*AddressLength {
		return addr, ErrInvalidAccountAddress
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}

	b, err := hexutil.Decode("0x" + h)
	if err != nil {
		return addr, ErrInvalidAccountAddress
	}
	copy(addr[:], common.LeftPadBytes(b, AddressLength))
	return addr, nil
}

// MustParseAccountAddress is like ParseAccountAddress but panics on error.
func MustParseAccountAddress(s string) AccountAddress {
	addr, err := ParseAccountAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// Bytes returns a copy of the address bytes.
func (a AccountAddress) Bytes() []byte {
	return common.CopyBytes(a[:])
}

// String returns the full 0x-prefixed 64-nibble form.
func (a AccountAddress) String() string {
	return hexutil.Encode(a[:])
}

// ShortString returns the address with leading zeros trimmed, e.g. "0x1".
func (a AccountAddress) ShortString() string {
	trimmed := strings.TrimLeft(hexutil.Encode(a[:])[2:], "0")
	if trimmed == "" {
		return "0x0"
	}
	return "0x" + trimmed
}

// MarshalText renders the short form.
func (a AccountAddress) MarshalText() ([]byte, error) {
	return []byte(a.ShortString()), nil
}

// UnmarshalText parses any form accepted by ParseAccountAddress.
func (a *AccountAddress) UnmarshalText(text []byte) error {
	addr, err := ParseAccountAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Serialize writes the address as 32 fixed bytes.
func (a AccountAddress) Serialize(s *bcs.Serializer) {
	s.FixedBytes(a[:])
}
