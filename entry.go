package moveargs

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EntryMode selects how a raw form field is read for a vector argument.
type EntryMode uint8

const (
	// EntryString keeps the text as a string (UTF-8 bytes for vector<u8>).
	EntryString EntryMode = iota

	// EntryHex reads the text as hex bytes, e.g. "0x616263".
	EntryHex

	// EntryDecimal reads the text as comma separated integers, e.g. "[97, 98, 99]".
	EntryDecimal
)

var entryModeNames = map[EntryMode]string{
	EntryString:  "string",
	EntryHex:     "hex",
	EntryDecimal: "decimal",
}

func (m EntryMode) String() string {
	if name, ok := entryModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("EntryMode(%d)", uint8(m))
}

// ParseEntryMode returns the mode named s ("string", "hex" or "decimal").
func ParseEntryMode(s string) (EntryMode, error) {
	for mode, name := range entryModeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("moveargs: unknown entry mode %q", s)
}

// ParseEntry converts raw form text into a value accepted by SerializeArg:
// a string, a []byte for hex entry, or a []any of *big.Int for decimal entry.
// Malformed hex or decimal text returns an error matching ErrInvalidVectorArg.
func ParseEntry(raw string, mode EntryMode) (any, error) {
	switch mode {
	case EntryString:
		return raw, nil
	case EntryHex:
		return parseHexEntry(raw)
	case EntryDecimal:
		return parseDecimalEntry(raw)
	default:
		return nil, fmt.Errorf("moveargs: unknown entry mode %d", mode)
	}
}

func parseHexEntry(raw string) ([]byte, error) {
	h := strings.Join(strings.Fields(raw), "")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h)%2 == 1 {
		h = "0" + h
	}
	b, err := hexutil.Decode("0x" + h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVectorArg, err)
	}
	return b, nil
}

func parseDecimalEntry(raw string) ([]any, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "["), "]")
	if strings.TrimSpace(body) == "" {
		return []any{}, nil
	}

	fields := strings.Split(body, ",")
	out := make([]any, 0, len(fields))
	for i, field := range fields {
		n, ok := new(big.Int).SetString(strings.TrimSpace(field), 10)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is not a decimal number", ErrInvalidVectorArg, i)
		}
		out = append(out, n)
	}
	return out, nil
}
