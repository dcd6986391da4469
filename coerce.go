package moveargs

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// EnsureBoolean accepts a bool or the exact strings "true" and "false".
func EnsureBoolean(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		switch val {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, ErrInvalidBooleanString
}

// EnsureNumber accepts Go integers, integral floats, *big.Int values that fit
// in an int64, or a base-10 integer string.
func EnsureNumber(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return uintToNumber(uint64(val))
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return uintToNumber(val)
	case float32:
		return floatToNumber(float64(val))
	case float64:
		return floatToNumber(val)
	case *big.Int:
		if val == nil || !val.IsInt64() {
			return 0, ErrInvalidNumberString
		}
		return val.Int64(), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, ErrInvalidNumberString
		}
		return n, nil
	default:
		return 0, &InvalidArgError{Value: v, Types: []string{"number", "string"}}
	}
}

func uintToNumber(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, ErrInvalidNumberString
	}
	return int64(v), nil
}

func floatToNumber(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrInvalidNumberString
	}
	return int64(f), nil
}

// EnsureBigInt accepts Go integers, integral floats, *big.Int, *uint256.Int
// or a decimal or 0x-prefixed hex string. Anything that cannot be converted
// returns a *ConversionError.
func EnsureBigInt(v any) (*big.Int, error) {
	switch val := v.(type) {
	case int:
		return big.NewInt(int64(val)), nil
	case int8:
		return big.NewInt(int64(val)), nil
	case int16:
		return big.NewInt(int64(val)), nil
	case int32:
		return big.NewInt(int64(val)), nil
	case int64:
		return big.NewInt(val), nil
	case uint:
		return new(big.Int).SetUint64(uint64(val)), nil
	case uint8:
		return big.NewInt(int64(val)), nil
	case uint16:
		return big.NewInt(int64(val)), nil
	case uint32:
		return big.NewInt(int64(val)), nil
	case uint64:
		return new(big.Int).SetUint64(val), nil
	case float32:
		return floatToBigInt(float64(val))
	case float64:
		return floatToBigInt(val)
	case *big.Int:
		if val == nil {
			return nil, &ConversionError{Value: v}
		}
		return new(big.Int).Set(val), nil
	case *uint256.Int:
		if val == nil {
			return nil, &ConversionError{Value: v}
		}
		return val.ToBig(), nil
	case string:
		return stringToBigInt(val)
	default:
		return nil, &InvalidArgError{Value: v, Types: []string{"number", "bigint", "string"}}
	}
}

func floatToBigInt(f float64) (*big.Int, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return nil, &ConversionError{Value: f}
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, nil
}

func stringToBigInt(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	base := 10
	digits := trimmed
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		base = 16
		digits = trimmed[2:]
	}
	// Stricter than a JS BigInt, which reads "" as 0 and accepts a leading '+'.
	if digits == "" || digits[0] == '+' || (base == 16 && digits[0] == '-') {
		return nil, &ConversionError{Value: s}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, &ConversionError{Value: s}
	}
	return n, nil
}
