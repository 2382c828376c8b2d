// Package safe provides checked numeric conversions for values coming back
// from RPC endpoints. A quantity that cannot be represented is a contract
// violation and surfaces as an error instead of a silently wrapped value.
package safe

import (
	"fmt"
	"math/big"
	"strings"
)

// Uint64 converts signed integers to uint64 while guarding against
// negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// HexQuantity parses a 0x-prefixed JSON-RPC quantity into a uint64.
func HexQuantity(s string) (uint64, error) {
	b, err := BigQuantity(s)
	if err != nil {
		return 0, err
	}
	if !b.IsUint64() {
		return 0, fmt.Errorf("quantity %s out of uint64 range", s)
	}
	return b.Uint64(), nil
}

// BigQuantity parses a 0x-prefixed JSON-RPC quantity of arbitrary size.
// Negative quantities are rejected: chain balances and gas values are
// always non-negative.
func BigQuantity(s string) (*big.Int, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || digits == "" {
		return nil, fmt.Errorf("malformed hex quantity %q", s)
	}
	b, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("malformed hex quantity %q", s)
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("negative hex quantity %q", s)
	}
	return b, nil
}
