package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseCoins parses a decimal coin balance. Empty input is zero; negative or
// non-numeric input is an error.
func ParseCoins(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coin balance %q: %w", s, err)
	}
	return v, nil
}

// CoinsFromBig converts an on-chain integer to a coin amount.
func CoinsFromBig(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if v.Sign() < 0 {
		return 0, fmt.Errorf("negative coin amount %s", v.String())
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("coin amount %s overflows uint64", v.String())
	}
	return v.Uint64(), nil
}

// InsufficientBalanceMessage is shown when a fee exceeds the balance.
func InsufficientBalanceMessage(action string, fee, balance uint64) string {
	return fmt.Sprintf("insufficient balance: %s costs %d coins, current balance is %d coins", action, fee, balance)
}
