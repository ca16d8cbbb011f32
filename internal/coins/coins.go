package coins

import (
	"errors"
	"strconv"
	"strings"
)

// Hoolicoins are whole units; there is no fractional denomination.

var ErrInvalidAmount = errors.New("invalid amount")

// Format renders an amount with thousands separators, e.g. 1500 -> "1,500".
func Format(value int64) string {
	negative := value < 0
	if negative {
		value = -value
	}
	digits := strconv.FormatInt(value, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	formatted := strings.Join(groups, ",")
	if negative {
		return "-" + formatted
	}
	return formatted
}

// Parse accepts a whole-coin amount, with or without separators.
func Parse(input string) (int64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return value, nil
}
