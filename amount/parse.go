package amount

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse converts a decimal string into an Amount.
//
// The string is an optional integer part, an optional single '.' separator,
// and a fractional part that must be non-empty whenever a separator is
// present. Fractional digits beyond the third are rounded half-up. A value
// above Max fails with ErrTooLarge.
func Parse(s string) (_ Amount, err error) {
	defer Error.WrapP(&err)

	unitsStr, decimalsStr, hasSep := strings.Cut(s, ".")
	if hasSep && strings.Contains(decimalsStr, ".") {
		return Amount{}, fmt.Errorf("amount %q: %w", s, ErrSeparators)
	}

	var units uint64
	if unitsStr != "" || !hasSep {
		u, perr := strconv.ParseUint(unitsStr, 10, 64)
		if perr != nil {
			return Amount{}, fmt.Errorf("amount %q: %w: %w", s, ErrUnits, perr)
		}
		if u > math.MaxUint64/scale {
			return Amount{}, fmt.Errorf("amount %q: %w: the maximum amount is %v", s, ErrTooLarge, Max())
		}
		units = u * scale
	}

	if !hasSep {
		return Amount{repr: units}, nil
	}

	if decimalsStr == "" {
		return Amount{}, fmt.Errorf("amount %q: %w", s, ErrNoDecimals)
	}
	for len(decimalsStr) < 3 {
		decimalsStr += "0"
	}

	decimals, perr := strconv.ParseUint(decimalsStr, 10, 64)
	if perr != nil {
		return Amount{}, fmt.Errorf("amount %q: %w: %w", s, ErrDecimals, perr)
	}

	if len(decimalsStr) > 3 {
		divisor := uint64(1)
		for i := 3; i < len(decimalsStr); i++ {
			divisor *= 10
		}

		rem := decimals % divisor
		decimals /= divisor
		if rem >= divisor/2 {
			decimals++
		}
	}

	if math.MaxUint64-decimals < units {
		return Amount{}, fmt.Errorf("amount %q: %w: the maximum amount is %v", s, ErrTooLarge, Max())
	}

	return Amount{repr: units + decimals}, nil
}
