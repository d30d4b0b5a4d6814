package amount

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal returns the amount as an arbitrary precision decimal. The
// conversion is exact.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(a.repr), -3)
}

// FromDecimal converts d into an Amount, rounding half-up at thousandths.
// Negative values fail with ErrNegative and values above Max fail with
// ErrTooLarge.
func FromDecimal(d decimal.Decimal) (_ Amount, err error) {
	defer Error.WrapP(&err)

	if d.Sign() < 0 {
		return Amount{}, fmt.Errorf("amount %v: %w", d, ErrNegative)
	}

	repr := d.Shift(3).Round(0).BigInt()
	if !repr.IsUint64() {
		return Amount{}, fmt.Errorf("amount %v: %w: the maximum amount is %v", d, ErrTooLarge, Max())
	}

	return Amount{repr: repr.Uint64()}, nil
}
