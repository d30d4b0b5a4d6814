package amount

import (
	"math"

	"github.com/zeebo/errs"
)

// Symbol is the display glyph for Fractal Global Credits, the dotted lunate
// sigma (U+03FE). It prefixes formatted amounts in user facing output and is
// not part of any wire format.
const Symbol = 'Ͼ'

// scale is the number of representation units per displayed credit.
const scale = 1_000

// Error is the class of errors returned by this package.
var Error = errs.Class("amount")

// Parse failure kinds. Every error returned by Parse matches exactly one of
// these with errors.Is.
var (
	ErrSeparators = Error.New("an amount can only have one decimal separator")
	ErrUnits      = Error.New("invalid integer part")
	ErrDecimals   = Error.New("invalid fractional part")
	ErrNoDecimals = Error.New("no digits after the decimal separator")
	ErrTooLarge   = Error.New("amount exceeds the maximum representable value")
	ErrNegative   = Error.New("amounts cannot be negative")
)

// Amount is a currency amount counted in thousandths of a credit.
//
// Amounts are immutable values: they are copied freely, compared with ==,
// and are safe for any number of concurrent readers.
type Amount struct {
	repr uint64
}

// FromRepr wraps a raw thousandths count. Every uint64 is a representable
// amount, so there is nothing to validate.
func FromRepr(repr uint64) Amount {
	return Amount{repr: repr}
}

// Repr returns the raw thousandths count.
func (a Amount) Repr() uint64 {
	return a.repr
}

// Min returns the smallest representable amount, zero.
func Min() Amount {
	return Amount{repr: 0}
}

// Max returns the largest representable amount, 2^64-1 thousandths.
func Max() Amount {
	return Amount{repr: math.MaxUint64}
}

// Add returns a + b. Overflow wraps; callers adding near Max must range
// check first.
func (a Amount) Add(b Amount) Amount {
	return Amount{repr: a.repr + b.repr}
}

// Sub returns a - b. The caller must ensure a >= b: underflow wraps rather
// than returning an error.
func (a Amount) Sub(b Amount) Amount {
	return Amount{repr: a.repr - b.repr}
}

// Mul returns a scaled by the integer n. Overflow wraps.
func (a Amount) Mul(n uint64) Amount {
	return Amount{repr: a.repr * n}
}

// Div returns a divided by the integer n, truncated toward zero.
func (a Amount) Div(n uint64) Amount {
	return Amount{repr: a.repr / n}
}

// Mod returns the remainder of a divided by the integer n, in thousandths.
// The modulus of n is n*1000 representation units, matching the scale:
//
//	FromRepr(12_345).Mod(10) == FromRepr(2_345)
func (a Amount) Mod(n uint64) Amount {
	return Amount{repr: a.repr % (n * scale)}
}

// Cmp compares a and b, returning -1, 0, or +1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.repr < b.repr:
		return -1
	case a.repr > b.repr:
		return 1
	}

	return 0
}

// Float64 returns the amount as units plus thousandths/1000. The conversion
// is lossy for large amounts and exists only for interchange with systems
// that require approximate numeric values; the canonical forms are the
// decimal string and the raw representation.
func (a Amount) Float64() float64 {
	return float64(a.repr) / scale
}
