package amount

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns the minimal decimal form: no separator when the
// thousandths are zero, otherwise the shortest fraction that is still
// exact. Parse(a.String()) always returns a.
func (a Amount) String() string {
	return a.text(0, false)
}

// Format implements fmt.Formatter for the %v and %s verbs.
//
// The precision selects the number of fractional digits as described in the
// package documentation. The width left-pads the result with '0' and never
// truncates. The alternate form %#v prints the raw representation together
// with the symbol-prefixed display value.
func (a Amount) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprintf(f, "amount.Amount{%d} (%c %s)", a.repr, Symbol, a.String())
			return
		}
	case 's':
	default:
		fmt.Fprintf(f, "%%!%c(amount.Amount=%d)", verb, a.repr)
		return
	}

	out := a.text(f.Precision())

	if width, ok := f.Width(); ok && len(out) < width {
		out = strings.Repeat("0", width-len(out)) + out
	}

	_, _ = io.WriteString(f, out)
}

// text renders the amount with the given precision. Precisions 0 through 2
// round half-up at the last printed digit; precisions of 3 and above
// zero-extend the exact thousandths.
func (a Amount) text(prec int, hasPrec bool) string {
	units := a.repr / scale
	frac := a.repr % scale

	switch {
	case !hasPrec:
		switch {
		case frac == 0:
			return strconv.FormatUint(units, 10)
		case frac%100 == 0:
			return fmt.Sprintf("%d.%01d", units, frac/100)
		case frac%10 == 0:
			return fmt.Sprintf("%d.%02d", units, frac/10)
		default:
			return fmt.Sprintf("%d.%03d", units, frac)
		}
	case prec == 0:
		if frac >= 500 {
			units++
		}
		return strconv.FormatUint(units, 10)
	case prec == 1:
		d := frac / 100
		if frac%100 >= 50 {
			d++
		}
		return fmt.Sprintf("%d.%01d", units, d)
	case prec == 2:
		d := frac / 10
		if frac%10 >= 5 {
			d++
		}
		return fmt.Sprintf("%d.%02d", units, d)
	default:
		s := fmt.Sprintf("%d.%03d", units, frac)
		if prec > 3 {
			s += strings.Repeat("0", prec-3)
		}
		return s
	}
}
