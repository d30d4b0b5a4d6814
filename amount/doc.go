// Package amount provides the Fractal Global Credits currency amount.
//
// An Amount is a fixed point base 10 number with a scale factor of 1,000:
//
//	displayed = repr / 1000
//
// Where repr is an unsigned 64 bit integer counting thousandths of a credit.
// An internal representation of 1_654 is the external amount 1.654. Amounts
// are unsigned; no negative amount exists and the negation of an amount is
// meaningless.
//
// The representation, not the decimal string, is the interchange form when
// exactness matters. It is what the JSON and binary codecs carry.
//
// # Text format
//
//	[<digits>][.<digits>]
//
// ASCII decimal only: no sign, no grouping separators, no exponent. The
// units may be omitted (".5" is 0.5) and exactly one separator is allowed.
// A separator with no digits after it is an error.
//
// Fractional digits beyond the third are rounded half-up:
//
//	| Input      | Repr    |
//	|------------|---------|
//	| "175"      | 175_000 |
//	| "175.6"    | 175_600 |
//	| "175.6464" | 175_646 |
//	| "175.6465" | 175_647 |
//	| ".6465"    |     647 |
//
// # Formatting
//
// Amount implements fmt.Formatter for the %v and %s verbs. Without an
// explicit precision the minimal form is printed: no separator when the
// thousandths are zero, and no trailing zeros otherwise. An explicit
// precision below 3 rounds half-up; a precision of 3 or more zero-extends,
// since the representation has nothing finer than thousandths. A width
// pads on the left with '0' and never truncates.
//
//	fmt.Sprintf("%v", amount.FromRepr(56_000))     // "56"
//	fmt.Sprintf("%.2v", amount.FromRepr(56_000))   // "56.00"
//	fmt.Sprintf("%05.1v", amount.FromRepr(56_000)) // "056.0"
//	fmt.Sprintf("%.0v", amount.FromRepr(1_500))    // "2"
package amount
