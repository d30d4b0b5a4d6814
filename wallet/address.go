package wallet

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/zeebo/errs"
)

// AddressLen is the length, in bytes, of a raw wallet address.
const AddressLen = 7

// Prefix is the literal tag that starts every encoded wallet address.
const Prefix = "fr"

// tagByte is the reserved first byte of every address.
const tagByte = 0x00

// alphabet is the base-58 alphabet used by the address encoding.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Error is the class of errors returned by this package.
var Error = errs.Class("wallet")

// Parse failure kinds. Every error returned by Parse matches exactly one of
// these with errors.Is.
var (
	ErrPrefix   = Error.New("missing the \"fr\" tag prefix")
	ErrEncoding = Error.New("invalid base-58 encoding")
	ErrTagByte  = Error.New("first byte is not the reserved tag byte")
	ErrChecksum = Error.New("checksum verification failed")
)

// Address is the object representation of a wallet address.
//
// Addresses are immutable values: they are copied freely, compared with ==,
// and are safe for any number of concurrent readers.
type Address struct {
	data [AddressLen]byte
}

// FromData wraps raw address bytes without verification.
//
// This is the trusted construction path, reserved for data that is already
// known to be a correct address. External input must go through Parse
// instead. FromData panics if data does not start with the reserved tag
// byte: reaching that panic is a bug in the caller, not a parse failure.
func FromData(data [AddressLen]byte) Address {
	if data[0] != tagByte {
		panic(fmt.Sprintf("wallet: address %x does not start with the reserved tag byte 0x00", data))
	}

	return Address{data: data}
}

// checksum returns the 2 byte XOR chain over data.
func checksum(data []byte) (sum [2]byte) {
	for _, b := range data {
		sum[0] ^= b
		sum[1] ^= sum[0]
	}

	return sum
}

// Parse converts the encoded text form of a wallet address into an Address,
// verifying the tag prefix, the base-58 encoding, the reserved byte, and
// the checksum. It is the only constructor safe for untrusted input.
func Parse(s string) (_ Address, err error) {
	defer Error.WrapP(&err)

	if !strings.HasPrefix(s, Prefix) {
		return Address{}, fmt.Errorf("address %q: %w", s, ErrPrefix)
	}

	payload := s[len(Prefix):]

	raw, derr := base58.Decode(payload)
	if derr != nil {
		if c, pos, ok := invalidAt(payload); ok {
			return Address{}, fmt.Errorf("address %q: %w: invalid character %q at position %d: %w",
				s, ErrEncoding, c, pos+len(Prefix), derr)
		}

		return Address{}, fmt.Errorf("address %q: %w: %w", s, ErrEncoding, derr)
	}

	if len(raw) < AddressLen+2 || raw[0] != tagByte {
		return Address{}, fmt.Errorf("address %q: %w", s, ErrTagByte)
	}

	sum := checksum(raw[:AddressLen])
	if sum[0] != raw[AddressLen] || sum[1] != raw[AddressLen+1] {
		return Address{}, fmt.Errorf("address %q: %w", s, ErrChecksum)
	}

	var a Address
	copy(a.data[:], raw[:AddressLen])

	return a, nil
}

// invalidAt locates the first byte of s outside the base-58 alphabet. The
// decoder reports the offending character but not its offset, so the scan
// recovers the position for the error message.
func invalidAt(s string) (c byte, pos int, ok bool) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return s[i], i, true
		}
	}

	return 0, 0, false
}

// String returns the encoded text form: the "fr" tag followed by the
// base-58 encoding of the raw bytes and their checksum.
func (a Address) String() string {
	buf := make([]byte, AddressLen+2)
	copy(buf, a.data[:])

	sum := checksum(a.data[:])
	buf[AddressLen] = sum[0]
	buf[AddressLen+1] = sum[1]

	return Prefix + base58.Encode(buf)
}

// Raw returns the address bytes without checksum or any other verification
// mechanism. The raw form is for storage where space or fast comparison
// matters; it must never be used as an input or output format.
func (a Address) Raw() [AddressLen]byte {
	return a.data
}

// MarshalText implements encoding.TextMarshaler using the checksummed text
// form.
func (a Address) MarshalText() (text []byte, err error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, fully verifying the
// input.
func (a *Address) UnmarshalText(text []byte) (err error) {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the raw 7 byte
// form, without checksum.
func (a Address) MarshalBinary() (data []byte, err error) {
	return append([]byte(nil), a.data[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Address) UnmarshalBinary(data []byte) (err error) {
	if len(data) != AddressLen {
		return Error.New("invalid length: %d", len(data))
	}
	if data[0] != tagByte {
		return Error.Wrap(ErrTagByte)
	}

	copy(a.data[:], data)

	return nil
}
