// Package wallet provides the Fractal Global wallet address.
//
// An Address is 7 raw bytes. The first byte is the reserved tag byte 0x00,
// kept for future versions of the format; the remaining 6 bytes identify
// the account. Addresses never travel raw: the text form appends a 2 byte
// checksum, encodes the 9 byte buffer as base-58, and prepends the literal
// tag "fr".
//
//	text = "fr" + base58(address[0:7] ++ checksum[0:2])
//
// The address length is a protocol constant; changing it requires a format
// version bump via the tag byte.
//
// # Checksum
//
// The checksum is a sequential 2 byte XOR chain over the 7 raw bytes. It is
// order sensitive and deliberately not cryptographic; it catches typos, not
// forgery, and its exact bits are part of the wire format.
//
//	var checksum [2]byte
//	for _, b := range address {
//		checksum[0] ^= b
//		checksum[1] ^= checksum[0]
//	}
//
// For example the address bytes 00 11 2A 44 CD FF E0 carry the checksum
// AD 07.
//
// # Trust boundaries
//
// Parse is the only entry point for external input: it verifies the tag,
// the base-58 encoding, the reserved byte, and the checksum. FromData and
// Raw skip every check and exist for trusted paths such as dense storage;
// FromData panics when handed data that does not start with the reserved
// byte, since that is a caller bug rather than bad input.
//
//	addr := wallet.FromData([wallet.AddressLen]byte{})
//	addr.String() // "fr111111111"
package wallet
