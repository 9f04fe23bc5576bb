// Package evmtype holds the small value types shared by the abi and
// storage packages: the 20-byte Address and a plain byte-string wrapper.
package evmtype

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the number of bytes in an Address.
const AddressLength = 20

// Address is a 20-byte account/contract identifier. Its canonical
// 32-byte expanded form is 12 zero bytes followed by the 20 address
// bytes (right-aligned), per spec §3.2.
type Address [AddressLength]byte

// ZeroAddress is the all-zero address.
var ZeroAddress = Address{}

// AddressFromWord decodes the right-aligned 32-byte expanded form (the
// form ABI encoding and storage both use).
func AddressFromWord(w [32]byte) Address {
	var a Address
	copy(a[:], w[12:32])
	return a
}

// AddressFromHex parses a hex string, with or without a 0x/0X prefix,
// into an Address. Returns an error for non-hex digits or wrong length.
func AddressFromHex(s string) (Address, error) {
	b, err := Unhex(s)
	if err != nil {
		return Address{}, err
	}
	if len(b) != AddressLength {
		return Address{}, fmt.Errorf("evmtype: address hex must decode to %d bytes, got %d", AddressLength, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// Word returns the 32-byte right-aligned expansion.
func (a Address) Word() [32]byte {
	var w [32]byte
	copy(w[12:32], a[:])
	return w
}

func (a Address) IsZero() bool { return a == ZeroAddress }

func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// Bytes is a plain owned byte string, the result type of reading a
// dynamic `bytes` value from calldata or storage.
type Bytes []byte

func (b Bytes) String() string { return "0x" + hex.EncodeToString(b) }

// Unhex decodes a hex string, accepting an optional leading 0x/0X prefix.
// Returns an error on odd length or a non-hex digit, per spec §8's hex
// round-trip property.
func Unhex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("evmtype: odd-length hex string %q", s)
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("evmtype: invalid hex %q: %w", s, err)
	}
	return out, nil
}

// Hex encodes b as a lowercase hex string without a 0x prefix, matching
// the original source's `hex()` helper.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexWithPrefix is Hex with a leading "0x", the form most Ethereum
// tooling expects.
func HexWithPrefix(b []byte) string {
	return "0x" + strings.ToLower(hex.EncodeToString(b))
}
