// Package storage implements Solidity-compatible storage layout on top
// of hostio's flat 32-byte key/value store: packed scalars, the
// short/long byte-string encoding, and keccak256-derived slots for
// dynamic arrays and mappings.
//
// https://docs.soliditylang.org/en/latest/internals/layout_in_storage.html
package storage

import (
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// Slot identifies one 32-byte storage word plus a sub-word byte offset,
// used when several packed values share a slot.
type Slot struct {
	Key    u256.U256
	Offset uint32
}

// InvalidSlot is the "unassigned slot" sentinel (key = u256.Max),
// mirroring the original source's StorageSlot() default constructor.
// Go's zero Slot{} is not this sentinel: it is slot 0 and IsValid.
var InvalidSlot = Slot{Key: u256.Max, Offset: 0}

// AtKey returns the slot for state variable declared at the given
// fixed key with zero offset, the common case for a top-level variable.
func AtKey(key uint64) Slot { return Slot{Key: u256.FromUint64(key)} }

// AtKeyOffset is AtKey with an explicit sub-word offset, for packed
// variables sharing a slot.
func AtKeyOffset(key uint64, offset uint32) Slot {
	return Slot{Key: u256.FromUint64(key), Offset: offset}
}

func (s Slot) IsValid() bool { return s.Key != u256.Max }

func (s Slot) Bytes32() [32]byte { return s.Key.Bytes() }

// contentBase returns the slot at which a long byte string's or
// dynamic array's content begins: keccak256 of the slot's own 32-byte
// key, per the Solidity layout rules.
func contentBase(h hostio.HostIO, s Slot) u256.U256 {
	key := s.Bytes32()
	return u256.FromBytes(h.Keccak256(key[:]))
}
