package storage

import (
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// Array is a dynamically-sized Solidity-layout array: its length lives
// at Slot, and its elements live in consecutive slots starting at
// keccak256(Slot), per
// https://docs.soliditylang.org/en/latest/internals/layout_in_storage.html#bytes-and-string.
//
// Elements are read and written as full-slot uint256 values
// (GetUint256/SetUint256/Push); no other element kind is provided.
type Array struct {
	slot Slot
	h    hostio.HostIO
}

// NewArray binds an Array to the given slot and host.
func NewArray(h hostio.HostIO, slot Slot) Array {
	return Array{slot: slot, h: h}
}

// Len returns the array's current element count.
func (a Array) Len() uint64 {
	return LoadUint256(a.h, a.slot).ToUint64()
}

func (a Array) elementSlot(index uint64) Slot {
	base := contentBase(a.h, a.slot)
	return Slot{Key: base.Add(u256.FromUint64(index))}
}

// GetUint256 reads the element at index as a full uint256.
func (a Array) GetUint256(index uint64) u256.U256 {
	return LoadUint256(a.h, a.elementSlot(index))
}

// SetUint256 writes the element at index, growing the array by one if
// index equals the current length. The original source's push()
// computed the element slot but never wrote the value at all (only the
// length got bumped, dropping the pushed element); this implementation
// always writes the element first, then grows the length when
// appropriate, fixing that.
func (a Array) SetUint256(index uint64, value u256.U256) {
	a.writeAndMaybeGrow(index, func(slot Slot) { StoreUint256(a.h, slot, value) })
}

// Push appends value as the new last element.
func (a Array) Push(value u256.U256) {
	a.SetUint256(a.Len(), value)
}

// Pop removes the last element by decrementing the length. Consistent
// with the original source, the element's old storage is left in
// place rather than zeroed — anything written there by a later Push to
// the same index overwrites it, and nothing reads past the current
// length.
func (a Array) Pop() bool {
	n := a.Len()
	if n == 0 {
		return false
	}
	StoreUint256(a.h, a.slot, u256.FromUint64(n-1))
	return true
}

func (a Array) writeAndMaybeGrow(index uint64, write func(Slot)) {
	oldLen := a.Len()
	write(a.elementSlot(index))
	if index == oldLen {
		StoreUint256(a.h, a.slot, u256.FromUint64(oldLen+1))
	}
}
