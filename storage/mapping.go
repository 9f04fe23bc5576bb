package storage

import (
	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// Map is a Solidity-layout mapping: a value at key k lives at
// keccak256(h(k) . p), where p is the mapping's own slot key and h
// pads value-type keys to 32 bytes or leaves string/bytes keys
// unpadded, per
// https://docs.soliditylang.org/en/latest/internals/layout_in_storage.html#mappings-and-dynamic-arrays.
type Map struct {
	slot Slot
	h    hostio.HostIO
}

// NewMap binds a Map to the given slot and host.
func NewMap(h hostio.HostIO, slot Slot) Map {
	return Map{slot: slot, h: h}
}

func (m Map) slotFor(keyBytes []byte) Slot {
	slotKeyBytes := m.slot.Bytes32()
	merged := make([]byte, 0, len(keyBytes)+32)
	merged = append(merged, keyBytes...)
	merged = append(merged, slotKeyBytes[:]...)
	return Slot{Key: u256.FromBytes(m.h.Keccak256(merged))}
}

// KeyUint256 derives the slot for an unsigned-integer key.
func (m Map) KeyUint256(key u256.U256) Slot {
	b := key.Bytes()
	return m.slotFor(b[:])
}

// KeyAddress derives the slot for an Address key.
func (m Map) KeyAddress(key evmtype.Address) Slot {
	w := key.Word()
	return m.slotFor(w[:])
}

// KeyString derives the slot for a string key: the key's raw UTF-8
// bytes, unpadded.
func (m Map) KeyString(key string) Slot {
	return m.slotFor([]byte(key))
}

// KeyBytes derives the slot for a bytes key: the raw bytes, unpadded.
func (m Map) KeyBytes(key []byte) Slot {
	return m.slotFor(key)
}

// GetUint256 reads the mapping's value at key as a full uint256.
func (m Map) GetUint256(key u256.U256) u256.U256 {
	return LoadUint256(m.h, m.KeyUint256(key))
}

// SetUint256 writes the mapping's value at key.
func (m Map) SetUint256(key u256.U256, value u256.U256) {
	StoreUint256(m.h, m.KeyUint256(key), value)
}

// GetUint256ByAddress reads a balances[addr]-shaped mapping's value.
func (m Map) GetUint256ByAddress(key evmtype.Address) u256.U256 {
	return LoadUint256(m.h, m.KeyAddress(key))
}

// SetUint256ByAddress writes a balances[addr]-shaped mapping's value.
func (m Map) SetUint256ByAddress(key evmtype.Address, value u256.U256) {
	StoreUint256(m.h, m.KeyAddress(key), value)
}

// NestedMap returns the nested mapping rooted at key's derived slot,
// for allowances[owner][spender]-shaped double mappings.
func (m Map) NestedMap(key evmtype.Address) Map {
	return NewMap(m.h, m.KeyAddress(key))
}

// NestedArray returns the array rooted at key's derived slot.
func (m Map) NestedArray(key evmtype.Address) Array {
	return NewArray(m.h, m.KeyAddress(key))
}
