package storage

import (
	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// LoadUint256 reads a full-width unsigned value; it occupies a whole
// slot, so Offset is ignored.
func LoadUint256(h hostio.HostIO, s Slot) u256.U256 {
	return u256.FromBytes(h.StorageLoad(s.Bytes32()))
}

// StoreUint256 writes a full-width unsigned value.
func StoreUint256(h hostio.HostIO, s Slot, v u256.U256) {
	h.StorageStore(s.Bytes32(), v.Bytes())
}

// LoadBool reads a packed boolean: nonzero at the slot's offset byte is
// true.
func LoadBool(h hostio.HostIO, s Slot) bool {
	word := h.StorageLoad(s.Bytes32())
	return word[s.Offset] != 0
}

// StoreBool writes a packed boolean. The whole slot is read, the one
// byte at Offset is updated, and the whole slot is written back — a
// bare 32-byte overwrite would clobber any other packed values sharing
// the slot.
func StoreBool(h hostio.HostIO, s Slot, v bool) {
	word := h.StorageLoad(s.Bytes32())
	if v {
		word[s.Offset] = 1
	} else {
		word[s.Offset] = 0
	}
	h.StorageStore(s.Bytes32(), word)
}

// LoadAddress reads a packed 20-byte address at the slot's offset.
func LoadAddress(h hostio.HostIO, s Slot) evmtype.Address {
	word := h.StorageLoad(s.Bytes32())
	var a evmtype.Address
	copy(a[:], word[s.Offset:s.Offset+evmtype.AddressLength])
	return a
}

// StoreAddress writes a packed 20-byte address, preserving the rest of
// the slot.
func StoreAddress(h hostio.HostIO, s Slot, a evmtype.Address) {
	word := h.StorageLoad(s.Bytes32())
	copy(word[s.Offset:s.Offset+evmtype.AddressLength], a[:])
	h.StorageStore(s.Bytes32(), word)
}

// LoadUint reads a big-endian unsigned integer of widthBytes bytes
// packed at the slot's offset.
func LoadUint(h hostio.HostIO, s Slot, widthBytes int) uint64 {
	word := h.StorageLoad(s.Bytes32())
	var v uint64
	for i := 0; i < widthBytes; i++ {
		v |= uint64(word[int(s.Offset)+i]) << (8 * uint(widthBytes-i-1))
	}
	return v
}

// StoreUint writes a big-endian unsigned integer of widthBytes bytes
// packed at the slot's offset, preserving the rest of the slot.
func StoreUint(h hostio.HostIO, s Slot, widthBytes int, v uint64) {
	word := h.StorageLoad(s.Bytes32())
	for i := 0; i < widthBytes; i++ {
		word[int(s.Offset)+i] = byte(v >> (8 * uint(widthBytes-i-1)))
	}
	h.StorageStore(s.Bytes32(), word)
}

// LoadInt reads a packed signed integer of widthBytes bytes, sign-
// extending to int64. Unlike the abi package's narrow-scope signed
// codec, storage integers round-trip their full value since they are
// never re-interpreted as a different width.
func LoadInt(h hostio.HostIO, s Slot, widthBytes int) int64 {
	u := LoadUint(h, s, widthBytes)
	signBit := uint64(1) << (8*uint(widthBytes) - 1)
	if u&signBit != 0 {
		u |= ^uint64(0) << (8 * uint(widthBytes))
	}
	return int64(u)
}

// StoreInt writes a packed signed integer of widthBytes bytes.
func StoreInt(h hostio.HostIO, s Slot, widthBytes int, v int64) {
	StoreUint(h, s, widthBytes, uint64(v))
}
