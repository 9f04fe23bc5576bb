package storage

import (
	"errors"
	"fmt"

	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// MaxBytesLength is the ceiling on a stored byte string's length; a
// longer value returns ErrOverLongBytes rather than being written or
// read, matching the original source's guard in
// decode_bytes_or_string_from_slot.
const MaxBytesLength = 2048

// ErrOverLongBytes is returned when a stored or to-be-stored byte
// string exceeds MaxBytesLength.
var ErrOverLongBytes = errors.New("storage: byte string exceeds maximum length")

// LoadBytes decodes a `bytes`/`string` value from slot, per Solidity's
// layout: values of 31 bytes or fewer live entirely in the slot itself
// (payload plus a length*2 marker byte); longer values store
// length*2+1 in the slot and the payload in slots starting at
// keccak256(slot).
func LoadBytes(h hostio.HostIO, s Slot) ([]byte, error) {
	word := h.StorageLoad(s.Bytes32())

	marker := word[31]
	if marker%2 == 0 {
		length := int(marker) / 2
		if length > 31 {
			return nil, fmt.Errorf("storage: invalid short byte-string marker %d", marker)
		}
		out := make([]byte, length)
		copy(out, word[:length])
		return out, nil
	}

	lengthWord := u256.FromBytes(word)
	length := int((lengthWord.ToUint64() - 1) / 2)
	if length > MaxBytesLength {
		return nil, ErrOverLongBytes
	}

	out := make([]byte, length)
	base := contentBase(h, s)
	full := length / 32
	for i := 0; i < full; i++ {
		itemSlot := base.Add(u256.FromUint64(uint64(i)))
		item := h.StorageLoad(itemSlot.Bytes())
		copy(out[i*32:], item[:])
	}
	if rem := length % 32; rem != 0 {
		itemSlot := base.Add(u256.FromUint64(uint64(full)))
		item := h.StorageLoad(itemSlot.Bytes())
		copy(out[length-rem:], item[:rem])
	}
	return out, nil
}

// StoreBytes encodes and writes a `bytes`/`string` value at slot using
// the same short/long split LoadBytes decodes.
func StoreBytes(h hostio.HostIO, s Slot, data []byte) error {
	length := len(data)
	if length > MaxBytesLength {
		return ErrOverLongBytes
	}

	if length <= 31 {
		var word [32]byte
		copy(word[:], data)
		word[31] = byte(length * 2)
		h.StorageStore(s.Bytes32(), word)
		return nil
	}

	lengthWord := u256.FromUint64(uint64(length*2 + 1))
	h.StorageStore(s.Bytes32(), lengthWord.Bytes())

	base := contentBase(h, s)
	full := length / 32
	for i := 0; i < full; i++ {
		var item [32]byte
		copy(item[:], data[i*32:(i+1)*32])
		itemSlot := base.Add(u256.FromUint64(uint64(i)))
		h.StorageStore(itemSlot.Bytes(), item)
	}
	if rem := length % 32; rem != 0 {
		var item [32]byte
		copy(item[:], data[length-rem:])
		itemSlot := base.Add(u256.FromUint64(uint64(full)))
		h.StorageStore(itemSlot.Bytes(), item)
	}
	return nil
}
