// Package u256 implements a 256-bit unsigned integer, the machine word
// this library's ABI codec and storage engine are built on top of.
//
// U256 arithmetic wraps modulo 2^256, matching EVM word semantics.
// Division and modulo are not implemented; see ErrUnimplemented.
package u256

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrUnimplemented is returned by operations this core deliberately does
// not support (division, modulo) rather than implementing incorrectly.
var ErrUnimplemented = errors.New("u256: arithmetic operation not implemented")

// U256 is an unsigned 256-bit integer, stored as two 128-bit halves each
// split into two uint64 limbs: High = (hi1<<64 | hi0), Low = (lo1<<64 | lo0).
// Value = High*2^128 + Low.
type U256 struct {
	hi1, hi0 uint64
	lo1, lo0 uint64
}

// Max is 2^256 - 1.
var Max = U256{hi1: ^uint64(0), hi0: ^uint64(0), lo1: ^uint64(0), lo0: ^uint64(0)}

// Zero is the additive identity.
var Zero = U256{}

// FromUint64 zero-extends a uint64 into the low 64 bits.
func FromUint64(v uint64) U256 {
	return U256{lo0: v}
}

// FromHalves builds a U256 from its 128-bit high and low halves, each given
// as a pair of uint64 limbs (hi1/hi0 and lo1/lo0 respectively, most
// significant limb first).
func FromHalves(hi1, hi0, lo1, lo0 uint64) U256 {
	return U256{hi1: hi1, hi0: hi0, lo1: lo1, lo0: lo0}
}

// FromBytes decodes a 32-byte big-endian buffer into a U256. b is a
// fixed-size array, so there is no length to check; callers at the
// ABI/storage boundary always have a fixed-size slot in hand.
func FromBytes(b [32]byte) U256 {
	return U256{
		hi1: beUint64(b[0:8]),
		hi0: beUint64(b[8:16]),
		lo1: beUint64(b[16:24]),
		lo0: beUint64(b[24:32]),
	}
}

// FromSlice decodes up to 32 bytes of big-endian input, treating a shorter
// slice as left-zero-padded (the common case when reading a narrower
// on-chain field). Returns an error if len(b) > 32.
func FromSlice(b []byte) (U256, error) {
	if len(b) > 32 {
		return U256{}, fmt.Errorf("u256: %d bytes exceeds 32-byte word", len(b))
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return FromBytes(buf), nil
}

func beUint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func putBeUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// Bytes emits the canonical 32-byte big-endian form.
func (u U256) Bytes() [32]byte {
	var out [32]byte
	putBeUint64(out[0:8], u.hi1)
	putBeUint64(out[8:16], u.hi0)
	putBeUint64(out[16:24], u.lo1)
	putBeUint64(out[24:32], u.lo0)
	return out
}

// Add returns u+v mod 2^256.
func (u U256) Add(v U256) U256 {
	lo0, c0 := bits.Add64(u.lo0, v.lo0, 0)
	lo1, c1 := bits.Add64(u.lo1, v.lo1, c0)
	hi0, c2 := bits.Add64(u.hi0, v.hi0, c1)
	hi1, _ := bits.Add64(u.hi1, v.hi1, c2)
	return U256{hi1: hi1, hi0: hi0, lo1: lo1, lo0: lo0}
}

// Sub returns u-v mod 2^256 (wraps on underflow).
func (u U256) Sub(v U256) U256 {
	lo0, b0 := bits.Sub64(u.lo0, v.lo0, 0)
	lo1, b1 := bits.Sub64(u.lo1, v.lo1, b0)
	hi0, b2 := bits.Sub64(u.hi0, v.hi0, b1)
	hi1, _ := bits.Sub64(u.hi1, v.hi1, b2)
	return U256{hi1: hi1, hi0: hi0, lo1: lo1, lo0: lo0}
}

// limbs returns the four 64-bit limbs, least significant first.
func (u U256) limbs() [4]uint64 { return [4]uint64{u.lo0, u.lo1, u.hi0, u.hi1} }

func fromLimbs(l [4]uint64) U256 {
	return U256{lo0: l[0], lo1: l[1], hi0: l[2], hi1: l[3]}
}

// Mul returns u*v mod 2^256. Limbs above index 3 of the full 512-bit
// product are pure overflow and discarded, mirroring the original's
// "high*high always discarded" contract one level further down (at
// 64-bit-limb granularity instead of 128-bit-half granularity).
func (u U256) Mul(v U256) U256 {
	a := u.limbs()
	b := v.limbs()
	var out [4]uint64
	for i := 0; i < 4; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j+i < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			s, c0 := bits.Add64(out[i+j], lo, 0)
			s, c1 := bits.Add64(s, carry, 0)
			out[i+j] = s
			carry = hi + c0 + c1
		}
	}
	return fromLimbs(out)
}

// Lsh returns u<<s, saturating s at 256 (result is 0 for s>=256).
func (u U256) Lsh(s uint) U256 {
	if s == 0 {
		return u
	}
	if s >= 256 {
		return Zero
	}
	l := u.limbs() // lo0,lo1,hi0,hi1
	var out [4]uint64
	limbShift := s / 64
	bitShift := s % 64
	for i := 3; i >= 0; i-- {
		srcIdx := i - int(limbShift)
		if srcIdx < 0 {
			continue
		}
		var v uint64 = l[srcIdx] << bitShift
		if bitShift != 0 && srcIdx-1 >= 0 {
			v |= l[srcIdx-1] >> (64 - bitShift)
		}
		out[i] = v
	}
	return fromLimbs(out)
}

// Rsh returns u>>s, saturating s at 256 (result is 0 for s>=256).
func (u U256) Rsh(s uint) U256 {
	if s == 0 {
		return u
	}
	if s >= 256 {
		return Zero
	}
	l := u.limbs()
	var out [4]uint64
	limbShift := s / 64
	bitShift := s % 64
	for i := 0; i < 4; i++ {
		srcIdx := i + int(limbShift)
		if srcIdx > 3 {
			continue
		}
		var v uint64 = l[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx+1 <= 3 {
			v |= l[srcIdx+1] << (64 - bitShift)
		}
		out[i] = v
	}
	return fromLimbs(out)
}

// And, Or, Xor are pairwise bitwise operations on the limb representation.
func (u U256) And(v U256) U256 {
	return U256{hi1: u.hi1 & v.hi1, hi0: u.hi0 & v.hi0, lo1: u.lo1 & v.lo1, lo0: u.lo0 & v.lo0}
}
func (u U256) Or(v U256) U256 {
	return U256{hi1: u.hi1 | v.hi1, hi0: u.hi0 | v.hi0, lo1: u.lo1 | v.lo1, lo0: u.lo0 | v.lo0}
}
func (u U256) Xor(v U256) U256 {
	return U256{hi1: u.hi1 ^ v.hi1, hi0: u.hi0 ^ v.hi0, lo1: u.lo1 ^ v.lo1, lo0: u.lo0 ^ v.lo0}
}

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v,
// comparing limbs from most to least significant.
func (u U256) Cmp(v U256) int {
	for _, pair := range [][2]uint64{{u.hi1, v.hi1}, {u.hi0, v.hi0}, {u.lo1, v.lo1}, {u.lo0, v.lo0}} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (u U256) Eq(v U256) bool { return u.Cmp(v) == 0 }
func (u U256) Lt(v U256) bool { return u.Cmp(v) < 0 }
func (u U256) Lte(v U256) bool { return u.Cmp(v) <= 0 }
func (u U256) Gt(v U256) bool { return u.Cmp(v) > 0 }
func (u U256) Gte(v U256) bool { return u.Cmp(v) >= 0 }
func (u U256) IsZero() bool   { return u == Zero }

// ToUint64 truncates to the low 64 bits, the common case for slot
// counters, lengths, and indices that never legitimately exceed 2^64.
func (u U256) ToUint64() uint64 { return u.lo0 }

// ToUint32 truncates to the low 32 bits.
func (u U256) ToUint32() uint32 { return uint32(u.lo0) }

// ToUint16 truncates to the low 16 bits.
func (u U256) ToUint16() uint16 { return uint16(u.lo0) }

// ToUint8 truncates to the low 8 bits.
func (u U256) ToUint8() uint8 { return uint8(u.lo0) }

// DivMod is explicitly unimplemented; see spec Non-goals. Calling it is a
// programmer error, surfaced as ErrUnimplemented rather than panicking, so
// callers at the contract boundary can turn it into a revert (§7).
func DivMod(U256, U256) (q, r U256, err error) {
	return U256{}, U256{}, ErrUnimplemented
}

func (u U256) String() string {
	b := u.Bytes()
	return fmt.Sprintf("%x", b)
}
