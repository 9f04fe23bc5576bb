package u256

import (
	"math/big"
	"testing"
)

func toBig(u U256) *big.Int {
	b := u.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func fromBig(t *testing.T, n *big.Int) U256 {
	t.Helper()
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	n = new(big.Int).Mod(n, mod)
	b := n.FillBytes(make([]byte, 32))
	var arr [32]byte
	copy(arr[:], b)
	return FromBytes(arr)
}

func TestBytesRoundTrip(t *testing.T) {
	cases := []U256{
		Zero, Max,
		FromUint64(1),
		FromUint64(0x7fffffffffffffff),
		FromHalves(0, 0, 0, 1<<63), // top bit of the lowest 64-bit limb set
	}
	for _, c := range cases {
		got := FromBytes(c.Bytes())
		if !got.Eq(c) {
			t.Errorf("round trip mismatch: got %s want %s", got, c)
		}
	}
}

func TestAddWraps(t *testing.T) {
	got := Max.Add(FromUint64(1))
	if !got.Eq(Zero) {
		t.Errorf("Max+1 = %s, want 0", got)
	}
}

func TestAddTopBitRegime(t *testing.T) {
	// low >= 2^127 on both operands: the "clear top bit" bug in the
	// original source would corrupt this carry.
	a := FromHalves(0, 0, 1<<63, 0)
	b := FromHalves(0, 0, 1<<63, 0)
	got := a.Add(b)
	want := FromHalves(0, 1, 0, 0)
	if !got.Eq(want) {
		t.Errorf("a+b = %s, want %s", got, want)
	}
}

func TestSubWraps(t *testing.T) {
	got := Zero.Sub(FromUint64(1))
	if !got.Eq(Max) {
		t.Errorf("0-1 = %s, want Max", got)
	}
}

func TestSubSelfIsZero(t *testing.T) {
	a := FromHalves(1, 2, 3, 4)
	if !a.Sub(a).Eq(Zero) {
		t.Errorf("a-a != 0")
	}
}

func TestAddAssociative(t *testing.T) {
	a := FromHalves(0x1111, 0x2222, 0x3333, 0x4444)
	b := FromHalves(0x5555, 0x6666, 0x7777, 0x8888)
	c := FromHalves(0x9999, 0xaaaa, 0xbbbb, 0xcccc)
	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	if !left.Eq(right) {
		t.Errorf("addition not associative: %s != %s", left, right)
	}
}

func TestMulAgainstBigInt(t *testing.T) {
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	cases := []struct{ a, b *big.Int }{
		{big.NewInt(0), big.NewInt(0)},
		{big.NewInt(1), big.NewInt(1)},
		{big.NewInt(1000000007), big.NewInt(998244353)},
		{new(big.Int).Sub(mod, big.NewInt(1)), big.NewInt(2)}, // Max * 2
		{new(big.Int).Sub(mod, big.NewInt(1)), new(big.Int).Sub(mod, big.NewInt(1))},
	}
	for _, c := range cases {
		ua := fromBig(t, c.a)
		ub := fromBig(t, c.b)
		got := toBig(ua.Mul(ub))
		want := new(big.Int).Mod(new(big.Int).Mul(c.a, c.b), mod)
		if got.Cmp(want) != 0 {
			t.Errorf("%s * %s = %s, want %s", c.a, c.b, got, want)
		}
	}
}

func TestShifts(t *testing.T) {
	one := FromUint64(1)
	if got := one.Lsh(0); !got.Eq(one) {
		t.Errorf("shl 0 identity broken: %s", got)
	}
	if got := one.Lsh(128); !got.Eq(FromHalves(0, 1, 0, 0)) {
		t.Errorf("shl 128 = %s, want high=1", got)
	}
	if got := Max.Rsh(256); !got.Eq(Zero) {
		t.Errorf("rsh saturate at 256 failed: %s", got)
	}
	if got := Max.Lsh(300); !got.Eq(Zero) {
		t.Errorf("lsh saturate at 256 failed: %s", got)
	}
	// shl 1 then rsh 1 should restore a value with top bit clear.
	v := FromHalves(0, 0, 0, 0x1234)
	if got := v.Lsh(1).Rsh(1); !got.Eq(v) {
		t.Errorf("shl1/rsh1 round trip: got %s want %s", got, v)
	}
}

func TestBitwise(t *testing.T) {
	a := FromUint64(0b1100)
	b := FromUint64(0b1010)
	if got := a.And(b).ToUint64(); got != 0b1000 {
		t.Errorf("and = %b", got)
	}
	if got := a.Or(b).ToUint64(); got != 0b1110 {
		t.Errorf("or = %b", got)
	}
	if got := a.Xor(b).ToUint64(); got != 0b0110 {
		t.Errorf("xor = %b", got)
	}
}

func TestOrdering(t *testing.T) {
	small := FromUint64(1)
	big := FromHalves(1, 0, 0, 0)
	if !small.Lt(big) || big.Lt(small) {
		t.Errorf("ordering by high half broken")
	}
	if !small.Lte(small) || !small.Gte(small) {
		t.Errorf("reflexive comparisons broken")
	}
}

func TestNarrowing(t *testing.T) {
	v := FromUint64(0x1_0000_00FF)
	if got := v.ToUint8(); got != 0xFF {
		t.Errorf("ToUint8 = %x", got)
	}
	if got := v.ToUint32(); got != 0x0000_00FF {
		t.Errorf("ToUint32 = %x", got)
	}
}

func TestDivModUnimplemented(t *testing.T) {
	_, _, err := DivMod(FromUint64(4), FromUint64(2))
	if err != ErrUnimplemented {
		t.Errorf("expected ErrUnimplemented, got %v", err)
	}
}

func TestFromSliceRejectsOversize(t *testing.T) {
	if _, err := FromSlice(make([]byte, 33)); err == nil {
		t.Errorf("expected error for 33-byte input")
	}
}

func TestFromSlicePadsShort(t *testing.T) {
	got, err := FromSlice([]byte{0x7b})
	if err != nil {
		t.Fatal(err)
	}
	if got.ToUint64() != 0x7b {
		t.Errorf("got %s", got)
	}
}
