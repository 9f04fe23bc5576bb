package storage

import (
	"bytes"
	"testing"

	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

func newHost() hostio.HostIO {
	chain := hostio.NewMockChain()
	return hostio.NewMock(chain, map[[32]byte][32]byte{}, [20]byte{0x01}, [20]byte{0x02}, u256.Zero, nil, 1_000_000)
}

func TestUint256RoundTrip(t *testing.T) {
	h := newHost()
	s := AtKey(0)
	StoreUint256(h, s, u256.FromUint64(123456))
	if got := LoadUint256(h, s); got.ToUint64() != 123456 {
		t.Errorf("got %v, want 123456", got)
	}
}

func TestPackedBoolAndUintShareSlot(t *testing.T) {
	h := newHost()
	base := AtKey(1)
	boolSlot := Slot{Key: base.Key, Offset: 0}
	uintSlot := Slot{Key: base.Key, Offset: 1}

	StoreBool(h, boolSlot, true)
	StoreUint(h, uintSlot, 4, 0xdeadbeef)

	if !LoadBool(h, boolSlot) {
		t.Errorf("bool should read back true")
	}
	if got := LoadUint(h, uintSlot, 4); got != 0xdeadbeef {
		t.Errorf("packed uint32 = %#x, want %#x", got, 0xdeadbeef)
	}

	// Writing the uint must not have clobbered the packed bool.
	StoreUint(h, uintSlot, 4, 0x11223344)
	if !LoadBool(h, boolSlot) {
		t.Errorf("packed bool clobbered by neighboring uint write")
	}
}

func TestPackedAddress(t *testing.T) {
	h := newHost()
	s := AtKeyOffset(2, 0)
	addr := evmtype.Address{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa,
		0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x01, 0x02, 0x03, 0x04, 0x05}
	StoreAddress(h, s, addr)
	if got := LoadAddress(h, s); got != addr {
		t.Errorf("got %x, want %x", got, addr)
	}
}

func TestSignedIntRoundTrip(t *testing.T) {
	h := newHost()
	s := AtKey(3)
	StoreInt(h, s, 2, -1234)
	if got := LoadInt(h, s, 2); got != -1234 {
		t.Errorf("got %d, want -1234", got)
	}
}

func TestShortByteStringRoundTrip(t *testing.T) {
	h := newHost()
	s := AtKey(4)
	data := []byte("hello")
	if err := StoreBytes(h, s, data); err != nil {
		t.Fatalf("StoreBytes: %v", err)
	}
	got, err := LoadBytes(h, s)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestLongByteStringRoundTrip(t *testing.T) {
	h := newHost()
	s := AtKey(5)
	data := bytes.Repeat([]byte{0xab}, 100)
	if err := StoreBytes(h, s, data); err != nil {
		t.Fatalf("StoreBytes: %v", err)
	}
	got, err := LoadBytes(h, s)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("long byte string mismatch, len got=%d want=%d", len(got), len(data))
	}
}

func TestLongByteStringUnalignedRoundTrip(t *testing.T) {
	h := newHost()
	s := AtKey(6)
	data := bytes.Repeat([]byte{0xcd}, 100+17)
	if err := StoreBytes(h, s, data); err != nil {
		t.Fatalf("StoreBytes: %v", err)
	}
	got, err := LoadBytes(h, s)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("unaligned long byte string mismatch")
	}
}

func TestOverLongBytesRejected(t *testing.T) {
	h := newHost()
	s := AtKey(7)
	data := make([]byte, MaxBytesLength+1)
	if err := StoreBytes(h, s, data); err != ErrOverLongBytes {
		t.Errorf("err = %v, want ErrOverLongBytes", err)
	}
}

func TestArrayPushActuallyWritesElement(t *testing.T) {
	h := newHost()
	arr := NewArray(h, AtKey(8))

	arr.Push(u256.FromUint64(10))
	arr.Push(u256.FromUint64(20))
	arr.Push(u256.FromUint64(30))

	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	for i, want := range []uint64{10, 20, 30} {
		if got := arr.GetUint256(uint64(i)).ToUint64(); got != want {
			t.Errorf("element %d = %d, want %d (push must write the value, not just bump length)", i, got, want)
		}
	}
}

func TestArraySetWithinBoundsDoesNotGrow(t *testing.T) {
	h := newHost()
	arr := NewArray(h, AtKey(9))
	arr.Push(u256.FromUint64(1))
	arr.Push(u256.FromUint64(2))

	arr.SetUint256(0, u256.FromUint64(100))
	if arr.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (overwrite must not grow)", arr.Len())
	}
	if arr.GetUint256(0).ToUint64() != 100 {
		t.Errorf("element 0 not updated")
	}
}

func TestArrayPop(t *testing.T) {
	h := newHost()
	arr := NewArray(h, AtKey(10))
	if arr.Pop() {
		t.Fatalf("Pop on empty array should return false")
	}
	arr.Push(u256.FromUint64(1))
	if !arr.Pop() {
		t.Fatalf("Pop on nonempty array should return true")
	}
	if arr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", arr.Len())
	}
}

func TestMapAddressToUint256(t *testing.T) {
	h := newHost()
	m := NewMap(h, AtKey(11))
	addr := evmtype.Address{0xaa}
	m.SetUint256ByAddress(addr, u256.FromUint64(999))
	if got := m.GetUint256ByAddress(addr).ToUint64(); got != 999 {
		t.Errorf("got %d, want 999", got)
	}

	// A different key must not collide.
	other := evmtype.Address{0xbb}
	if got := m.GetUint256ByAddress(other).ToUint64(); got != 0 {
		t.Errorf("unrelated key should read zero, got %d", got)
	}
}

func TestNestedMapAllowances(t *testing.T) {
	h := newHost()
	allowances := NewMap(h, AtKey(12))
	owner := evmtype.Address{0x01}
	spender := evmtype.Address{0x02}

	nested := allowances.NestedMap(owner)
	nested.SetUint256ByAddress(spender, u256.FromUint64(500))

	got := allowances.NestedMap(owner).GetUint256ByAddress(spender)
	if got.ToUint64() != 500 {
		t.Errorf("got %d, want 500", got.ToUint64())
	}
}

func TestMapStringKey(t *testing.T) {
	h := newHost()
	m := NewMap(h, AtKey(13))
	m.SetUint256(u256.Zero, u256.Zero) // sanity: zero key doesn't panic
	s1 := m.KeyString("alice")
	s2 := m.KeyString("bob")
	if s1.Key == s2.Key {
		t.Errorf("distinct string keys must map to distinct slots")
	}
}
