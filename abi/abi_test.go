package abi

import (
	"bytes"
	"testing"

	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/u256"
)

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	v := UintFromUint64(0xdeadbeef)
	enc := Encode(v)
	if len(enc) != WordSize {
		t.Fatalf("uint encoding length = %d, want %d", len(enc), WordSize)
	}
	got, err := DecodeAll(DecodeUint, enc)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if got.AsUint() != v.AsUint() {
		t.Errorf("round trip mismatch: got %v want %v", got.AsUint(), v.AsUint())
	}
}

func TestEncodeBoolCanonical(t *testing.T) {
	enc := Encode(Bool(true))
	want := make([]byte, WordSize)
	want[WordSize-1] = 1
	if !bytes.Equal(enc, want) {
		t.Errorf("Encode(Bool(true)) = %x, want %x", enc, want)
	}
	v, _, err := DecodeBool(enc)
	if err != nil || !v.AsBool() {
		t.Errorf("DecodeBool round trip failed: %v, %v", v, err)
	}
}

func TestAddressEncodeDecode(t *testing.T) {
	addr, _ := evmtype.AddressFromHex("0x112233445566778899aa11223344556677889900")
	enc := Encode(Addr(addr))
	for i := 0; i < 12; i++ {
		if enc[i] != 0 {
			t.Fatalf("address word not left-zero-padded: %x", enc)
		}
	}
	v, _, err := DecodeAddress(enc)
	if err != nil || v.AsAddress() != addr {
		t.Errorf("address round trip failed: %v, %v", v, err)
	}
}

func TestIntNarrowScopeNoSignExtension(t *testing.T) {
	// A negative int8 must not sign-extend into the leading bytes: that
	// is the documented scope limit (spec §4.3 / Open Question #2).
	v := Int(1, -1) // 0xff at width 1
	enc := Encode(v)
	want := make([]byte, WordSize)
	want[WordSize-1] = 0xff
	if !bytes.Equal(enc, want) {
		t.Errorf("Encode(Int(1,-1)) = %x, want %x (no sign extension)", enc, want)
	}
	got, _, err := DecodeIntWidth(1)(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gv, gw := got.AsInt()
	if gw != 1 || gv != 0xff {
		t.Errorf("decoded int = (%d, width %d), want (255, 1)", gv, gw)
	}
}

func TestStringEncodeDecodeIntrinsic(t *testing.T) {
	v := Str("hello, world")
	enc := Encode(v)
	if len(enc)%WordSize != 0 {
		t.Fatalf("string encoding not word-aligned: %d bytes", len(enc))
	}
	got, err := DecodeAll(DecodeString, enc)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if got.AsString() != "hello, world" {
		t.Errorf("got %q, want %q", got.AsString(), "hello, world")
	}
}

func TestBytesEmptyRoundTrip(t *testing.T) {
	v := BytesValue(nil)
	enc := Encode(v)
	if len(enc) != WordSize {
		t.Fatalf("empty bytes encoding length = %d, want %d", len(enc), WordSize)
	}
	got, err := DecodeAll(DecodeBytesValue, enc)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(got.AsBytes()) != 0 {
		t.Errorf("got %x, want empty", got.AsBytes())
	}
}

func TestTupleStaticOnly(t *testing.T) {
	v := Tuple(UintFromUint64(1), Bool(true), UintFromUint64(2))
	enc := EncodeTuple(v.AsTuple()...)
	if len(enc) != 3*WordSize {
		t.Fatalf("static tuple encoding length = %d, want %d", len(enc), 3*WordSize)
	}
	decoded, _, err := DecodeTuple([]TupleField{
		{Decode: DecodeUint},
		{Decode: DecodeBool},
		{Decode: DecodeUint},
	}, enc)
	if err != nil {
		t.Fatalf("DecodeTuple: %v", err)
	}
	if decoded[0].AsUint().ToUint64() != 1 || !decoded[1].AsBool() || decoded[2].AsUint().ToUint64() != 2 {
		t.Errorf("tuple round trip mismatch: %+v", decoded)
	}
}

func TestTupleWithDynamicField(t *testing.T) {
	// (uint256, string, uint256): the string's head slot holds an offset.
	v := Tuple(UintFromUint64(7), Str("contract"), UintFromUint64(9))
	enc := EncodeTuple(v.AsTuple()...)

	offWord, _, err := DecodeUint(enc[WordSize : 2*WordSize])
	if err != nil {
		t.Fatalf("decode offset word: %v", err)
	}
	if offWord.AsUint().ToUint64() != 3*WordSize {
		t.Errorf("string offset = %d, want %d", offWord.AsUint().ToUint64(), 3*WordSize)
	}

	decoded, _, err := DecodeTuple([]TupleField{
		{Decode: DecodeUint},
		{Decode: DecodeString, Dynamic: true},
		{Decode: DecodeUint},
	}, enc)
	if err != nil {
		t.Fatalf("DecodeTuple: %v", err)
	}
	if decoded[0].AsUint().ToUint64() != 7 || decoded[1].AsString() != "contract" || decoded[2].AsUint().ToUint64() != 9 {
		t.Errorf("tuple round trip mismatch: %+v", decoded)
	}
}

func TestVectorOfStaticUints(t *testing.T) {
	elems := []Value{UintFromUint64(1), UintFromUint64(2), UintFromUint64(3)}
	enc := EncodeVector(elems...)

	n, _, err := DecodeUint(enc)
	if err != nil || n.AsUint().ToUint64() != 3 {
		t.Fatalf("length word = %v, %v", n, err)
	}

	got, err := DecodeVectorAll(DecodeUint, false, enc)
	if err != nil {
		t.Fatalf("DecodeVectorAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	for i, want := range []uint64{1, 2, 3} {
		if got[i].AsUint().ToUint64() != want {
			t.Errorf("got[%d] = %d, want %d", i, got[i].AsUint().ToUint64(), want)
		}
	}
}

func TestVectorOfDynamicStrings(t *testing.T) {
	elems := []Value{Str("a"), Str("bb"), Str("ccc")}
	enc := EncodeVector(elems...)

	got, err := DecodeVectorAll(DecodeString, true, enc)
	if err != nil {
		t.Fatalf("DecodeVectorAll: %v", err)
	}
	want := []string{"a", "bb", "ccc"}
	for i, w := range want {
		if got[i].AsString() != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i].AsString(), w)
		}
	}
}

func TestVectorEmpty(t *testing.T) {
	enc := EncodeVector()
	if len(enc) != WordSize {
		t.Fatalf("empty vector encoding length = %d, want %d", len(enc), WordSize)
	}
	got, err := DecodeVectorAll(DecodeUint, false, enc)
	if err != nil {
		t.Fatalf("DecodeVectorAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d elements, want 0", len(got))
	}
}

func TestDecodeAllTrailingDataRejected(t *testing.T) {
	enc := Encode(UintFromUint64(1))
	enc = append(enc, 0x00)
	if _, err := DecodeAll(DecodeUint, enc); err != ErrTrailingData {
		t.Errorf("err = %v, want ErrTrailingData", err)
	}
}

func TestDecodeDataTooShort(t *testing.T) {
	if _, _, err := DecodeUint([]byte{0x01, 0x02}); err != ErrDataTooShort {
		t.Errorf("err = %v, want ErrDataTooShort", err)
	}
	if _, _, err := DecodeString(make([]byte, 31)); err != ErrDataTooShort {
		t.Errorf("err = %v, want ErrDataTooShort", err)
	}
}

func TestMaxUintRoundTrip(t *testing.T) {
	v := Uint(u256.Max)
	enc := Encode(v)
	got, err := DecodeAll(DecodeUint, enc)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if got.AsUint() != u256.Max {
		t.Errorf("round trip mismatch for max uint")
	}
}
