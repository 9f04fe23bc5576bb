package contract

import (
	"encoding/binary"
	"fmt"

	"github.com/example/contractlib/abi"
	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/u256"
)

// Input is an incremental cursor over a method call's argument bytes
// (calldata with the 4-byte selector already consumed), the Go
// counterpart to the original source's Input class. Each Read* method
// advances the cursor past the field it reads; dynamic fields read an
// offset word from the cursor and decode the payload at that offset
// from the start of the argument region, per Ethereum's calling
// convention — not from the start of the whole calldata including the
// selector, which is what the original source's pointer arithmetic
// literally does. Full calldata (selector included) is read-only via
// ReadSelector before any typed reads begin.
type Input struct {
	raw    []byte
	offset int
}

// NewInput wraps raw calldata bytes (selector included) for reading.
func NewInput(raw []byte) *Input { return &Input{raw: raw} }

func (in *Input) Empty() bool { return len(in.raw) == 0 }

// ReadSelector consumes the first 4 bytes as a big-endian method
// selector. All subsequent Read* calls are relative to the bytes after
// the selector, matching Ethereum's convention that argument offsets
// are relative to the start of the argument tuple, not the whole
// calldata.
func (in *Input) ReadSelector() (uint32, error) {
	if len(in.raw) < 4 {
		return 0, abi.ErrDataTooShort
	}
	sel := binary.BigEndian.Uint32(in.raw[:4])
	in.raw = in.raw[4:]
	in.offset = 0
	return sel, nil
}

func (in *Input) remaining() []byte { return in.raw[in.offset:] }

func (in *Input) readStatic(decode abi.DecodeFunc) (abi.Value, error) {
	v, n, err := decode(in.remaining())
	if err != nil {
		return abi.Value{}, err
	}
	in.offset += n
	return v, nil
}

// readDynamic reads a head-slot offset, then decodes the payload at
// that offset relative to the start of the argument region (in.raw).
func (in *Input) readDynamic(decode abi.DecodeFunc) (abi.Value, error) {
	offsetVal, n, err := abi.DecodeUint(in.remaining())
	if err != nil {
		return abi.Value{}, err
	}
	in.offset += n
	off := int(offsetVal.AsUint().ToUint32())
	if off > len(in.raw) {
		return abi.Value{}, abi.ErrDataTooShort
	}
	v, _, err := decode(in.raw[off:])
	if err != nil {
		return abi.Value{}, err
	}
	return v, nil
}

func (in *Input) ReadUint256() (u256.U256, error) {
	v, err := in.readStatic(abi.DecodeUint)
	if err != nil {
		return u256.U256{}, err
	}
	return v.AsUint(), nil
}

func (in *Input) ReadUint64() (uint64, error) {
	v, err := in.ReadUint256()
	if err != nil {
		return 0, err
	}
	return v.ToUint64(), nil
}

func (in *Input) ReadBool() (bool, error) {
	v, err := in.readStatic(abi.DecodeBool)
	if err != nil {
		return false, err
	}
	return v.AsBool(), nil
}

func (in *Input) ReadAddress() (evmtype.Address, error) {
	v, err := in.readStatic(abi.DecodeAddress)
	if err != nil {
		return evmtype.Address{}, err
	}
	return v.AsAddress(), nil
}

// ReadIntWidth reads the deliberately narrow-scope signed integer
// encoding (abi.DecodeIntWidth) at the given byte width.
func (in *Input) ReadIntWidth(width int) (int64, error) {
	v, err := in.readStatic(abi.DecodeIntWidth(width))
	if err != nil {
		return 0, err
	}
	n, _ := v.AsInt()
	return n, nil
}

func (in *Input) ReadString() (string, error) {
	v, err := in.readDynamic(abi.DecodeString)
	if err != nil {
		return "", err
	}
	return v.AsString(), nil
}

func (in *Input) ReadBytes() ([]byte, error) {
	v, err := in.readDynamic(abi.DecodeBytesValue)
	if err != nil {
		return nil, err
	}
	return v.AsBytes(), nil
}

// Eof reports whether the cursor has consumed the whole argument
// region. Dynamic fields' tail bytes don't advance the cursor (it
// tracks only the head region, per the ABI head/tail split), so Eof is
// only meaningful for an all-static argument list; callers decoding a
// method with dynamic arguments should instead just stop reading once
// they've read every declared parameter.
func (in *Input) Eof() bool { return in.offset >= len(in.raw) }

func (in *Input) String() string {
	return fmt.Sprintf("Input{%d bytes, offset %d}", len(in.raw), in.offset)
}
