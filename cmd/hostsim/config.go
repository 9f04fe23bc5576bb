package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/example/contractlib/u256"
)

// Fixture describes one simulated invocation: the chain state a guest
// module sees, and the call it's invoked with. It is the TOML counterpart
// of cpp_tests/hostapi_mock.cpp's hand-built fixtures.
type Fixture struct {
	Chain ChainFixture `toml:"chain"`
	Call  CallFixture  `toml:"call"`
}

// ChainFixture fixes the block context and the storage every account in
// the simulated chain starts with.
type ChainFixture struct {
	BlockNumber    uint64           `toml:"block_number"`
	BlockTimestamp uint64           `toml:"block_timestamp"`
	ChainID        uint64           `toml:"chain_id"`
	Accounts       []AccountFixture `toml:"accounts"`
}

// AccountFixture seeds one account's storage, keyed by 32-byte hex slot.
type AccountFixture struct {
	Address string            `toml:"address"`
	Storage map[string]string `toml:"storage"`
}

// CallFixture is the invocation itself: who's calling whom, with what
// value, gas, and calldata, and which entrypoint (call vs deploy).
type CallFixture struct {
	Entry  string `toml:"entry"` // "call" or "deploy"
	Self   string `toml:"self"`
	Caller string `toml:"caller"`
	Value  string `toml:"value"` // decimal
	Gas    uint64 `toml:"gas"`
	Input  string `toml:"input"` // hex, "0x" prefix optional
}

// LoadFixture reads and decodes a TOML fixture file.
func LoadFixture(path string) (Fixture, error) {
	var f Fixture
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Fixture{}, fmt.Errorf("decoding fixture %s: %w", path, err)
	}
	return f, nil
}

func parseAddress(s string) ([20]byte, error) {
	var a [20]byte
	b, err := decodeHex(s)
	if err != nil {
		return a, err
	}
	if len(b) != 20 {
		return a, fmt.Errorf("address %q: want 20 bytes, got %d", s, len(b))
	}
	copy(a[:], b)
	return a, nil
}

func parseWord(s string) ([32]byte, error) {
	var w [32]byte
	b, err := decodeHex(s)
	if err != nil {
		return w, err
	}
	if len(b) != 32 {
		return w, fmt.Errorf("storage word %q: want 32 bytes, got %d", s, len(b))
	}
	copy(w[:], b)
	return w, nil
}

func parseValue(s string) (u256.U256, error) {
	if s == "" {
		return u256.Zero, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return u256.Zero, fmt.Errorf("value %q: not a decimal integer", s)
	}
	if n.Sign() < 0 || n.BitLen() > 256 {
		return u256.Zero, fmt.Errorf("value %q: out of u256 range", s)
	}
	var word [32]byte
	n.FillBytes(word[:])
	return u256.FromBytes(word), nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// storageMap flattens the fixture's per-account storage into the flat
// map[[32]byte][32]byte hostio.Mock keys its storage by, scoped to a
// single self account (hostsim simulates one contract instance per run,
// mirroring Mock's own single-storage-map simplification documented in
// hostio/mock.go).
func (f Fixture) storageMap(self [20]byte) (map[[32]byte][32]byte, error) {
	store := map[[32]byte][32]byte{}
	for _, acct := range f.Chain.Accounts {
		addr, err := parseAddress(acct.Address)
		if err != nil {
			return nil, err
		}
		if addr != self {
			continue
		}
		for k, v := range acct.Storage {
			key, err := parseWord(k)
			if err != nil {
				return nil, err
			}
			val, err := parseWord(v)
			if err != nil {
				return nil, err
			}
			store[key] = val
		}
	}
	return store, nil
}
