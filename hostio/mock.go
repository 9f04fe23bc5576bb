package hostio

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/contractlib/u256"
)

// MockChain is the shared, multi-contract state a Mock's Call
// implementation dispatches into: a registry other mocked contracts can
// be found in by address, used to give CallStatic/CallDelegate/etc. a
// real nested-call path in tests instead of stubbing them out.
type MockChain struct {
	Contracts map[[20]byte]func(HostIO) (success bool, returnData []byte)

	BlockNum      uint64
	BlockTime     uint64
	Chain         u256.U256
	Coinbase      [20]byte
	GasLimit      uint64
	Origin        [20]byte
	NativeBalance map[[20]byte]u256.U256
}

// NewMockChain returns an empty chain registry.
func NewMockChain() *MockChain {
	return &MockChain{Contracts: map[[20]byte]func(HostIO) (success bool, returnData []byte){}}
}

// Mock is an in-memory HostIO realization for tests and cmd/hostsim. It
// is the Go analogue of the original source's hostapi_mock.cpp: one
// Mock per invocation, each with its own storage map, bound to a shared
// MockChain for cross-contract calls.
type Mock struct {
	chain *MockChain
	log   zerolog.Logger

	self    [20]byte
	caller  [20]byte
	value   u256.U256
	input   []byte
	gas     uint64

	storage    map[[32]byte][32]byte
	transient  map[[32]byte][32]byte

	finished bool
	reverted bool
	output   []byte
}

// NewMock constructs a Mock for one invocation of the contract at self,
// called by caller with value and input, starting with gas. storage is
// the persistent per-contract store, reused across invocations of the
// same contract within chain.
func NewMock(chain *MockChain, storage map[[32]byte][32]byte, self, caller [20]byte, value u256.U256, input []byte, gas uint64) *Mock {
	id := uuid.New()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Str("invocation", id.String()).Logger()
	return &Mock{
		chain:     chain,
		log:       logger,
		self:      self,
		caller:    caller,
		value:     value,
		input:     input,
		gas:       gas,
		storage:   storage,
		transient: map[[32]byte][32]byte{},
	}
}

func (m *Mock) StorageLoad(key [32]byte) [32]byte {
	v := m.storage[key]
	m.log.Trace().Hex("key", key[:]).Hex("value", v[:]).Msg("storage load")
	return v
}

func (m *Mock) StorageStore(key [32]byte, value [32]byte) {
	m.log.Trace().Hex("key", key[:]).Hex("value", value[:]).Msg("storage store")
	m.storage[key] = value
}

func (m *Mock) TransientLoad(key [32]byte) [32]byte { return m.transient[key] }

func (m *Mock) TransientStore(key [32]byte, value [32]byte) { m.transient[key] = value }

func (m *Mock) Keccak256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(data))
	return out
}

func (m *Mock) SHA256(data []byte) [32]byte { return sha256.Sum256(data) }

// noRouteCode is the code Mock reports when the callee address isn't
// registered in the chain, distinguishing "nothing there to call" from
// a callee that ran and reverted (codeCalleeFailed).
const (
	noRouteCode      int32 = -2
	codeCalleeFailed int32 = -1
)

func (m *Mock) Call(req CallRequest) (CallResponse, error) {
	forwarded := req.Gas
	if max := ForwardGas(m.gas); forwarded > max {
		forwarded = max
	}
	m.log.Debug().Int("kind", int(req.Kind)).Hex("to", req.To[:]).Uint64("gas", forwarded).Msg("call")

	fn, ok := m.chain.Contracts[req.To]
	if !ok {
		return CallResponse{Success: false, Code: noRouteCode}, nil
	}

	var calleeValue u256.U256
	var callerForCallee [20]byte
	var selfForCallee [20]byte
	switch req.Kind {
	case CallRegular:
		calleeValue, callerForCallee, selfForCallee = req.Value, m.self, req.To
	case CallCode:
		calleeValue, callerForCallee, selfForCallee = req.Value, m.self, m.self
	case CallDelegate:
		calleeValue, callerForCallee, selfForCallee = u256.Zero, m.caller, m.self
	case CallStatic:
		calleeValue, callerForCallee, selfForCallee = u256.Zero, m.self, req.To
	}

	calleeStorage := m.storage
	if req.Kind == CallRegular || req.Kind == CallStatic {
		calleeStorage = m.storageFor(req.To)
	}

	callee := NewMock(m.chain, calleeStorage, selfForCallee, callerForCallee, calleeValue, req.Input, forwarded)
	success, out := fn(callee)
	if !success {
		return CallResponse{Success: false, Code: codeCalleeFailed, ReturnData: out}, nil
	}
	return CallResponse{Success: true, ReturnData: out}, nil
}

// storageFor returns a fresh, empty map as a stand-in for another
// contract's persistent storage; MockChain does not model multi-
// contract persistent storage beyond the calling contract, since the
// tests exercising this are about call routing and gas forwarding, not
// cross-contract storage isolation.
func (m *Mock) storageFor(addr [20]byte) map[[32]byte][32]byte {
	return map[[32]byte][32]byte{}
}

func (m *Mock) EmitLog(topics [][32]byte, data []byte) {
	evt := m.log.Info()
	for i, t := range topics {
		evt = evt.Hex(fmt.Sprintf("topic%d", i), t[:])
	}
	evt.Hex("data", data).Msg("log")
}

func (m *Mock) Finish(data []byte) {
	m.finished = true
	m.output = data
}

func (m *Mock) Revert(data []byte) {
	m.reverted = true
	m.output = data
}

// Finished reports Finish/Revert status and the data passed to
// whichever was called, for tests that drive a Mock directly or through
// contract.Run and then inspect the outcome.
func (m *Mock) Finished() (ok bool, reverted bool, data []byte) {
	return m.finished, m.reverted, m.output
}

func (m *Mock) Address() [20]byte       { return m.self }
func (m *Mock) Caller() [20]byte        { return m.caller }
func (m *Mock) CallValue() u256.U256    { return m.value }
func (m *Mock) GasLeft() uint64         { return m.gas }
func (m *Mock) TxOrigin() [20]byte      { return m.chain.Origin }
func (m *Mock) BlockNumber() uint64     { return m.chain.BlockNum }
func (m *Mock) BlockTimestamp() uint64  { return m.chain.BlockTime }
func (m *Mock) BlockCoinbase() [20]byte { return m.chain.Coinbase }
func (m *Mock) BlockGasLimit() uint64   { return m.chain.GasLimit }
func (m *Mock) ChainID() u256.U256      { return m.chain.Chain }

// ExternalBalance reads addr's native-token balance from the shared
// chain's balance table, defaulting to zero for an account never
// credited (the same "unseen key reads as the zero value" convention
// StorageLoad uses).
func (m *Mock) ExternalBalance(addr [20]byte) u256.U256 {
	return m.chain.NativeBalance[addr]
}

func (m *Mock) CallDataSize() uint32 { return uint32(len(m.input)) }

func (m *Mock) CallDataCopy(offset, size uint32) []byte {
	out := make([]byte, size)
	if int(offset) < len(m.input) {
		copy(out, m.input[offset:])
	}
	return out
}

func (m *Mock) DebugPrint(msg string) { m.log.Debug().Msg(msg) }
