// Package hostio defines the narrow import surface a contract links
// against to reach its host: storage, hashing, the four call flavors,
// logs, and the finish/revert return convention. Exactly one
// implementation is linked into any given build: Mock for tests and
// cmd/hostsim, or the //go:wasmimport guest realization in wasm.go for
// an actual wasm32 build.
package hostio

import "github.com/example/contractlib/u256"

// CallKind selects which of the four EVM call flavors HostIO.Call
// performs. The original source exposes these as four separate
// functions with near-identical bodies; this package unifies them
// behind one signature and branches internally, since Go's host import
// boundary (an interface, not four raw syscalls) makes that
// unification free.
type CallKind int

const (
	// CallRegular transfers value and runs in the callee's own context.
	CallRegular CallKind = iota
	// CallCode runs the callee's code in the caller's storage/context,
	// and may transfer value.
	CallCode
	// CallDelegate runs the callee's code in the caller's storage and
	// context; the value passed to the callee is always zero.
	CallDelegate
	// CallStatic runs the callee's code read-only; any state-changing
	// host call made during it must revert the whole call.
	CallStatic
)

// CallRequest bundles one outbound call's parameters. Value is ignored
// (treated as zero) for CallDelegate and CallStatic, per spec §4.2.
type CallRequest struct {
	Kind    CallKind
	Gas     uint64
	To      [20]byte
	Value   u256.U256
	Input   []byte
}

// CallResponse is the result of an outbound call: Success mirrors the
// callee's own success/revert outcome (not a host I/O failure), Code is
// the host's raw result code (0 on success, a nonzero host-assigned code
// identifying the failure otherwise — unrouted call, callee revert,
// out-of-gas, ...), and ReturnData is whatever the callee finished or
// reverted with.
type CallResponse struct {
	Success    bool
	Code       int32
	ReturnData []byte
}

// HostIO is the import surface a contract is built against. An
// implementation owns all I/O with the outside world; everything in
// this module above the hostio package is pure logic layered on top of
// it.
type HostIO interface {
	// StorageLoad reads the 32-byte word at key, returning an all-zero
	// word for a never-written key (the EVM default).
	StorageLoad(key [32]byte) [32]byte
	// StorageStore writes the 32-byte word at key.
	StorageStore(key [32]byte, value [32]byte)

	// TransientLoad/TransientStore are the EIP-1153 transient storage
	// counterparts, cleared at the end of the outermost call.
	TransientLoad(key [32]byte) [32]byte
	TransientStore(key [32]byte, value [32]byte)

	// Keccak256 and SHA256 are the two hash primitives the host exposes;
	// Keccak256 is Ethereum's canonical hash, SHA256 is the NIST
	// primitive some precompile-adjacent logic needs.
	Keccak256(data []byte) [32]byte
	SHA256(data []byte) [32]byte

	// Call performs one outbound call of the given kind, applying the
	// EIP-150 63/64ths gas-forwarding rule when req.Gas exceeds what the
	// current call has left (spec §4.2/§9).
	Call(req CallRequest) (CallResponse, error)

	// EmitLog appends an event log entry with up to four topics (the
	// first being the event signature hash, by convention, not enforced
	// here) and an opaque data payload.
	EmitLog(topics [][32]byte, data []byte)

	// Finish ends the current call successfully, returning data to the
	// caller. Revert ends it with a revert, returning data as the
	// revert reason payload. Both are terminal: callers invoke one of
	// them at most once per invocation.
	Finish(data []byte)
	Revert(data []byte)

	// Address, Caller, CallValue, and GasLeft expose the current
	// invocation's context. They are re-read on every call rather than
	// cached, since gas in particular changes within a single
	// invocation (spec §4.5/§9).
	Address() [20]byte
	Caller() [20]byte
	CallValue() u256.U256
	GasLeft() uint64

	// TxOrigin is the externally-owned account that originated the
	// outermost transaction, constant across every nested call within it
	// (spec §4.5's tx_origin).
	TxOrigin() [20]byte

	// ExternalBalance reads any account's native-token balance, not just
	// the current contract's own (spec §4.5's external_balance).
	ExternalBalance(addr [20]byte) u256.U256

	// BlockNumber, BlockTimestamp, BlockCoinbase, and BlockGasLimit
	// expose block-level context.
	BlockNumber() uint64
	BlockTimestamp() uint64
	BlockCoinbase() [20]byte
	BlockGasLimit() uint64
	ChainID() u256.U256

	// CallDataSize and CallDataCopy expose the raw input buffer; Input
	// in the contract package wraps these into typed field reads.
	CallDataSize() uint32
	CallDataCopy(offset, size uint32) []byte

	// DebugPrint writes a debug trace line. The wasm build always
	// forwards it to the host's debug_print import (there is no build tag
	// that turns it off), and Mock logs it at debug level.
	DebugPrint(msg string)
}

// ForwardGas applies the EIP-150 rule: at most 63/64ths of gasLeft may
// be forwarded to a nested call, with the remainder held back for the
// caller to keep running after the call returns.
func ForwardGas(gasLeft uint64) uint64 {
	return gasLeft - gasLeft/64
}
