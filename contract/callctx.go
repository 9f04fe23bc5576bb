package contract

import (
	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// Context exposes the current invocation's environment. Unlike the
// original source's get_msg_sender/get_gas_left/... family, which each
// memoize into a process-global static on first read, Context holds no
// state of its own and re-reads hostio on every call: gas left changes
// within a single invocation as the contract does work, and a cached
// value would silently go stale (spec §4.5/§9).
type Context struct {
	h hostio.HostIO
}

// NewContext binds a Context to the current invocation's host.
func NewContext(h hostio.HostIO) *Context { return &Context{h: h} }

func (c *Context) Caller() evmtype.Address  { return evmtype.Address(c.h.Caller()) }
func (c *Context) Address() evmtype.Address { return evmtype.Address(c.h.Address()) }
func (c *Context) CallValue() u256.U256     { return c.h.CallValue() }
func (c *Context) GasLeft() uint64          { return c.h.GasLeft() }
func (c *Context) TxOrigin() evmtype.Address { return evmtype.Address(c.h.TxOrigin()) }
func (c *Context) BlockNumber() uint64       { return c.h.BlockNumber() }
func (c *Context) BlockTimestamp() uint64    { return c.h.BlockTimestamp() }
func (c *Context) BlockCoinbase() evmtype.Address {
	return evmtype.Address(c.h.BlockCoinbase())
}
func (c *Context) BlockGasLimit() uint64 { return c.h.BlockGasLimit() }
func (c *Context) ChainID() u256.U256    { return c.h.ChainID() }

// ExternalBalance reads any account's native-token balance, not just the
// current contract's own.
func (c *Context) ExternalBalance(addr evmtype.Address) u256.U256 {
	return c.h.ExternalBalance([20]byte(addr))
}

// ForwardGas returns the gas available to forward to a nested call
// right now, under the EIP-150 63/64ths rule — re-derived from the
// live gas balance, not a value captured at invocation start.
func (c *Context) ForwardGas() uint64 { return hostio.ForwardGas(c.h.GasLeft()) }

// HostIO exposes the underlying host surface for code that needs
// primitives Context doesn't wrap directly (storage, logs, hashing).
func (c *Context) HostIO() hostio.HostIO { return c.h }

// CallInfo is the gas/value envelope handed to a dispatched method,
// snapshotted once at the start of dispatch — the original source's
// current_call_info(). Unlike Context's live getters, CallInfo is a
// deliberate one-time snapshot: a method's own notion of "how much gas
// do I have to spend, and how much value did I receive" should not
// shift under it mid-execution just because Context.GasLeft() ticks
// down as it runs.
type CallInfo struct {
	Value u256.U256
	Gas   uint64
}

// CurrentCallInfo snapshots the call's value and forwardable gas.
func CurrentCallInfo(h hostio.HostIO) CallInfo {
	return CallInfo{Value: h.CallValue(), Gas: hostio.ForwardGas(h.GasLeft())}
}
