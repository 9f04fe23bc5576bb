package contract

import "github.com/example/contractlib/hostio"

// Contract is the interface a deployable contract implements. Dispatch
// receives the method selector already stripped from input and decides
// which method to run; for a selector it does not recognize it returns
// Fallback(), a revert carrying ErrNoMethodMatched's message.
// Constructor runs once, on deploy, with the same argument-decoding
// conventions.
//
// This replaces the original source's ENTRYPOINT macro and virtual
// Contract base class: Go has no macros, and an interface plus a
// couple of free functions (Run, RunDeploy) covers the same "wire up
// call/deploy exports" role.
type Contract interface {
	Dispatch(ctx *Context, info CallInfo, selector uint32, input *Input) CResult
	Constructor(ctx *Context, info CallInfo, input *Input) CResult

	// Receive is invoked for a call that carries no input at all (a
	// plain value transfer). The default behavior for a contract that
	// doesn't want to accept bare transfers is to implement it as a
	// revert.
	Receive(ctx *Context) CResult
}

// Run is the "call" entrypoint: decode the selector, dispatch, and
// write the result back through h. It does not decode the remaining
// arguments itself — that's the Contract implementation's job, via the
// Input it receives — since only the implementation knows each
// selector's parameter types.
func Run(h hostio.HostIO, c Contract) {
	raw := h.CallDataCopy(0, h.CallDataSize())
	in := NewInput(raw)

	ctx := NewContext(h)
	if in.Empty() {
		WriteResult(h, c.Receive(ctx))
		return
	}

	info := CurrentCallInfo(h)
	selector, err := in.ReadSelector()
	if err != nil {
		WriteResult(h, RevertString(err.Error(), -1))
		return
	}
	WriteResult(h, c.Dispatch(ctx, info, selector, in))
}

// RunDeploy is the "deploy" entrypoint: runs the contract's
// constructor against the deployment input.
func RunDeploy(h hostio.HostIO, c Contract) {
	raw := h.CallDataCopy(0, h.CallDataSize())
	in := NewInput(raw)

	ctx := NewContext(h)
	info := CurrentCallInfo(h)
	WriteResult(h, c.Constructor(ctx, info, in))
}

// WriteResult sends a CResult to the host: Finish on success, Revert
// otherwise.
func WriteResult(h hostio.HostIO, result CResult) {
	if result.Success {
		h.Finish(result.Data)
	} else {
		h.Revert(result.Data)
	}
}

// RunProcExit implements the wasi_snapshot_preview1.proc_exit mapping:
// a zero exit code finishes the call with no output, any other code
// reverts with a fixed "proc_exit" message.
func RunProcExit(h hostio.HostIO, code int32) {
	if code == 0 {
		h.Finish(nil)
		return
	}
	h.Revert([]byte("proc_exit"))
}

// Fallback is the default no-method-matched behavior: a revert
// carrying ErrNoMethodMatched's message, the Go equivalent of the
// original source's default Contract::fallback().
func Fallback() CResult {
	return RevertString(ErrNoMethodMatched.Error(), -1)
}
