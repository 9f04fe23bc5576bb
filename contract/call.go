package contract

import (
	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// callWrapper is the Go counterpart to the original source's
// wrapper_call_contract: one routine all four call flavors funnel
// through, since the only thing that varies between them is which
// CallKind is passed to hostio.HostIO.Call and whether value is
// allowed to be nonzero.
func callWrapper(h hostio.HostIO, kind hostio.CallKind, to evmtype.Address, encodedInput []byte, value u256.U256, gas uint64) CResult {
	resp, err := h.Call(hostio.CallRequest{
		Kind:  kind,
		Gas:   gas,
		To:    to,
		Value: value,
		Input: encodedInput,
	})
	if err != nil {
		// A host I/O failure, as opposed to the callee itself failing —
		// there's no return data to carry, unlike a CallFailed outcome.
		return RevertString(err.Error(), -1)
	}
	if resp.Success {
		if len(resp.ReturnData) == 0 {
			return OkEmpty()
		}
		return CResult{Success: true, Data: resp.ReturnData}
	}
	if len(resp.ReturnData) == 0 {
		return RevertString("call failed", resp.Code)
	}
	return RevertBytes(resp.ReturnData, resp.Code)
}

// AsCallFailedError converts a failed outbound-call result (from Call,
// CallCode, CallDelegate, or CallStatic) into a *CallFailedError, for
// callers that want to treat a failed call as fatal instead of
// inspecting CResult's fields directly.
func AsCallFailedError(res CResult) error {
	if res.Success {
		return nil
	}
	return &CallFailedError{Code: res.RetCode, ReturnData: res.Data}
}

// Call performs a regular CALL: runs the callee's code in its own
// context and may transfer value.
func Call(h hostio.HostIO, to evmtype.Address, encodedInput []byte, value u256.U256, gas uint64) CResult {
	return callWrapper(h, hostio.CallRegular, to, encodedInput, value, gas)
}

// CallCode runs the callee's code with the caller's storage and
// context, and may transfer value.
func CallCode(h hostio.HostIO, to evmtype.Address, encodedInput []byte, value u256.U256, gas uint64) CResult {
	return callWrapper(h, hostio.CallCode, to, encodedInput, value, gas)
}

// CallDelegate runs the callee's code with the caller's storage and
// context; value is always forced to zero at the call site (spec §4.2).
func CallDelegate(h hostio.HostIO, to evmtype.Address, encodedInput []byte, gas uint64) CResult {
	return callWrapper(h, hostio.CallDelegate, to, encodedInput, u256.Zero, gas)
}

// CallStatic runs the callee's code read-only; value is always forced
// to zero.
func CallStatic(h hostio.HostIO, to evmtype.Address, encodedInput []byte, gas uint64) CResult {
	return callWrapper(h, hostio.CallStatic, to, encodedInput, u256.Zero, gas)
}
