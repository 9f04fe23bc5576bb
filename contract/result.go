package contract

import "github.com/example/contractlib/abi"

// CResult is the outcome of a dispatched call: either a success with
// ABI-encoded return data, or a revert with a return-code and payload
// (typically a human-readable error string).
type CResult struct {
	Success    bool
	RetCode    int32
	Data       []byte
}

// Ok wraps a single ABI value as a successful result.
func Ok(v abi.Value) CResult {
	return CResult{Success: true, Data: abi.Encode(v)}
}

// OkValues wraps a heterogeneous return tuple as a successful result.
func OkValues(vs ...abi.Value) CResult {
	return CResult{Success: true, Data: abi.EncodeTuple(vs...)}
}

// OkEmpty is a successful result with no return data.
func OkEmpty() CResult { return CResult{Success: true} }

// Revert wraps an ABI value as a revert result with the default return
// code (-1), matching the original source's Revert<T> default.
func Revert(v abi.Value) CResult {
	return CResult{Success: false, RetCode: -1, Data: abi.Encode(v)}
}

// RevertString is the common case: a revert carrying a plain error
// message.
func RevertString(msg string, code int32) CResult {
	return CResult{Success: false, RetCode: code, Data: []byte(msg)}
}

// RevertBytes is a revert carrying a caller-prepared payload verbatim
// (already ABI-encoded, or raw bytes such as an outbound call's
// propagated failure data).
func RevertBytes(data []byte, code int32) CResult {
	return CResult{Success: false, RetCode: code, Data: data}
}
