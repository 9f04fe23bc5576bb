package contract

import (
	"errors"
	"fmt"
)

// ErrArithmeticUnimplemented mirrors u256.ErrUnimplemented at the
// contract-dispatch boundary: division/modulo on U256 is a programmer
// error here. Nothing in this package returns it or converts
// u256.ErrUnimplemented into it or into a revert.
var ErrArithmeticUnimplemented = errors.New("contract: arithmetic operation not implemented")

// ErrNoMethodMatched is the default fallback outcome: the dispatcher
// received a selector it does not recognize.
var ErrNoMethodMatched = errors.New("contract: no method matched")

// CallFailedError wraps an outbound call's non-zero result. Call,
// CallCode, CallDelegate, and CallStatic all return it as a plain
// CResult rather than a Go error, matching the original source's
// CResult-everywhere convention; AsCallFailedError converts one back
// into this type for callers that want to treat a failed call as
// fatal instead of inspecting CResult's fields directly.
type CallFailedError struct {
	Code       int32
	ReturnData []byte
}

func (e *CallFailedError) Error() string {
	return fmt.Sprintf("contract: call failed with code %d", e.Code)
}

// RevertError wraps a guest-initiated revert's payload. Dispatch
// returns it as a normal CResult rather than a Go error; it exists so
// tests driving Contract implementations directly can recognize a
// revert outcome without re-deriving it from CResult's fields.
type RevertError struct {
	Data []byte
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("contract: reverted with %d bytes", len(e.Data))
}
