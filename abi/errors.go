package abi

import "errors"

// ErrDataTooShort is returned when a decode would read past the end of
// the input buffer (spec §7).
var ErrDataTooShort = errors.New("abi: data too short")

// ErrTrailingData is returned by DecodeAll when the decode leaves bytes
// unconsumed (spec §7). DecodeVectorAll does not check for trailing
// bytes and never returns it.
var ErrTrailingData = errors.New("abi: trailing data after decode")
