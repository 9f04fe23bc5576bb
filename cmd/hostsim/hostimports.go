package main

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

// registerHostModule defines the "contractlib" host module wazero exposes
// to the guest, one function per //go:wasmimport declaration in
// hostio/wasm.go. Each function is a thin memory<->Mock marshaling shim;
// all the actual call-routing, storage, and gas-forwarding logic lives in
// the shared hostio.Mock.
func registerHostModule(ctx context.Context, r wazero.Runtime, mock *hostio.Mock) error {
	var pendingReturn []byte

	b := r.NewHostModuleBuilder("contractlib")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, keyPtr, outPtr uint32) {
		key := readWord(m, keyPtr)
		writeWord(m, outPtr, mock.StorageLoad(key))
	}).Export("storage_load")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, keyPtr, valPtr uint32) {
		mock.StorageStore(readWord(m, keyPtr), readWord(m, valPtr))
	}).Export("storage_store")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, keyPtr, outPtr uint32) {
		writeWord(m, outPtr, mock.TransientLoad(readWord(m, keyPtr)))
	}).Export("transient_load")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, keyPtr, valPtr uint32) {
		mock.TransientStore(readWord(m, keyPtr), readWord(m, valPtr))
	}).Export("transient_store")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, dataPtr, dataLen, outPtr uint32) {
		writeWord(m, outPtr, mock.Keccak256(mustRead(m, dataPtr, dataLen)))
	}).Export("keccak256")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, dataPtr, dataLen, outPtr uint32) {
		writeWord(m, outPtr, mock.SHA256(mustRead(m, dataPtr, dataLen)))
	}).Export("sha256")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, kind uint32, gas uint64, toPtr, valuePtr, dataPtr, dataLen uint32) int32 {
		var to [20]byte
		copy(to[:], mustRead(m, toPtr, 20))
		req := hostio.CallRequest{
			Kind:  hostio.CallKind(kind),
			Gas:   gas,
			To:    to,
			Value: u256.FromBytes(readWord(m, valuePtr)),
			Input: mustRead(m, dataPtr, dataLen),
		}
		resp, err := mock.Call(req)
		if err != nil {
			pendingReturn = []byte(err.Error())
			return -1
		}
		pendingReturn = resp.ReturnData
		return resp.Code
	}).Export("call")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module) uint32 {
		return uint32(len(pendingReturn))
	}).Export("return_data_size")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr, offset, size uint32) {
		mustWrite(m, outPtr, pendingReturn[offset:offset+size])
	}).Export("return_data_copy")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, topicsPtr, numTopics, dataPtr, dataLen uint32) {
		topics := make([][32]byte, numTopics)
		raw := mustRead(m, topicsPtr, numTopics*32)
		for i := range topics {
			copy(topics[i][:], raw[i*32:(i+1)*32])
		}
		mock.EmitLog(topics, mustRead(m, dataPtr, dataLen))
	}).Export("emit_log")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, dataPtr, dataLen uint32) {
		mock.Finish(mustRead(m, dataPtr, dataLen))
	}).Export("finish")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, dataPtr, dataLen uint32) {
		mock.Revert(mustRead(m, dataPtr, dataLen))
	}).Export("revert")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr uint32) {
		writeAddressWord(m, outPtr, mock.Address())
	}).Export("address")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr uint32) {
		writeAddressWord(m, outPtr, mock.Caller())
	}).Export("caller")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr uint32) {
		writeWord(m, outPtr, mock.CallValue().Bytes())
	}).Export("call_value")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module) uint64 {
		return mock.GasLeft()
	}).Export("gas_left")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module) uint64 {
		return mock.BlockNumber()
	}).Export("block_number")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module) uint64 {
		return mock.BlockTimestamp()
	}).Export("block_timestamp")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr uint32) {
		writeWord(m, outPtr, mock.ChainID().Bytes())
	}).Export("chain_id")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr uint32) {
		writeAddressWord(m, outPtr, mock.TxOrigin())
	}).Export("tx_origin")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, addrPtr, outPtr uint32) {
		var addr [20]byte
		copy(addr[:], mustRead(m, addrPtr, 20))
		writeWord(m, outPtr, mock.ExternalBalance(addr).Bytes())
	}).Export("external_balance")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr uint32) {
		writeAddressWord(m, outPtr, mock.BlockCoinbase())
	}).Export("block_coinbase")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module) uint64 {
		return mock.BlockGasLimit()
	}).Export("block_gas_limit")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module) uint32 {
		return mock.CallDataSize()
	}).Export("call_data_size")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, outPtr, offset, size uint32) {
		mustWrite(m, outPtr, mock.CallDataCopy(offset, size))
	}).Export("call_data_copy")

	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, m api.Module, msgPtr, msgLen uint32) {
		mock.DebugPrint(string(mustRead(m, msgPtr, msgLen)))
	}).Export("debug_print")

	_, err := b.Instantiate(ctx)
	return err
}

func readWord(m api.Module, ptr uint32) [32]byte {
	var w [32]byte
	copy(w[:], mustRead(m, ptr, 32))
	return w
}

func writeWord(m api.Module, ptr uint32, w [32]byte) {
	mustWrite(m, ptr, w[:])
}

// writeAddressWord left-pads a 20-byte address into the 32-byte word
// layout address()/caller() use on the wire, matching hostio.Guest's
// Address()/Caller() unpacking (out[12:32]).
func writeAddressWord(m api.Module, ptr uint32, addr [20]byte) {
	var w [32]byte
	copy(w[12:], addr[:])
	writeWord(m, ptr, w)
}

func mustRead(m api.Module, ptr, size uint32) []byte {
	if size == 0 {
		return nil
	}
	b, ok := m.Memory().Read(ptr, size)
	if !ok {
		panic(fmt.Sprintf("hostsim: guest memory read out of bounds at %d (len=%d)", ptr, size))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func mustWrite(m api.Module, ptr uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	if !m.Memory().Write(ptr, data) {
		panic(fmt.Sprintf("hostsim: guest memory write out of bounds at %d (len=%d)", ptr, len(data)))
	}
}
