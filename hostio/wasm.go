//go:build wasip1 || wasm

package hostio

import "github.com/example/contractlib/u256"

// Guest is the real HostIO realization linked into a wasm32 build: each
// method is a thin wrapper over a //go:wasmimport host function. There
// is exactly one Guest per process (a wasm contract instance serves one
// invocation per instantiation), so unlike Mock it carries no per-call
// state beyond what the host itself tracks.
type Guest struct{}

//go:wasmimport contractlib storage_load
func hostStorageLoad(keyPtr, outPtr *byte)

//go:wasmimport contractlib storage_store
func hostStorageStore(keyPtr, valPtr *byte)

//go:wasmimport contractlib transient_load
func hostTransientLoad(keyPtr, outPtr *byte)

//go:wasmimport contractlib transient_store
func hostTransientStore(keyPtr, valPtr *byte)

//go:wasmimport contractlib keccak256
func hostKeccak256(dataPtr *byte, dataLen uint32, outPtr *byte)

//go:wasmimport contractlib sha256
func hostSHA256(dataPtr *byte, dataLen uint32, outPtr *byte)

//go:wasmimport contractlib call
func hostCall(kind uint32, gas uint64, toPtr *byte, valuePtr *byte, dataPtr *byte, dataLen uint32) int32

//go:wasmimport contractlib return_data_size
func hostReturnDataSize() uint32

//go:wasmimport contractlib return_data_copy
func hostReturnDataCopy(outPtr *byte, offset, size uint32)

//go:wasmimport contractlib emit_log
func hostEmitLog(topicsPtr *byte, numTopics uint32, dataPtr *byte, dataLen uint32)

//go:wasmimport contractlib finish
func hostFinish(dataPtr *byte, dataLen uint32)

//go:wasmimport contractlib revert
func hostRevert(dataPtr *byte, dataLen uint32)

//go:wasmimport contractlib address
func hostAddress(outPtr *byte)

//go:wasmimport contractlib caller
func hostCaller(outPtr *byte)

//go:wasmimport contractlib call_value
func hostCallValue(outPtr *byte)

//go:wasmimport contractlib gas_left
func hostGasLeft() uint64

//go:wasmimport contractlib block_number
func hostBlockNumber() uint64

//go:wasmimport contractlib block_timestamp
func hostBlockTimestamp() uint64

//go:wasmimport contractlib chain_id
func hostChainID(outPtr *byte)

//go:wasmimport contractlib tx_origin
func hostTxOrigin(outPtr *byte)

//go:wasmimport contractlib external_balance
func hostExternalBalance(addrPtr *byte, outPtr *byte)

//go:wasmimport contractlib block_coinbase
func hostBlockCoinbase(outPtr *byte)

//go:wasmimport contractlib block_gas_limit
func hostBlockGasLimit() uint64

//go:wasmimport contractlib call_data_size
func hostCallDataSize() uint32

//go:wasmimport contractlib call_data_copy
func hostCallDataCopy(outPtr *byte, offset, size uint32)

//go:wasmimport contractlib debug_print
func hostDebugPrint(msgPtr *byte, msgLen uint32)

func (Guest) StorageLoad(key [32]byte) [32]byte {
	var out [32]byte
	hostStorageLoad(&key[0], &out[0])
	return out
}

func (Guest) StorageStore(key [32]byte, value [32]byte) {
	hostStorageStore(&key[0], &value[0])
}

func (Guest) TransientLoad(key [32]byte) [32]byte {
	var out [32]byte
	hostTransientLoad(&key[0], &out[0])
	return out
}

func (Guest) TransientStore(key [32]byte, value [32]byte) {
	hostTransientStore(&key[0], &value[0])
}

func (Guest) Keccak256(data []byte) [32]byte {
	var out [32]byte
	buf := data
	if len(buf) == 0 {
		buf = []byte{0}
	}
	hostKeccak256(&buf[0], uint32(len(data)), &out[0])
	return out
}

func (Guest) SHA256(data []byte) [32]byte {
	var out [32]byte
	buf := data
	if len(buf) == 0 {
		buf = []byte{0}
	}
	hostSHA256(&buf[0], uint32(len(data)), &out[0])
	return out
}

func (Guest) Call(req CallRequest) (CallResponse, error) {
	valueWord := req.Value.Bytes()
	data := req.Input
	if len(data) == 0 {
		data = []byte{0}
	}
	code := hostCall(uint32(req.Kind), req.Gas, &req.To[0], &valueWord[0], &data[0], uint32(len(req.Input)))
	size := hostReturnDataSize()
	out := make([]byte, size)
	if size > 0 {
		hostReturnDataCopy(&out[0], 0, size)
	}
	return CallResponse{Success: code == 0, Code: code, ReturnData: out}, nil
}

func (Guest) EmitLog(topics [][32]byte, data []byte) {
	flat := make([]byte, 0, len(topics)*32)
	for _, t := range topics {
		flat = append(flat, t[:]...)
	}
	var topicsPtr *byte
	if len(flat) > 0 {
		topicsPtr = &flat[0]
	}
	var dataPtr *byte
	if len(data) > 0 {
		dataPtr = &data[0]
	}
	hostEmitLog(topicsPtr, uint32(len(topics)), dataPtr, uint32(len(data)))
}

func (Guest) Finish(data []byte) {
	var ptr *byte
	if len(data) > 0 {
		ptr = &data[0]
	}
	hostFinish(ptr, uint32(len(data)))
}

func (Guest) Revert(data []byte) {
	var ptr *byte
	if len(data) > 0 {
		ptr = &data[0]
	}
	hostRevert(ptr, uint32(len(data)))
}

func (Guest) Address() [20]byte {
	var out [32]byte
	hostAddress(&out[0])
	var a [20]byte
	copy(a[:], out[12:32])
	return a
}

func (Guest) Caller() [20]byte {
	var out [32]byte
	hostCaller(&out[0])
	var a [20]byte
	copy(a[:], out[12:32])
	return a
}

func (Guest) CallValue() u256.U256 {
	var out [32]byte
	hostCallValue(&out[0])
	return u256.FromBytes(out)
}

func (Guest) GasLeft() uint64 { return hostGasLeft() }

func (Guest) BlockNumber() uint64 { return hostBlockNumber() }

func (Guest) BlockTimestamp() uint64 { return hostBlockTimestamp() }

func (Guest) ChainID() u256.U256 {
	var out [32]byte
	hostChainID(&out[0])
	return u256.FromBytes(out)
}

func (Guest) TxOrigin() [20]byte {
	var out [32]byte
	hostTxOrigin(&out[0])
	var a [20]byte
	copy(a[:], out[12:32])
	return a
}

func (Guest) ExternalBalance(addr [20]byte) u256.U256 {
	var out [32]byte
	hostExternalBalance(&addr[0], &out[0])
	return u256.FromBytes(out)
}

func (Guest) BlockCoinbase() [20]byte {
	var out [32]byte
	hostBlockCoinbase(&out[0])
	var a [20]byte
	copy(a[:], out[12:32])
	return a
}

func (Guest) BlockGasLimit() uint64 { return hostBlockGasLimit() }

func (Guest) CallDataSize() uint32 { return hostCallDataSize() }

func (Guest) CallDataCopy(offset, size uint32) []byte {
	out := make([]byte, size)
	if size > 0 {
		hostCallDataCopy(&out[0], offset, size)
	}
	return out
}

func (Guest) DebugPrint(msg string) {
	b := []byte(msg)
	if len(b) == 0 {
		return
	}
	hostDebugPrint(&b[0], uint32(len(b)))
}
