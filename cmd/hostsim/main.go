// Command hostsim runs a compiled contract wasm module against a
// fixture-seeded chain state, the same role cpp_tests/hostapi_mock.cpp
// plays for the original source's C++ unit tests but against a real wasm32
// binary instead of a linked-in mock. It reuses hostio.Mock for all of the
// chain-state and call-routing logic; the host functions registered here
// are just wazero<->Mock marshaling shims.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/example/contractlib/hostio"
	"github.com/example/contractlib/u256"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "hostsim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	wasmPath := flag.String("wasm", "", "path to the compiled guest .wasm module")
	fixturePath := flag.String("fixture", "", "path to the TOML fixture file")
	flag.Parse()
	if *wasmPath == "" || *fixturePath == "" {
		return fmt.Errorf("usage: hostsim -wasm guest.wasm -fixture fixture.toml")
	}

	fixture, err := LoadFixture(*fixturePath)
	if err != nil {
		return err
	}

	mock, err := newMockFromFixture(fixture)
	if err != nil {
		return fmt.Errorf("building mock host: %w", err)
	}

	wasmBytes, err := os.ReadFile(*wasmPath)
	if err != nil {
		return fmt.Errorf("read wasm module: %w", err)
	}

	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return fmt.Errorf("instantiate wasi: %w", err)
	}
	if err := registerHostModule(ctx, r, mock); err != nil {
		return fmt.Errorf("registering contractlib host module: %w", err)
	}

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("compile wasm module: %w", err)
	}

	cfg := wazero.NewModuleConfig().
		WithName("contract").
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		WithEnv("CONTRACTLIB_ENTRY", fixture.Call.Entry)

	// main() returning inside a Go wasip1 binary still goes through the
	// runtime's _start wrapper, which calls proc_exit(0); wazero surfaces
	// that as a sys.ExitError rather than a plain nil. finish/revert were
	// already recorded on mock by the time the guest's main() returns, so
	// this exit is expected and doesn't change the outcome we report.
	if _, err := r.InstantiateModule(ctx, compiled, cfg); err != nil {
		if !isCleanExit(err) {
			return fmt.Errorf("running guest module: %w", err)
		}
	}

	ok, reverted, data := mock.Finished()
	switch {
	case reverted:
		fmt.Printf("revert: %q\n", data)
	case ok:
		fmt.Printf("finish: %x\n", data)
	default:
		fmt.Println("guest exited without calling finish or revert")
	}
	return nil
}

// isCleanExit reports whether err is just the guest's own proc_exit(0),
// which wazero reports as a non-nil error even though nothing went wrong.
func isCleanExit(err error) bool {
	var exitErr *sys.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 0
}

func newMockFromFixture(f Fixture) (*hostio.Mock, error) {
	self, err := parseAddress(f.Call.Self)
	if err != nil {
		return nil, fmt.Errorf("call.self: %w", err)
	}
	caller, err := parseAddress(f.Call.Caller)
	if err != nil {
		return nil, fmt.Errorf("call.caller: %w", err)
	}
	value, err := parseValue(f.Call.Value)
	if err != nil {
		return nil, fmt.Errorf("call.value: %w", err)
	}
	input, err := decodeHex(f.Call.Input)
	if err != nil {
		return nil, fmt.Errorf("call.input: %w", err)
	}
	storage, err := f.storageMap(self)
	if err != nil {
		return nil, fmt.Errorf("chain.accounts: %w", err)
	}

	chain := hostio.NewMockChain()
	chain.BlockNum = f.Chain.BlockNumber
	chain.BlockTime = f.Chain.BlockTimestamp
	chain.Chain = u256.FromUint64(f.Chain.ChainID)

	return hostio.NewMock(chain, storage, self, caller, value, input, f.Call.Gas), nil
}
