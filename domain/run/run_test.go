package run

import (
	"errors"
	"testing"

	"fluxion/domain/core"
	"fluxion/domain/device"
	"fluxion/domain/symbol"
)

func polarizedFunctions(t *testing.T) (device.Function, device.Function) {
	t.Helper()

	dims, err := device.NewDimensions(1, symbol.SymmetricBinary(), symbol.PolarizedStates())
	if err != nil {
		t.Fatalf("NewDimensions() error = %v", err)
	}

	identity := device.Identity(dims)

	in := func(pulse, state int) device.Syndrome {
		return device.Syndrome{Port: 0, Pulse: symbol.Signed(pulse), State: symbol.Signed(state)}
	}
	mapping := identity.Table()
	mapping[in(-1, 1)] = in(1, -1)
	mapping[in(1, -1)] = in(-1, 1)
	flip, err := device.New(dims, mapping)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return identity, flip
}

func TestParamsFingerprint(t *testing.T) {
	base := Params{Category: device.PolarizedState, Ports: 2, ConserveFlux: true}

	if base.Fingerprint() != base.Fingerprint() {
		t.Error("fingerprint should be deterministic for identical params")
	}

	variants := []Params{
		{Category: device.NeutralState, Ports: 2, ConserveFlux: true},
		{Category: device.PolarizedState, Ports: 3, ConserveFlux: true},
		{Category: device.PolarizedState, Ports: 2, ConserveFlux: false},
	}
	for _, v := range variants {
		if v.Fingerprint() == base.Fingerprint() {
			t.Errorf("params %+v should not share a fingerprint with %+v", v, base)
		}
	}
}

func TestNewRun(t *testing.T) {
	p := Params{Category: device.NeutralState, Ports: 3, ConserveFlux: true}
	r := NewRun(p)

	if core.ID(r.ID).IsEmpty() {
		t.Error("run ID should not be empty")
	}
	if r.Fingerprint != p.Fingerprint() {
		t.Error("run fingerprint should match its params")
	}
	if r.StartedAt.IsZero() {
		t.Error("StartedAt should be stamped")
	}
	if !r.FinishedAt.IsZero() {
		t.Error("FinishedAt should be zero before Finish")
	}

	r.Finish()
	if r.FinishedAt.IsZero() {
		t.Error("FinishedAt should be stamped after Finish")
	}
	if r.Elapsed() < 0 {
		t.Errorf("Elapsed() = %v, want non-negative", r.Elapsed())
	}
}

func TestLedgerSerialIDs(t *testing.T) {
	identity, flip := polarizedFunctions(t)
	ledger := NewLedger()

	if got := ledger.Register(identity); got != 1 {
		t.Errorf("first Register() = %d, want 1", got)
	}
	if got := ledger.Register(flip); got != 2 {
		t.Errorf("second Register() = %d, want 2", got)
	}
	if got := ledger.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
}

func TestLedgerRegisterIdempotent(t *testing.T) {
	identity, flip := polarizedFunctions(t)
	ledger := NewLedger()

	ledger.Register(identity)
	ledger.Register(flip)

	if got := ledger.Register(identity); got != 1 {
		t.Errorf("re-Register() = %d, want original ID 1", got)
	}
	if got := ledger.Size(); got != 2 {
		t.Errorf("Size() after re-register = %d, want 2", got)
	}
}

func TestLedgerLookup(t *testing.T) {
	identity, flip := polarizedFunctions(t)
	ledger := NewLedger()
	ledger.Register(identity)

	id, err := ledger.Lookup(identity)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if id != 1 {
		t.Errorf("Lookup() = %d, want 1", id)
	}

	if _, err := ledger.Lookup(flip); !errors.Is(err, core.ErrNotRegistered) {
		t.Errorf("Lookup() of unregistered function error = %v, want ErrNotRegistered", err)
	}
}
