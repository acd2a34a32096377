package run

import (
	"fmt"

	"fluxion/domain/core"
	"fluxion/domain/device"
)

// FunctionID is the serial number assigned to an accepted function, in
// acceptance order starting from 1. IDs are scoped to a single ledger and
// carry no meaning across runs.
type FunctionID int

// Ledger assigns serial IDs to accepted functions and resolves them back
// from function hashes. Symmetry reports reference partners by these IDs.
type Ledger struct {
	ids  map[core.FunctionHash]FunctionID
	next FunctionID
}

func NewLedger() *Ledger {
	return &Ledger{
		ids:  make(map[core.FunctionHash]FunctionID),
		next: 1,
	}
}

// Register assigns the next serial ID to f, or returns the existing ID if f
// was already registered.
func (l *Ledger) Register(f device.Function) FunctionID {
	h := f.Hash()
	if id, ok := l.ids[h]; ok {
		return id
	}
	id := l.next
	l.ids[h] = id
	l.next++
	return id
}

// Lookup resolves the ID of a previously registered function.
func (l *Ledger) Lookup(f device.Function) (FunctionID, error) {
	id, ok := l.ids[f.Hash()]
	if !ok {
		return 0, fmt.Errorf("%w: hash %s", core.ErrNotRegistered, f.Hash())
	}
	return id, nil
}

// Size returns the number of registered functions.
func (l *Ledger) Size() int {
	return len(l.ids)
}
