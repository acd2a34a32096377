package symbol

import (
	"fmt"
	"strconv"
	"strings"

	"fluxion/domain/core"
)

// Symbol is a single pulse or state value: either a signed integer or a
// bare name. Signed symbols carry flux equal to their value; named symbols
// carry none.
type Symbol struct {
	signed bool
	value  int
	name   string
}

// Signed creates a flux-bearing symbol
func Signed(v int) Symbol {
	return Symbol{signed: true, value: v}
}

// Named creates a flux-free labeled symbol
func Named(name string) Symbol {
	return Symbol{name: name}
}

// IsSigned reports whether the symbol carries an integer value
func (s Symbol) IsSigned() bool {
	return s.signed
}

// Flux returns the conserved quantity carried by the symbol
func (s Symbol) Flux() int {
	if s.signed {
		return s.value
	}
	return 0
}

// Less orders symbols: signed before named, then by value or name
func (s Symbol) Less(other Symbol) bool {
	if s.signed != other.signed {
		return s.signed
	}
	if s.signed {
		return s.value < other.value
	}
	return s.name < other.name
}

// String renders the bare value: "-1", "1", "L"
func (s Symbol) String() string {
	if s.signed {
		return strconv.Itoa(s.value)
	}
	return s.name
}

// Alphabet is the ordered set of pulse symbols every port accepts.
type Alphabet struct {
	symbols []Symbol
}

// NewAlphabet creates an alphabet from the given symbols in declared order
func NewAlphabet(symbols ...Symbol) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, fmt.Errorf("alphabet requires at least one symbol")
	}
	seen := make(map[Symbol]bool, len(symbols))
	for _, s := range symbols {
		if seen[s] {
			return Alphabet{}, fmt.Errorf("duplicate symbol %s in alphabet", s)
		}
		seen[s] = true
	}
	owned := make([]Symbol, len(symbols))
	copy(owned, symbols)
	return Alphabet{symbols: owned}, nil
}

// Arity returns the number of pulse symbols
func (a Alphabet) Arity() int {
	return len(a.symbols)
}

// IsUnary reports whether the alphabet has a single symbol
func (a Alphabet) IsUnary() bool {
	return len(a.symbols) == 1
}

// Symbols returns the symbols in declared order
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Contains reports membership
func (a Alphabet) Contains(s Symbol) bool {
	for _, member := range a.symbols {
		if member == s {
			return true
		}
	}
	return false
}

// IndexOf returns the declared position of s
func (a Alphabet) IndexOf(s Symbol) (int, error) {
	for i, member := range a.symbols {
		if member == s {
			return i, nil
		}
	}
	return 0, core.NewUnknownSymbolError("pulse alphabet", s.String())
}

// Negatable reports whether every symbol is signed and its arithmetic
// negation is also a member
func (a Alphabet) Negatable() bool {
	for _, s := range a.symbols {
		if !s.IsSigned() || !a.Contains(Signed(-s.Flux())) {
			return false
		}
	}
	return true
}

// Negate maps a member symbol to its negation within the alphabet
func (a Alphabet) Negate(s Symbol) (Symbol, error) {
	if !a.Contains(s) {
		return Symbol{}, core.NewUnknownSymbolError("pulse alphabet", s.String())
	}
	if !a.Negatable() {
		return Symbol{}, core.ErrAlphabetNotNegatable
	}
	return Signed(-s.Flux()), nil
}

// Equal reports whether two alphabets declare the same symbols in the
// same order
func (a Alphabet) Equal(other Alphabet) bool {
	if len(a.symbols) != len(other.symbols) {
		return false
	}
	for i := range a.symbols {
		if a.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// String renders list style: "[-1, 1]"
func (a Alphabet) String() string {
	parts := make([]string, len(a.symbols))
	for i, s := range a.symbols {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StateSet is the ordered set of internal states a device can hold.
type StateSet struct {
	symbols []Symbol
}

// NewStateSet creates a state set from the given symbols in declared order
func NewStateSet(symbols ...Symbol) (StateSet, error) {
	if len(symbols) == 0 {
		return StateSet{}, fmt.Errorf("state set requires at least one symbol")
	}
	seen := make(map[Symbol]bool, len(symbols))
	for _, s := range symbols {
		if seen[s] {
			return StateSet{}, fmt.Errorf("duplicate symbol %s in state set", s)
		}
		seen[s] = true
	}
	owned := make([]Symbol, len(symbols))
	copy(owned, symbols)
	return StateSet{symbols: owned}, nil
}

// Cardinality returns the number of states
func (ss StateSet) Cardinality() int {
	return len(ss.symbols)
}

// States returns the symbols in declared order
func (ss StateSet) States() []Symbol {
	out := make([]Symbol, len(ss.symbols))
	copy(out, ss.symbols)
	return out
}

// Contains reports membership
func (ss StateSet) Contains(s Symbol) bool {
	for _, member := range ss.symbols {
		if member == s {
			return true
		}
	}
	return false
}

// IndexOf returns the declared position of s
func (ss StateSet) IndexOf(s Symbol) (int, error) {
	for i, member := range ss.symbols {
		if member == s {
			return i, nil
		}
	}
	return 0, core.NewUnknownSymbolError("state set", s.String())
}

// FluxNeutral reports whether every state carries zero flux
func (ss StateSet) FluxNeutral() bool {
	for _, s := range ss.symbols {
		if s.Flux() != 0 {
			return false
		}
	}
	return true
}

// Negatable reports whether negation is defined: either exactly two states
// (negation exchanges them) or all states signed and closed under
// arithmetic negation
func (ss StateSet) Negatable() bool {
	if len(ss.symbols) == 2 {
		return true
	}
	return ss.signedClosed()
}

func (ss StateSet) signedClosed() bool {
	for _, s := range ss.symbols {
		if !s.IsSigned() || !ss.Contains(Signed(-s.Flux())) {
			return false
		}
	}
	return true
}

// Negate maps a member state to its negation within the set. Two-state
// sets exchange their members; larger signed sets negate arithmetically.
func (ss StateSet) Negate(s Symbol) (Symbol, error) {
	if !ss.Contains(s) {
		return Symbol{}, core.NewUnknownSymbolError("state set", s.String())
	}
	if len(ss.symbols) == 2 {
		if ss.symbols[0] == s {
			return ss.symbols[1], nil
		}
		return ss.symbols[0], nil
	}
	if ss.signedClosed() {
		return Signed(-s.Flux()), nil
	}
	return Symbol{}, core.ErrStatesNotNegatable
}

// Equal reports whether two state sets declare the same symbols in the
// same order
func (ss StateSet) Equal(other StateSet) bool {
	if len(ss.symbols) != len(other.symbols) {
		return false
	}
	for i := range ss.symbols {
		if ss.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// String renders comma-joined without brackets: "-1,1" / "L,R"
func (ss StateSet) String() string {
	parts := make([]string, len(ss.symbols))
	for i, s := range ss.symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
