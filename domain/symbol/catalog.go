package symbol

// Standard vocabularies for the two supported device categories. Each call
// returns a fresh value so callers cannot alias internal state.

// PositiveUnary is the single-pulse alphabet {+1}. Under flux conservation
// the negative sector mirrors it, so one symbol suffices.
func PositiveUnary() Alphabet {
	a, _ := NewAlphabet(Signed(1))
	return a
}

// SymmetricBinary is the polarized alphabet {-1, +1}.
func SymmetricBinary() Alphabet {
	a, _ := NewAlphabet(Signed(-1), Signed(1))
	return a
}

// PolarizedStates is the flux-bearing two-state set {-1, +1}.
func PolarizedStates() StateSet {
	ss, _ := NewStateSet(Signed(-1), Signed(1))
	return ss
}

// LRStates is the flux-neutral two-state set {L, R}.
func LRStates() StateSet {
	ss, _ := NewStateSet(Named("L"), Named("R"))
	return ss
}
