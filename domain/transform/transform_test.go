package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxion/domain/core"
	"fluxion/domain/device"
	"fluxion/domain/symbol"
)

func neutralDims(t *testing.T, ports int) device.Dimensions {
	t.Helper()
	dims, err := device.NeutralState.Dimensions(ports, true)
	require.NoError(t, err)
	return dims
}

func polarizedDims(t *testing.T, ports int) device.Dimensions {
	t.Helper()
	dims, err := device.PolarizedState.Dimensions(ports, true)
	require.NoError(t, err)
	return dims
}

func lSyndrome(port int) device.Syndrome {
	return device.Syndrome{Port: port, Pulse: symbol.Signed(1), State: symbol.Named("L")}
}

// pairSwap is a neutral 3-port function exchanging the L syndromes of two
// ports, leaving everything else alone.
func pairSwap(t *testing.T, a, b int) device.Function {
	t.Helper()
	dims := neutralDims(t, 3)
	m := device.Identity(dims).Table()
	m[lSyndrome(a)] = lSyndrome(b)
	m[lSyndrome(b)] = lSyndrome(a)
	f, err := device.New(dims, m)
	require.NoError(t, err)
	return f
}

// stateFlip is the accepted 1-port polarized function: flux-symmetric,
// state-changing, not state-negation symmetric.
func stateFlip(t *testing.T) device.Function {
	t.Helper()
	dims := polarizedDims(t, 1)
	m := device.Identity(dims).Table()
	up := device.Syndrome{Port: 0, Pulse: symbol.Signed(-1), State: symbol.Signed(1)}
	down := device.Syndrome{Port: 0, Pulse: symbol.Signed(1), State: symbol.Signed(-1)}
	m[up] = down
	m[down] = up
	f, err := device.New(dims, m)
	require.NoError(t, err)
	return f
}

func symbolsOf(ts []Transform) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Symbol()
	}
	return out
}

func TestSymbolsAndDescriptions(t *testing.T) {
	exchange, err := NewPortExchange(1, 0)
	require.NoError(t, err)
	rotation, err := NewPortRotation(-1, 3)
	require.NoError(t, err)

	tests := []struct {
		tr       Transform
		symbol   string
		describe string
	}{
		{DirectionReversal{}, "D", "(Direction Reversal)"},
		{FluxNegation{}, "F", "(Flux Negation)"},
		{StateNegation{}, "S", "(State Swap)"},
		{exchange, "E(1,2)", "(Swap ports 1 <-> 2)"},
		{rotation, "R(-1)", "(Rotate ports -1)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.symbol, tc.tr.Symbol())
		assert.Equal(t, tc.describe, tc.tr.Describe())
	}
}

func TestPortExchangeCanonical(t *testing.T) {
	a, err := NewPortExchange(0, 2)
	require.NoError(t, err)
	b, err := NewPortExchange(2, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b, "exchanges should canonicalize to the same value")

	_, err = NewPortExchange(1, 1)
	assert.ErrorIs(t, err, core.ErrInvalidTransform)
	_, err = NewPortExchange(-1, 2)
	assert.ErrorIs(t, err, core.ErrInvalidTransform)
}

func TestPortRotationValidation(t *testing.T) {
	_, err := NewPortRotation(0, 3)
	assert.ErrorIs(t, err, core.ErrInvalidTransform)
	_, err = NewPortRotation(3, 3)
	assert.ErrorIs(t, err, core.ErrInvalidTransform, "full-turn offsets are the identity")
	_, err = NewPortRotation(1, 0)
	assert.ErrorIs(t, err, core.ErrInvalidTransform)
}

func TestRotationOrder(t *testing.T) {
	tests := []struct {
		offset, ports, order int
	}{
		{1, 3, 3},
		{-1, 3, 3},
		{1, 4, 4},
		{2, 4, 2},
		{1, 2, 2},
	}
	for _, tc := range tests {
		r, err := NewPortRotation(tc.offset, tc.ports)
		require.NoError(t, err)
		assert.Equal(t, tc.order, r.Order(), "order of R(%d) on %d ports", tc.offset, tc.ports)
	}
}

func TestSelfInverseTransforms(t *testing.T) {
	f := pairSwap(t, 0, 1)
	exchange, err := NewPortExchange(0, 2)
	require.NoError(t, err)

	for _, tr := range []Transform{DirectionReversal{}, StateNegation{}, exchange} {
		require.Equal(t, 2, tr.Order())
		assert.Equal(t, tr, tr.Inverse(), "%s should be its own inverse", tr.Symbol())

		once, err := tr.Apply(f)
		require.NoError(t, err)
		twice, err := tr.Apply(once)
		require.NoError(t, err)
		assert.True(t, twice.Equal(f), "%s applied twice should restore the original", tr.Symbol())
	}

	// Flux negation needs a negatable alphabet, so test it on the
	// polarized fixture.
	flip := stateFlip(t)
	once, err := FluxNegation{}.Apply(flip)
	require.NoError(t, err)
	twice, err := FluxNegation{}.Apply(once)
	require.NoError(t, err)
	assert.True(t, twice.Equal(flip))
}

func TestRotationInverse(t *testing.T) {
	r, err := NewPortRotation(1, 3)
	require.NoError(t, err)

	inv := r.Inverse()
	assert.Equal(t, "R(-1)", inv.Symbol())
	assert.Equal(t, r, inv.Inverse(), "double inversion should restore the rotation")

	f := pairSwap(t, 0, 1)
	rotated, err := r.Apply(f)
	require.NoError(t, err)
	back, err := inv.Apply(rotated)
	require.NoError(t, err)
	assert.True(t, back.Equal(f))
}

func TestRotationPortCountMismatch(t *testing.T) {
	r, err := NewPortRotation(1, 3)
	require.NoError(t, err)
	_, err = r.Apply(stateFlip(t))
	assert.ErrorIs(t, err, core.ErrInvalidTransform)
}

func TestComposeAppliesOtherFirst(t *testing.T) {
	exchange, err := NewPortExchange(0, 1)
	require.NoError(t, err)
	rotation, err := NewPortRotation(1, 3)
	require.NoError(t, err)
	f := pairSwap(t, 0, 1)

	composed := exchange.Compose(rotation)
	assert.Equal(t, "E(1,2)*R(1)", composed.Symbol())
	assert.Equal(t, 0, composed.Order())

	got, err := composed.Apply(f)
	require.NoError(t, err)

	mid, err := rotation.Apply(f)
	require.NoError(t, err)
	want, err := exchange.Apply(mid)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "compose should apply the rotation first")

	// The other composition order must differ for these generators.
	mid, err = exchange.Apply(f)
	require.NoError(t, err)
	other, err := rotation.Apply(mid)
	require.NoError(t, err)
	assert.False(t, got.Equal(other), "E then R should differ from R then E on this fixture")
}

func TestCompositeInverse(t *testing.T) {
	exchange, err := NewPortExchange(0, 1)
	require.NoError(t, err)
	rotation, err := NewPortRotation(1, 3)
	require.NoError(t, err)
	composed := exchange.Compose(rotation)

	inv := composed.Inverse()
	assert.Equal(t, "R(-1)*E(1,2)", inv.Symbol())

	f := pairSwap(t, 1, 2)
	image, err := composed.Apply(f)
	require.NoError(t, err)
	back, err := inv.Apply(image)
	require.NoError(t, err)
	assert.True(t, back.Equal(f))
}

func TestIsSymmetric(t *testing.T) {
	flip := stateFlip(t)

	symmetric, err := IsSymmetric(DirectionReversal{}, flip)
	require.NoError(t, err)
	assert.True(t, symmetric, "the state flip is its own reverse")

	symmetric, err = IsSymmetric(FluxNegation{}, flip)
	require.NoError(t, err)
	assert.True(t, symmetric, "the state flip survives flux negation")

	symmetric, err = IsSymmetric(StateNegation{}, flip)
	require.NoError(t, err)
	assert.False(t, symmetric)
}

func TestAreDuals(t *testing.T) {
	dims := neutralDims(t, 3)
	m := device.Identity(dims).Table()
	m[lSyndrome(0)] = lSyndrome(1)
	m[lSyndrome(1)] = lSyndrome(2)
	m[lSyndrome(2)] = lSyndrome(0)
	f, err := device.New(dims, m)
	require.NoError(t, err)
	g := f.Reverse()

	dual, err := AreDuals(DirectionReversal{}, f, g)
	require.NoError(t, err)
	assert.True(t, dual)

	dual, err = AreDuals(DirectionReversal{}, g, f)
	require.NoError(t, err)
	assert.True(t, dual, "duality is symmetric for self-inverse transforms")

	rotation, err := NewPortRotation(1, 3)
	require.NoError(t, err)
	_, err = AreDuals(rotation, f, g)
	assert.ErrorIs(t, err, core.ErrInvalidTransform, "order-3 transforms have no duality relation")

	_, err = AreDuals(DirectionReversal{}.Compose(rotation), f, g)
	assert.ErrorIs(t, err, core.ErrInvalidTransform)
}

func TestClassificationSet(t *testing.T) {
	t.Run("neutral includes state swap", func(t *testing.T) {
		got := symbolsOf(ClassificationSet(neutralDims(t, 3), true))
		assert.Equal(t, []string{"D", "S", "E(1,2)", "E(1,3)", "E(2,3)"}, got)
	})

	t.Run("polarized under conservation excludes state swap", func(t *testing.T) {
		got := symbolsOf(ClassificationSet(polarizedDims(t, 2), true))
		assert.Equal(t, []string{"D", "E(1,2)"}, got)
	})

	t.Run("state swap returns when conservation is off", func(t *testing.T) {
		got := symbolsOf(ClassificationSet(polarizedDims(t, 1), false))
		assert.Equal(t, []string{"D", "S"}, got)
	})
}

func TestReportableSet(t *testing.T) {
	t.Run("single port", func(t *testing.T) {
		got := symbolsOf(ReportableSet(polarizedDims(t, 1)))
		assert.Equal(t, []string{"D"}, got)
	})

	t.Run("neutral three ports", func(t *testing.T) {
		got := symbolsOf(ReportableSet(neutralDims(t, 3)))
		assert.Equal(t, []string{"D", "S", "E(1,2)", "E(1,3)", "E(2,3)", "R(1)", "R(-1)"}, got)
	})

	t.Run("even port counts list the half-turn once", func(t *testing.T) {
		got := symbolsOf(ReportableSet(neutralDims(t, 4)))
		assert.Equal(t, []string{
			"D", "S",
			"E(1,2)", "E(1,3)", "E(1,4)", "E(2,3)", "E(2,4)", "E(3,4)",
			"R(1)", "R(-1)", "R(2)",
		}, got)
	})
}
