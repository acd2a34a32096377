package transform

import (
	"fmt"

	"fluxion/domain/core"
	"fluxion/domain/device"
)

// Transform is a structure-preserving operator on transition functions.
// Transforms are values, not identities: two transforms of the same kind
// and parameters are interchangeable.
type Transform interface {
	// Apply maps a function to its image under the transform.
	Apply(f device.Function) (device.Function, error)
	// Inverse returns the transform undoing this one.
	Inverse() Transform
	// Order is the smallest k > 0 with t^k the identity, 2 for
	// self-inverse transforms, or 0 when not statically determined
	// (composites).
	Order() int
	// Symbol is the short report tag, e.g. "D" or "E(1,2)".
	Symbol() string
	// Describe is the readable name printed alongside Symbol.
	Describe() string
	// Compose returns the transform applying other first, then this one.
	Compose(other Transform) Transform
}

// DirectionReversal exchanges the input and output roles of every pair.
type DirectionReversal struct{}

func (DirectionReversal) Apply(f device.Function) (device.Function, error) {
	return f.Reverse(), nil
}

func (DirectionReversal) Inverse() Transform { return DirectionReversal{} }
func (DirectionReversal) Order() int         { return 2 }
func (DirectionReversal) Symbol() string     { return "D" }
func (DirectionReversal) Describe() string   { return "(Direction Reversal)" }

func (d DirectionReversal) Compose(other Transform) Transform {
	return NewComposite(d, other)
}

// FluxNegation negates every pulse and state symbol on both sides.
type FluxNegation struct{}

func (FluxNegation) Apply(f device.Function) (device.Function, error) {
	return f.NegateFlux()
}

func (FluxNegation) Inverse() Transform { return FluxNegation{} }
func (FluxNegation) Order() int         { return 2 }
func (FluxNegation) Symbol() string     { return "F" }
func (FluxNegation) Describe() string   { return "(Flux Negation)" }

func (n FluxNegation) Compose(other Transform) Transform {
	return NewComposite(n, other)
}

// StateNegation negates the internal state on both sides of every pair.
type StateNegation struct{}

func (StateNegation) Apply(f device.Function) (device.Function, error) {
	return f.NegateStates()
}

func (StateNegation) Inverse() Transform { return StateNegation{} }
func (StateNegation) Order() int         { return 2 }
func (StateNegation) Symbol() string     { return "S" }
func (StateNegation) Describe() string   { return "(State Swap)" }

func (n StateNegation) Compose(other Transform) Transform {
	return NewComposite(n, other)
}

// PortExchange swaps two ports. Constructed canonically with i < j, so
// E(1,2) and E(2,1) are the same value.
type PortExchange struct {
	i, j int
}

// NewPortExchange validates and canonicalizes a port exchange
func NewPortExchange(i, j int) (PortExchange, error) {
	if i < 0 || j < 0 {
		return PortExchange{}, core.NewTransformError(
			fmt.Sprintf("port exchange indices must be non-negative, got %d and %d", i, j))
	}
	if i == j {
		return PortExchange{}, core.NewTransformError(
			fmt.Sprintf("port exchange requires two distinct ports, got %d twice", i))
	}
	if j < i {
		i, j = j, i
	}
	return PortExchange{i: i, j: j}, nil
}

func (e PortExchange) Apply(f device.Function) (device.Function, error) {
	return f.SwapPorts(e.i, e.j)
}

func (e PortExchange) Inverse() Transform { return e }
func (PortExchange) Order() int           { return 2 }

func (e PortExchange) Symbol() string {
	return fmt.Sprintf("E(%d,%d)", e.i+1, e.j+1)
}

func (e PortExchange) Describe() string {
	return fmt.Sprintf("(Swap ports %d <-> %d)", e.i+1, e.j+1)
}

func (e PortExchange) Compose(other Transform) Transform {
	return NewComposite(e, other)
}

// PortRotation shifts every port by a fixed offset modulo the port count.
// The rotation carries its port count so inversion and order need no
// outside context.
type PortRotation struct {
	offset int
	ports  int
}

// NewPortRotation validates a rotation; offsets that reduce to zero are
// the identity and rejected.
func NewPortRotation(offset, ports int) (PortRotation, error) {
	if ports < 1 {
		return PortRotation{}, core.NewTransformError(
			fmt.Sprintf("rotation requires at least one port, got %d", ports))
	}
	if ((offset%ports)+ports)%ports == 0 {
		return PortRotation{}, core.NewTransformError(
			fmt.Sprintf("rotation offset %d is the identity on %d ports", offset, ports))
	}
	return PortRotation{offset: offset, ports: ports}, nil
}

func (r PortRotation) Apply(f device.Function) (device.Function, error) {
	if f.Dims().Ports() != r.ports {
		return device.Function{}, core.NewTransformError(
			fmt.Sprintf("rotation built for %d ports applied to %d", r.ports, f.Dims().Ports()))
	}
	return f.RotatePorts(r.offset), nil
}

func (r PortRotation) Inverse() Transform {
	return PortRotation{offset: -r.offset, ports: r.ports}
}

func (r PortRotation) Order() int {
	reduced := ((r.offset % r.ports) + r.ports) % r.ports
	return r.ports / gcd(reduced, r.ports)
}

func (r PortRotation) Symbol() string {
	return fmt.Sprintf("R(%d)", r.offset)
}

func (r PortRotation) Describe() string {
	return fmt.Sprintf("(Rotate ports %d)", r.offset)
}

func (r PortRotation) Compose(other Transform) Transform {
	return NewComposite(r, other)
}

// Composite applies inner first, then outer: true function composition,
// not commutative in general.
type Composite struct {
	outer Transform
	inner Transform
}

// NewComposite pairs two transforms into outer∘inner
func NewComposite(outer, inner Transform) Composite {
	return Composite{outer: outer, inner: inner}
}

func (c Composite) Apply(f device.Function) (device.Function, error) {
	mid, err := c.inner.Apply(f)
	if err != nil {
		return device.Function{}, err
	}
	return c.outer.Apply(mid)
}

func (c Composite) Inverse() Transform {
	return Composite{outer: c.inner.Inverse(), inner: c.outer.Inverse()}
}

// Order is not statically determined for composites
func (Composite) Order() int { return 0 }

func (c Composite) Symbol() string {
	return c.outer.Symbol() + "*" + c.inner.Symbol()
}

func (c Composite) Describe() string {
	return fmt.Sprintf("(%s then %s)", c.inner.Symbol(), c.outer.Symbol())
}

func (c Composite) Compose(other Transform) Transform {
	return NewComposite(c, other)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
