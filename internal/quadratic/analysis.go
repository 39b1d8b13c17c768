// Package quadratic classifies f(x) = ax² + bx + c and computes its roots,
// vertex and discriminant.
package quadratic

import (
	"math"
	"slices"
)

// Kind classifies the function described by three coefficients.
type Kind int

const (
	// Indefinite is f(x) = 0: every x is a root.
	Indefinite Kind = iota
	// Constant is f(x) = c with c ≠ 0: no roots.
	Constant
	// Linear is f(x) = bx + c with b ≠ 0: one root.
	Linear
	// Quadratic is a ≠ 0.
	Quadratic
)

func (k Kind) String() string {
	switch k {
	case Indefinite:
		return "indefinite"
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	default:
		return "unknown"
	}
}

// VertexKind tells whether the vertex is the minimum or maximum of f.
type VertexKind int

const (
	Minimum VertexKind = iota
	Maximum
)

func (v VertexKind) String() string {
	if v == Maximum {
		return "maximum"
	}
	return "minimum"
}

// Point is a point of the plane.
type Point struct {
	X, Y float64
}

// Analysis is the result of Analyze. Discriminant, Vertex and VertexKind
// are only set for Quadratic.
type Analysis struct {
	A, B, C float64
	Kind    Kind

	// Roots are the real roots in ascending order.
	Roots []float64

	Discriminant float64
	Vertex       Point
	VertexKind   VertexKind

	// YIntercept is f(0).
	YIntercept float64
}

// HasVertex reports whether the function has a vertex.
func (an Analysis) HasVertex() bool {
	return an.Kind == Quadratic
}

// Eval returns f(x).
func (an Analysis) Eval(x float64) float64 {
	return an.A*x*x + an.B*x + an.C
}

// Analyze classifies f(x) = ax² + bx + c. The degenerate kinds stop at
// what they need: no discriminant or vertex is computed for them.
func Analyze(a, b, c float64) Analysis {
	an := Analysis{A: a, B: b, C: c, YIntercept: clean(c)}

	switch {
	case a == 0 && b == 0 && c == 0:
		an.Kind = Indefinite
		return an
	case a == 0 && b == 0:
		an.Kind = Constant
		return an
	case a == 0:
		an.Kind = Linear
		an.Roots = []float64{clean(-c / b)}
		return an
	}

	an.Kind = Quadratic
	an.Discriminant = b*b - 4*(a*c)

	switch {
	case an.Discriminant < 0:
		// No real roots.
	case an.Discriminant == 0:
		an.Roots = []float64{clean(-b / (2 * a))}
	default:
		// q never cancels: b and the root of Δ share a sign.
		q := -(b + math.Copysign(math.Sqrt(an.Discriminant), b)) / 2
		an.Roots = []float64{clean(q / a), clean(c / q)}
		slices.Sort(an.Roots)
	}

	xv := -b / (2 * a)
	an.Vertex = Point{X: clean(xv), Y: clean(an.Eval(xv))}
	if a < 0 {
		an.VertexKind = Maximum
	}
	return an
}

// Validate reports a RangeError when the coefficients are finite but some
// derived value overflowed.
func (an Analysis) Validate() error {
	values := append([]float64{an.Discriminant, an.Vertex.X, an.Vertex.Y}, an.Roots...)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &RangeError{A: an.A, B: an.B, C: an.C}
		}
	}
	return nil
}

// clean turns negative zero into zero so it never prints as "-0".
func clean(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
