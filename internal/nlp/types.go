package nlp

import "math"

// Infinity is the sentinel magnitude for an absent bound. Engines treat any
// value at or beyond ±1e19 as an open bound; problems that want "no upper
// bound" report this constant.
const Infinity = 2e19

// openBound is the threshold above which a bound counts as absent.
const openBound = 1e19

// UnboundedAbove reports whether u encodes an absent upper bound.
func UnboundedAbove(u float64) bool {
	return u >= openBound || math.IsInf(u, 1)
}

// UnboundedBelow reports whether l encodes an absent lower bound.
func UnboundedBelow(l float64) bool {
	return l <= -openBound || math.IsInf(l, -1)
}

// Entry is a 0-based triplet coordinate in a sparse matrix structure.
type Entry struct {
	Row, Col int
}

// Dims holds the counts an engine uses to size its storage. Every other
// Program operation must structurally agree with these values.
type Dims struct {
	// N is the number of primal variables.
	N int
	// M is the number of general constraints.
	M int
	// JacNNZ is the number of triplet entries in the constraint Jacobian.
	JacNNZ int
	// HessNNZ is the number of lower-triangular triplet entries in the
	// Hessian of the Lagrangian.
	HessNNZ int
}

// Bounds holds the variable and constraint bound vectors. A constraint with
// equal lower and upper bound is an equality; an open side is encoded with
// the Infinity sentinel.
type Bounds struct {
	XLower, XUpper []float64
	GLower, GUpper []float64
}

// Program is the problem-definition contract consumed by an optimization
// engine. Control flow is engine-driven: the engine calls these operations
// repeatedly during its iterations, in any order consistent with the
// structure-then-values protocol. Every operation is a pure function of its
// arguments; implementations keep no state across calls.
//
// Value evaluators write into caller-provided slices sized per Dims:
// Gradient fills grad[0:N], Constraints fills g[0:M], Jacobian fills
// vals[0:JacNNZ] in JacobianStructure order, and Hessian fills
// vals[0:HessNNZ] in HessianStructure order with
//
//	objFactor·∇²f(x) + Σ lambda[i]·∇²g_i(x)
//
// accumulated into the fixed lower-triangular slots.
type Program interface {
	Dims() Dims
	Bounds() Bounds
	StartingPoint() []float64

	Objective(x []float64) float64
	Gradient(x, grad []float64)
	Constraints(x, g []float64)

	JacobianStructure() []Entry
	Jacobian(x, vals []float64)

	HessianStructure() []Entry
	Hessian(objFactor float64, x, lambda, vals []float64)
}

// Finalizer is implemented by problems that want to digest the terminal
// solution, e.g. write a console summary. The hook has no effect on the
// optimization result.
type Finalizer interface {
	Finalize(sol *Solution)
}

// KnownSolution is implemented by textbook instances whose optimum is
// tabulated. Engines never consult it; it exists for verification and
// reporting.
type KnownSolution interface {
	Optimum() (x []float64, f float64)
}
