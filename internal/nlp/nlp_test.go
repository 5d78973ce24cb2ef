package nlp

import (
	"errors"
	"math"
	"testing"
)

// stub is a minimal valid 2-variable, 1-constraint program whose shape can
// be broken field by field.
type stub struct {
	dims   Dims
	bounds Bounds
	start  []float64
	jac    []Entry
	hess   []Entry
}

func validStub() *stub {
	return &stub{
		dims: Dims{N: 2, M: 1, JacNNZ: 2, HessNNZ: 3},
		bounds: Bounds{
			XLower: []float64{0, 0},
			XUpper: []float64{1, 1},
			GLower: []float64{1},
			GUpper: []float64{Infinity},
		},
		start: []float64{0.5, 0.5},
		jac:   []Entry{{0, 0}, {0, 1}},
		hess:  []Entry{{0, 0}, {1, 0}, {1, 1}},
	}
}

func (s *stub) Dims() Dims                    { return s.dims }
func (s *stub) Bounds() Bounds                { return s.bounds }
func (s *stub) StartingPoint() []float64      { return s.start }
func (s *stub) Objective(x []float64) float64 { return x[0] + x[1] }
func (s *stub) Gradient(x, grad []float64)    { grad[0], grad[1] = 1, 1 }
func (s *stub) Constraints(x, g []float64)    { g[0] = x[0] * x[1] }
func (s *stub) JacobianStructure() []Entry    { return s.jac }
func (s *stub) Jacobian(x, vals []float64)    { vals[0], vals[1] = x[1], x[0] }
func (s *stub) HessianStructure() []Entry     { return s.hess }
func (s *stub) Hessian(objFactor float64, x, lambda, vals []float64) {
	vals[0], vals[1], vals[2] = 0, lambda[0], 0
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(validStub()); err != nil {
		t.Fatalf("valid program rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*stub)
		cause error
	}{
		{
			"zero variables",
			func(s *stub) { s.dims.N = 0 },
			ErrBadDims,
		},
		{
			"jacobian nnz above dense",
			func(s *stub) { s.dims.JacNNZ = 5 },
			ErrBadDims,
		},
		{
			"short starting point",
			func(s *stub) { s.start = []float64{0.5} },
			ErrDimensionMismatch,
		},
		{
			"short variable bounds",
			func(s *stub) { s.bounds.XLower = []float64{0} },
			ErrDimensionMismatch,
		},
		{
			"inverted variable bounds",
			func(s *stub) { s.bounds.XLower[0] = 2 },
			ErrBadBounds,
		},
		{
			"inverted constraint bounds",
			func(s *stub) { s.bounds.GUpper[0] = 0 },
			ErrBadBounds,
		},
		{
			"structure cardinality mismatch",
			func(s *stub) { s.jac = s.jac[:1] },
			ErrBadStructure,
		},
		{
			"jacobian coordinate out of range",
			func(s *stub) { s.jac[1].Col = 2 },
			ErrBadStructure,
		},
		{
			"hessian above diagonal",
			func(s *stub) { s.hess[1] = Entry{Row: 0, Col: 1} },
			ErrBadStructure,
		},
	}

	for _, tt := range tests {
		s := validStub()
		tt.mod(s)
		err := Validate(s)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.Is(err, tt.cause) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.cause)
		}
	}
}

func TestValidateOpenConstraintBounds(t *testing.T) {
	// sentinel sides are never compared against each other
	s := validStub()
	s.bounds.GLower[0] = -Infinity
	s.bounds.GUpper[0] = -30
	if err := Validate(s); err != nil {
		t.Fatalf("open lower bound rejected: %v", err)
	}
}

func TestUnbounded(t *testing.T) {
	tests := []struct {
		v            float64
		above, below bool
	}{
		{0, false, false},
		{2e19, true, false},
		{-2e19, false, true},
		{1e19, true, false},
		{5, false, false},
		{math.Inf(1), true, false},
		{math.Inf(-1), false, true},
	}
	for _, tt := range tests {
		if got := UnboundedAbove(tt.v); got != tt.above {
			t.Errorf("UnboundedAbove(%g) = %v, want %v", tt.v, got, tt.above)
		}
		if got := UnboundedBelow(tt.v); got != tt.below {
			t.Errorf("UnboundedBelow(%g) = %v, want %v", tt.v, got, tt.below)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOptimal, "optimal"},
		{StatusIterationLimit, "iteration limit"},
		{StatusInfeasible, "infeasible"},
		{StatusNumericalError, "numerical error"},
		{StatusFailed, "failed"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSolutionHelpers(t *testing.T) {
	sol := &Solution{Status: StatusOptimal, X: []float64{1, 2}}
	if !sol.IsOptimal() || !sol.HasSolution() || sol.IsInfeasible() {
		t.Error("optimal solution misclassified")
	}
	if sol.Value(1) != 2 || sol.Value(5) != 0 || sol.Value(-1) != 0 {
		t.Error("Value indexing wrong")
	}

	sol.Status = StatusIterationLimit
	if sol.IsOptimal() || !sol.HasSolution() {
		t.Error("iteration-limit solution misclassified")
	}

	sol.Status = StatusInfeasible
	if sol.HasSolution() || !sol.IsInfeasible() {
		t.Error("infeasible solution misclassified")
	}
}
