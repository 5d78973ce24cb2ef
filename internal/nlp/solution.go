package nlp

// Status is the terminal state an engine reports for a solve.
type Status int

const (
	// StatusOptimal means the engine converged to a point satisfying its
	// tolerances.
	StatusOptimal Status = iota
	// StatusIterationLimit means the iteration budget was exhausted.
	StatusIterationLimit
	// StatusInfeasible means the engine decided the constraints are
	// incompatible.
	StatusInfeasible
	// StatusNumericalError means the engine hit a numerical failure
	// (non-descent direction, NaN/Inf, singular subproblem).
	StatusNumericalError
	// StatusFailed covers every other unsuccessful termination.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusIterationLimit:
		return "iteration limit"
	case StatusInfeasible:
		return "infeasible"
	case StatusNumericalError:
		return "numerical error"
	default:
		return "failed"
	}
}

// Solution is the terminal state of a solve, owned and produced by the
// engine. The adapter side only consumes and displays it.
type Solution struct {
	// Status is the engine's termination code.
	Status Status

	// X is the final primal vector.
	X []float64

	// ZLower and ZUpper are the bound multipliers. Engines that do not
	// produce bound multipliers leave them zero.
	ZLower, ZUpper []float64

	// Lambda holds the constraint multipliers. Engines that do not expose
	// multipliers leave it zero.
	Lambda []float64

	// G holds the constraint values at X.
	G []float64

	// Objective is the objective value at X.
	Objective float64

	// Iterations is the number of engine iterations performed.
	Iterations int
}

// IsOptimal reports whether the solve converged.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// IsInfeasible reports whether the engine declared the problem infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == StatusInfeasible
}

// HasSolution reports whether X holds a usable point: optimal, or a
// best-effort iterate after hitting the iteration limit.
func (s *Solution) HasSolution() bool {
	return s.Status == StatusOptimal || s.Status == StatusIterationLimit
}

// Value returns the solution value for variable i, or 0 when out of range.
func (s *Solution) Value(i int) float64 {
	if i < 0 || i >= len(s.X) {
		return 0
	}
	return s.X[i]
}
