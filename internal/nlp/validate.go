package nlp

import "fmt"

// Validate checks a Program's declared dimensions against the shapes it
// actually returns. Any disagreement is a fatal configuration error: an
// engine sizing its storage from Dims would read or write out of range.
// Callers run this once before handing the program to an engine.
func Validate(p Program) error {
	d := p.Dims()

	switch {
	case d.N <= 0:
		return fmt.Errorf("%w: n = %d", ErrBadDims, d.N)
	case d.M < 0:
		return fmt.Errorf("%w: m = %d", ErrBadDims, d.M)
	case d.JacNNZ < 0 || d.JacNNZ > d.M*d.N:
		return fmt.Errorf("%w: jacobian nnz = %d with m×n = %d", ErrBadDims, d.JacNNZ, d.M*d.N)
	case d.HessNNZ < 0 || d.HessNNZ > d.N*(d.N+1)/2:
		return fmt.Errorf("%w: hessian nnz = %d with n = %d", ErrBadDims, d.HessNNZ, d.N)
	}

	if x0 := p.StartingPoint(); len(x0) != d.N {
		return fmt.Errorf("%w: starting point has %d entries, want %d", ErrDimensionMismatch, len(x0), d.N)
	}

	b := p.Bounds()
	if len(b.XLower) != d.N || len(b.XUpper) != d.N {
		return fmt.Errorf("%w: variable bounds have %d/%d entries, want %d",
			ErrDimensionMismatch, len(b.XLower), len(b.XUpper), d.N)
	}
	if len(b.GLower) != d.M || len(b.GUpper) != d.M {
		return fmt.Errorf("%w: constraint bounds have %d/%d entries, want %d",
			ErrDimensionMismatch, len(b.GLower), len(b.GUpper), d.M)
	}
	for i := range b.XLower {
		if b.XLower[i] > b.XUpper[i] {
			return fmt.Errorf("%w: variable %d has [%g, %g]", ErrBadBounds, i, b.XLower[i], b.XUpper[i])
		}
	}
	for i := range b.GLower {
		if UnboundedBelow(b.GLower[i]) || UnboundedAbove(b.GUpper[i]) {
			continue
		}
		if b.GLower[i] > b.GUpper[i] {
			return fmt.Errorf("%w: constraint %d has [%g, %g]", ErrBadBounds, i, b.GLower[i], b.GUpper[i])
		}
	}

	jac := p.JacobianStructure()
	if len(jac) != d.JacNNZ {
		return fmt.Errorf("%w: jacobian structure has %d entries, declared %d", ErrBadStructure, len(jac), d.JacNNZ)
	}
	for k, e := range jac {
		if e.Row < 0 || e.Row >= d.M || e.Col < 0 || e.Col >= d.N {
			return fmt.Errorf("%w: jacobian entry %d at (%d, %d)", ErrBadStructure, k, e.Row, e.Col)
		}
	}

	hess := p.HessianStructure()
	if len(hess) != d.HessNNZ {
		return fmt.Errorf("%w: hessian structure has %d entries, declared %d", ErrBadStructure, len(hess), d.HessNNZ)
	}
	for k, e := range hess {
		if e.Row < 0 || e.Row >= d.N || e.Col < 0 || e.Col >= d.N {
			return fmt.Errorf("%w: hessian entry %d at (%d, %d)", ErrBadStructure, k, e.Row, e.Col)
		}
		if e.Col > e.Row {
			return fmt.Errorf("%w: hessian entry %d at (%d, %d) is above the diagonal", ErrBadStructure, k, e.Row, e.Col)
		}
	}

	return nil
}
