package problems

import (
	"fmt"
	"io"
	"os"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

// HS071 is problem 71 from the Hock-Schittkowski test collection:
//
//	min  x0·x3·(x0+x1+x2) + x2
//	s.t. x0·x1·x2·x3 ≥ 25
//	     x0² + x1² + x2² + x3² = 40
//	     1 ≤ xi ≤ 5
//
// Both the Jacobian and the Hessian are dense: 8 Jacobian triplets in
// row-major order and the 10 lower-triangular Hessian slots over rows 0..3.
type HS071 struct {
	// Out receives the Finalize summary. Defaults to stdout.
	Out io.Writer
}

func NewHS071() *HS071 {
	return &HS071{Out: os.Stdout}
}

func (p *HS071) Dims() nlp.Dims {
	return nlp.Dims{N: 4, M: 2, JacNNZ: 8, HessNNZ: 10}
}

func (p *HS071) Bounds() nlp.Bounds {
	return nlp.Bounds{
		XLower: []float64{1, 1, 1, 1},
		XUpper: []float64{5, 5, 5, 5},
		// g0 has no upper bound; g1 is an equality.
		GLower: []float64{25, 40},
		GUpper: []float64{nlp.Infinity, 40},
	}
}

func (p *HS071) StartingPoint() []float64 {
	return []float64{1, 5, 5, 1}
}

func (p *HS071) Objective(x []float64) float64 {
	return x[0]*x[3]*(x[0]+x[1]+x[2]) + x[2]
}

func (p *HS071) Gradient(x, grad []float64) {
	grad[0] = x[0]*x[3] + x[3]*(x[0]+x[1]+x[2])
	grad[1] = x[0] * x[3]
	grad[2] = x[0]*x[3] + 1
	grad[3] = x[0] * (x[0] + x[1] + x[2])
}

func (p *HS071) Constraints(x, g []float64) {
	g[0] = x[0] * x[1] * x[2] * x[3]
	g[1] = x[0]*x[0] + x[1]*x[1] + x[2]*x[2] + x[3]*x[3]
}

func (p *HS071) JacobianStructure() []nlp.Entry {
	return []nlp.Entry{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
	}
}

func (p *HS071) Jacobian(x, vals []float64) {
	vals[0] = x[1] * x[2] * x[3]
	vals[1] = x[0] * x[2] * x[3]
	vals[2] = x[0] * x[1] * x[3]
	vals[3] = x[0] * x[1] * x[2]
	vals[4] = 2 * x[0]
	vals[5] = 2 * x[1]
	vals[6] = 2 * x[2]
	vals[7] = 2 * x[3]
}

func (p *HS071) HessianStructure() []nlp.Entry {
	s := make([]nlp.Entry, 0, 10)
	for row := 0; row < 4; row++ {
		for col := 0; col <= row; col++ {
			s = append(s, nlp.Entry{Row: row, Col: col})
		}
	}
	return s
}

func (p *HS071) Hessian(objFactor float64, x, lambda, vals []float64) {
	// objective portion
	vals[0] = objFactor * (2 * x[3])                 // 0,0
	vals[1] = objFactor * x[3]                       // 1,0
	vals[2] = 0                                      // 1,1
	vals[3] = objFactor * x[3]                       // 2,0
	vals[4] = 0                                      // 2,1
	vals[5] = 0                                      // 2,2
	vals[6] = objFactor * (2*x[0] + x[1] + x[2])     // 3,0
	vals[7] = objFactor * x[0]                       // 3,1
	vals[8] = objFactor * x[0]                       // 3,2
	vals[9] = 0                                      // 3,3

	// first constraint
	vals[1] += lambda[0] * (x[2] * x[3])
	vals[3] += lambda[0] * (x[1] * x[3])
	vals[4] += lambda[0] * (x[0] * x[3])
	vals[6] += lambda[0] * (x[1] * x[2])
	vals[7] += lambda[0] * (x[0] * x[2])
	vals[8] += lambda[0] * (x[0] * x[1])

	// second constraint
	vals[0] += lambda[1] * 2
	vals[2] += lambda[1] * 2
	vals[5] += lambda[1] * 2
	vals[9] += lambda[1] * 2
}

// Optimum returns the tabulated solution of HS071.
func (p *HS071) Optimum() ([]float64, float64) {
	return []float64{1.00000000, 4.74299963, 3.82114998, 1.37940829}, 17.0140173
}

// Finalize writes the terminal state to the console: the primal vector, the
// bound multipliers, the objective and the final constraint values.
func (p *HS071) Finalize(sol *nlp.Solution) {
	w := p.Out
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, "\nsolution of the primal variables, x")
	for i, v := range sol.X {
		fmt.Fprintf(w, "x[%d] = %.8f\n", i, v)
	}
	fmt.Fprintln(w, "\nsolution of the bound multipliers, z_l and z_u")
	for i, v := range sol.ZLower {
		fmt.Fprintf(w, "z_l[%d] = %.8f\n", i, v)
	}
	for i, v := range sol.ZUpper {
		fmt.Fprintf(w, "z_u[%d] = %.8f\n", i, v)
	}
	fmt.Fprintln(w, "\nobjective value")
	fmt.Fprintf(w, "f(x*) = %.8f\n", sol.Objective)
	fmt.Fprintln(w, "\nfinal value of the constraints:")
	for i, v := range sol.G {
		fmt.Fprintf(w, "g(%d) = %.8f\n", i, v)
	}
}
