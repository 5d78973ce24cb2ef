package deriv

import (
	"testing"

	"github.com/swsmth4776/nlplab/internal/nlp"
	"github.com/swsmth4776/nlplab/internal/problems"
)

func TestCheckRegisteredProblems(t *testing.T) {
	r := problems.NewRegistry()
	for _, name := range r.List() {
		p, err := r.Get(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		rep, err := Check(name, p, DefaultOptions())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !rep.OK() {
			for _, res := range rep.Results {
				if !res.OK {
					t.Errorf("%s: %s failed (max rel %.3e)", name, res.Name, res.MaxRel)
				}
			}
		}
	}
}

// badGradient perturbs one gradient component of HS071.
type badGradient struct {
	*problems.HS071
}

func (b badGradient) Gradient(x, grad []float64) {
	b.HS071.Gradient(x, grad)
	grad[0] += 0.5
}

func TestCheckCatchesWrongGradient(t *testing.T) {
	rep, err := Check("bad", badGradient{problems.NewHS071()}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if rep.OK() {
		t.Fatal("expected gradient check to fail")
	}
	for _, res := range rep.Results {
		switch res.Name {
		case "gradient":
			if res.OK {
				t.Error("gradient check passed on perturbed gradient")
			}
		case "jacobian", "bounds":
			if !res.OK {
				t.Errorf("%s check failed but only the gradient is wrong", res.Name)
			}
		}
	}
}

// badHessian drops the lambda terms of HS071.
type badHessian struct {
	*problems.HS071
}

func (b badHessian) Hessian(objFactor float64, x, lambda, vals []float64) {
	b.HS071.Hessian(objFactor, x, make([]float64, len(lambda)), vals)
}

func TestCheckCatchesWrongConstraintHessian(t *testing.T) {
	rep, err := Check("bad", badHessian{problems.NewHS071()}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	objOK, consFailed := false, false
	for _, res := range rep.Results {
		switch res.Name {
		case "hessian (objective)":
			objOK = res.OK
		case "hessian (constraint 0)", "hessian (constraint 1)":
			if !res.OK {
				consFailed = true
			}
		}
	}
	if !objOK {
		t.Error("objective hessian should still verify")
	}
	if !consFailed {
		t.Error("expected a constraint hessian check to fail")
	}
}

func TestCheckRejectsInvalidProgram(t *testing.T) {
	p := badDims{problems.NewHS071()}
	if _, err := Check("bad", p, DefaultOptions()); err == nil {
		t.Fatal("expected contract violation")
	}
}

type badDims struct {
	*problems.HS071
}

func (b badDims) Dims() nlp.Dims {
	d := b.HS071.Dims()
	d.JacNNZ = 7
	return d
}

func TestCheckBounds(t *testing.T) {
	good := nlp.Bounds{
		XLower: []float64{0, 1},
		XUpper: []float64{1, 1},
		GLower: []float64{-nlp.Infinity},
		GUpper: []float64{-50},
	}
	if res := CheckBounds(good); !res.OK {
		t.Error("valid bounds rejected")
	}

	bad := good
	bad.XLower = []float64{2, 1}
	if res := CheckBounds(bad); res.OK {
		t.Error("inverted variable bounds accepted")
	}
}
