package problems

import (
	"math"
	"testing"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

func TestAllProblemsValidate(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		p, err := r.Get(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := nlp.Validate(p); err != nil {
			t.Errorf("%s: contract check failed: %v", name, err)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nonexistent"); err == nil {
		t.Fatal("expected error for unknown problem")
	}
	if r.Info("nonexistent") != "" {
		t.Fatal("expected empty info for unknown problem")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	if len(names) != 3 {
		t.Fatalf("expected 3 problems, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, name := range names {
		if r.Info(name) == "" {
			t.Errorf("%s: missing description", name)
		}
	}
}

func TestRosenbrockOptimum(t *testing.T) {
	p := NewRosenbrock()
	xs, fs := p.Optimum()

	if f := p.Objective(xs); math.Abs(f-fs) > 1e-8 {
		t.Errorf("f(x*) = %.12f, want %.12f", f, fs)
	}

	// the disk constraint is active at the solution
	g := make([]float64, 1)
	p.Constraints(xs, g)
	if math.Abs(g[0]-1) > 1e-6 {
		t.Errorf("g(x*) = %.12f, want 1", g[0])
	}
}

func TestBoxQPOptimum(t *testing.T) {
	p := NewBoxQP()
	xs, fs := p.Optimum()

	if f := p.Objective(xs); math.Abs(f-fs) > 1e-12 {
		t.Errorf("f(x*) = %g, want %g", f, fs)
	}

	// budget holds and the x0 lower bound is active
	g := make([]float64, 1)
	p.Constraints(xs, g)
	if g[0] != 1 {
		t.Errorf("g(x*) = %g, want 1", g[0])
	}
	if xs[0] != 0 {
		t.Errorf("x*[0] = %g, want 0 (bound active)", xs[0])
	}
}

func TestStartingPointsInsideBox(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		p, _ := r.Get(name)
		b := p.Bounds()
		for i, v := range p.StartingPoint() {
			if v < b.XLower[i] || v > b.XUpper[i] {
				t.Errorf("%s: x0[%d] = %g outside [%g, %g]", name, i, v, b.XLower[i], b.XUpper[i])
			}
		}
	}
}
