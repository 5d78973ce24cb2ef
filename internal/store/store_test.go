package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

func sampleSolution() *nlp.Solution {
	return &nlp.Solution{
		Status:     nlp.StatusOptimal,
		X:          []float64{1, 4.743, 3.8211, 1.3794},
		ZLower:     make([]float64, 4),
		ZUpper:     make([]float64, 4),
		Lambda:     make([]float64, 2),
		G:          []float64{25.0000002, 40.0000001},
		Objective:  17.0140173,
		Iterations: 12,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	sol := sampleSolution()
	runID, err := s.Save("hs071", 1e-8, 200, sol)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Problem != "hs071" || meta.Status != "optimal" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Accuracy != 1e-8 || meta.MaxIterations != 200 {
		t.Errorf("settings not recorded: %+v", meta)
	}

	got, err := s.LoadSolution(runID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != nlp.StatusOptimal {
		t.Errorf("status = %v", got.Status)
	}
	if math.Abs(got.Objective-sol.Objective) > 1e-12 {
		t.Errorf("objective = %v", got.Objective)
	}
	for i := range sol.X {
		if got.X[i] != sol.X[i] {
			t.Errorf("x[%d] = %v, want %v", i, got.X[i], sol.X[i])
		}
	}
	if len(got.Lambda) != 2 || len(got.ZLower) != 4 {
		t.Errorf("multiplier lengths %d/%d", len(got.Lambda), len(got.ZLower))
	}
}

func TestListSorted(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	sol := sampleSolution()
	first, err := s.Save("hs071", 1e-8, 200, sol)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	second, err := s.Save("rosenbrock", 1e-8, 200, sol)
	if err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("order = %q, %q", runs[0].ID, runs[1].ID)
	}
}

func TestListSkipsCorruptedRun(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	good, err := s.Save("hs071", 1e-8, 200, sampleSolution())
	if err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(dir, "hs071_corrupt")
	if err := os.MkdirAll(bad, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bad, "metadata.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != good {
		t.Errorf("runs = %+v, want only %s", runs, good)
	}
}

func TestListEmpty(t *testing.T) {
	s := New(t.TempDir() + "/never-created")
	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if runs != nil {
		t.Errorf("runs = %v", runs)
	}
}

func TestUnknownRun(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("hs071_0"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := s.LoadSolution("hs071_0"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseStatus(t *testing.T) {
	for st := nlp.StatusOptimal; st <= nlp.StatusFailed; st++ {
		if got := parseStatus(st.String()); got != st {
			t.Errorf("parseStatus(%q) = %v", st.String(), got)
		}
	}
	if got := parseStatus("garbage"); got != nlp.StatusFailed {
		t.Errorf("garbage parsed as %v", got)
	}
}
