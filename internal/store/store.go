package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

// Store persists solve runs under a data directory, one subdirectory per
// run holding metadata.json and solution.json.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Problem       string    `json:"problem"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"`
	Objective     float64   `json:"objective"`
	Iterations    int       `json:"iterations"`
	Accuracy      float64   `json:"accuracy"`
	MaxIterations int       `json:"max_iterations"`
}

type solutionRecord struct {
	Status     string    `json:"status"`
	X          []float64 `json:"x"`
	ZLower     []float64 `json:"z_lower"`
	ZUpper     []float64 `json:"z_upper"`
	Lambda     []float64 `json:"lambda"`
	G          []float64 `json:"g"`
	Objective  float64   `json:"objective"`
	Iterations int       `json:"iterations"`
}

func (s *Store) Save(problem string, accuracy float64, maxIter int, sol *nlp.Solution) (string, error) {
	runID := fmt.Sprintf("%s_%d", problem, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Problem:       problem,
		Timestamp:     time.Now(),
		Status:        sol.Status.String(),
		Objective:     sol.Objective,
		Iterations:    sol.Iterations,
		Accuracy:      accuracy,
		MaxIterations: maxIter,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	rec := solutionRecord{
		Status:     sol.Status.String(),
		X:          sol.X,
		ZLower:     sol.ZLower,
		ZUpper:     sol.ZUpper,
		Lambda:     sol.Lambda,
		G:          sol.G,
		Objective:  sol.Objective,
		Iterations: sol.Iterations,
	}
	if err := writeJSON(filepath.Join(runDir, "solution.json"), rec); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			fmt.Printf("skipping run %s: %v\n", e.Name(), err)
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("unknown run: %s", runID)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSolution(runID string) (*nlp.Solution, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "solution.json"))
	if err != nil {
		return nil, fmt.Errorf("unknown run: %s", runID)
	}
	var rec solutionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &nlp.Solution{
		Status:     parseStatus(rec.Status),
		X:          rec.X,
		ZLower:     rec.ZLower,
		ZUpper:     rec.ZUpper,
		Lambda:     rec.Lambda,
		G:          rec.G,
		Objective:  rec.Objective,
		Iterations: rec.Iterations,
	}, nil
}

// ExportJSON writes metadata and solution for a run to stdout.
func (s *Store) ExportJSON(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	sol, err := s.LoadSolution(runID)
	if err != nil {
		return err
	}
	out := struct {
		Meta     *RunMetadata `json:"meta"`
		Solution struct {
			X         []float64 `json:"x"`
			G         []float64 `json:"g"`
			Objective float64   `json:"objective"`
		} `json:"solution"`
	}{Meta: meta}
	out.Solution.X = sol.X
	out.Solution.G = sol.G
	out.Solution.Objective = sol.Objective

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func parseStatus(s string) nlp.Status {
	for st := nlp.StatusOptimal; st <= nlp.StatusFailed; st++ {
		if st.String() == s {
			return st
		}
	}
	return nlp.StatusFailed
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
