package problems

import (
	"fmt"
	"sort"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

type entry struct {
	info    string
	factory func() nlp.Program
}

// Registry maps problem names to factories.
type Registry struct {
	problems map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]entry)}

	r.problems["hs071"] = entry{
		info:    "hock-schittkowski 71: cubic objective, 2 constraints",
		factory: func() nlp.Program { return NewHS071() },
	}
	r.problems["rosenbrock"] = entry{
		info:    "rosenbrock banana on the unit disk",
		factory: func() nlp.Program { return NewRosenbrock() },
	}
	r.problems["boxqp"] = entry{
		info:    "convex box qp with budget equality",
		factory: func() nlp.Program { return NewBoxQP() },
	}

	return r
}

// Get constructs the named problem.
func (r *Registry) Get(name string) (nlp.Program, error) {
	e, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return e.factory(), nil
}

// Info returns the one-line description of a problem, or "" if unknown.
func (r *Registry) Info(name string) string {
	return r.problems[name].info
}

// List returns the registered problem names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
