// Package problems provides fixed nonlinear test-problem instances.
//
// Each instance implements the [nlp.Program] contract with closed-form
// derivatives:
//
//   - [HS071]: problem 71 from the Hock-Schittkowski collection, the
//     classic 4-variable solver example
//   - [Rosenbrock]: the banana function constrained to the unit disk
//   - [BoxQP]: a small convex quadratic over the box with a budget equality
//
// All instances also implement [nlp.KnownSolution]; HS071 additionally
// implements [nlp.Finalizer] with a console summary of the terminal state.
// Use [NewRegistry] to look instances up by name.
package problems
