// Package nlp defines the callback contract between a nonlinear program
// and an optimization engine.
//
// A problem implements the [Program] interface, supplying its dimensions,
// bounds, starting point and closed-form evaluators for the objective,
// gradient, constraints, constraint Jacobian and Hessian of the Lagrangian:
//
//   - [Program]: the fixed operation set an engine drives
//   - [Dims]: variable, constraint and sparsity counts
//   - [Bounds]: variable and constraint bound vectors
//   - [Solution]: the terminal state reported back by an engine
//
// Sparse matrices use 0-based triplet coordinates ([Entry]). Structure and
// value queries are separate methods: JacobianStructure and HessianStructure
// return fixed index sets independent of x, so an engine can allocate its
// sparse storage exactly once before the first numeric evaluation.
//
// Problems may also implement [Finalizer] to digest the terminal solution
// and [KnownSolution] to expose a textbook optimum for verification.
//
// # Infinity
//
// Absent bounds are encoded with the large sentinel [Infinity]; any value of
// that magnitude or beyond is treated as an open bound. Use [UnboundedAbove]
// and [UnboundedBelow] rather than comparing against the constant.
package nlp
