// Package engine hands a [nlp.Program] to the external SLSQP optimizer
// (github.com/curioloop/optimizer/slsqp) and maps the outcome back into a
// [nlp.Solution].
//
// The bridge validates the contract once, queries the Jacobian structure
// once, and from then on only fills numeric values into that fixed
// structure. Constraint rows are translated into the engine's vocabulary:
// an equal lower/upper pair becomes an equality, a sentinel-open side is
// dropped, and a two-sided row becomes a pair of one-sided inequalities.
//
// SLSQP maintains a quasi-Newton approximation and consumes first
// derivatives only; the Hessian side of the contract is not queried here.
package engine
