// Package deriv verifies a program's analytic derivatives against central
// finite differences.
//
// [Check] runs the full battery for a [nlp.Program]: bound ordering, the
// objective gradient, the constraint Jacobian, and the Hessian of the
// Lagrangian split into its objective and per-constraint parts (the full
// symmetric matrix is reconstructed from the reported lower triangle before
// comparison). Differences are taken at the starting point and at a
// deterministic set of random points inside the bound box.
package deriv
