// Package matrix provides the small dense linear-algebra kernel used by the
// barycentric layout: a row-major Dense matrix, matrix–vector products and a
// Gaussian-elimination solver with partial pivoting.
//
// Systems solved here are tiny (one row per free vertex, a few dozen at most),
// so clarity and deterministic failure reporting win over blocked kernels.
// A system without a unique solution is reported as ErrSingular rather than
// yielding garbage values.
//
// See the examples in this package and embed for usage patterns.
package matrix
