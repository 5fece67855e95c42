// Package matrix provides the dense linear-algebra substrate of linalg.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, deep Clone,
//     no-copy windows (View) and copy-based submatrices (Induced).
//   - Kernels over any Matrix: Mul, Transpose, MatVec and AllClose, with a
//     flat-slice fast path for *Dense operands.
//   - Vector primitives used by orthogonalization: L2Norm, Normalize, Dot,
//     Projection, Sign and BasisVec.
//   - Householder helpers: Reflect, Reflector and ReflectInPlace.
//   - Diagonal helpers: Diag and CreateDiag.
//
// All fallible functions return package sentinels (ErrDimensionMismatch,
// ErrOutOfRange, ...) wrapped with an operation tag; match them with errors.Is.
//
// Numeric degeneracy (zero-norm vectors, zero pivots) is not trapped by the
// kernels: NaN/Inf produced by arithmetic propagates into results. Only
// ingestion (NewDenseFrom, Set) enforces the finite-value policy.
package matrix
