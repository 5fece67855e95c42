// SPDX-License-Identifier: MIT

// Package qr factorizes a real dense matrix A (M×N) into A = Q·R, with Q
// having orthonormal columns and R upper triangular, and solves linear
// least-squares problems min‖Ax − b‖₂ on top of that factorization.
//
// Three strategies are available on the same engine:
//
//   - Classical Gram-Schmidt: column i is orthogonalized against q₀..qᵢ₋₁
//     and normalized. Loses orthogonality on nearly dependent columns.
//   - Modified Gram-Schmidt: column i is normalized first, then its
//     projection is removed from every later column.
//   - Householder: one reflection u = c + sign(c₀)·‖c‖·e₀ per column zeroes
//     the sub-diagonal of the active column. The default.
//
// Shapes (M rows, N columns, K = min(M, N)):
//
//	Gram-Schmidt           Q: M×N  R: N×N   (requires M ≥ N)
//	Householder, complete  Q: M×M  R: M×N
//	Householder, reduced   Q: M×K  R: K×N
//
// Usage:
//
//	e, err := qr.New(a, qr.WithReduce())
//	q, r, err := e.Householder()
//	x, err := e.Solve(b) // least squares, M ≥ N
//
// The engine keeps only an immutable copy of A and its options; every call
// starts from a fresh working copy and returns newly allocated results, so
// one engine may serve many goroutines.
//
// Degenerate input (zero columns, rank deficiency, zero pivots) is not
// trapped: NaN/Inf propagates to the caller. There is no pivoting.
//
// Complexity: factorizations O(M·N²) (Householder Q accumulation O(M²·K)),
// back substitution O(N²) per right-hand side.
package qr
