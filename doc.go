// SPDX-License-Identifier: MIT

// Package linalg is a small dense linear-algebra toolkit centred on QR
// factorization and least-squares solving.
//
// Subpackages:
//
//	matrix/ — Dense storage, views, kernels (Mul, Transpose, MatVec),
//	          vector primitives and Householder reflectors
//	kahan/  — compensated (Neumaier) summation
//	qr/     — QR engine: Householder, classical and modified Gram–Schmidt,
//	          least-squares Solve / SolveMatrix
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 2}, {1, 3}})
//	x, _ := qr.Solve(a, []float64{3, 5, 7})
//	// x ≈ [1 2]
//
// Installation:
//
//	go get github.com/katalvlaran/linalg
package linalg
