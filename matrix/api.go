// SPDX-License-Identifier: MIT
// Package matrix - public constructor facades.
//
// Purpose:
//   - Provide intention-revealing entry points that delegate to NewDense.

package matrix

// NewIdentity returns Iₙ (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n ≤ 0.
// Complexity: O(n²) zero-init + O(n) diagonal writes.
//
// AI-Hints: Householder accumulates its reflector product starting from NewIdentity(M).
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}
