// SPDX-License-Identifier: MIT

package matrix

const (
	opDiag       = "Diag"
	opCreateDiag = "CreateDiag"
)

// Diag returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n).
func Diag(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = d.data[i*n+i]
		}

		return out, nil
	}

	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiag, err)
		}
	}

	return out, nil
}

// CreateDiag builds the len(v)×len(v) matrix with v on the diagonal.
// Errors: ErrNilMatrix (nil v), ErrInvalidDimensions (empty v).
func CreateDiag(v []float64) (*Dense, error) {
	if v == nil {
		return nil, matrixErrorf(opCreateDiag, ErrNilMatrix)
	}
	n := len(v)
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCreateDiag, err)
	}
	for i, x := range v {
		d.data[i*n+i] = x
	}

	return d, nil
}
