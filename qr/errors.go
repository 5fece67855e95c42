// SPDX-License-Identifier: MIT

package qr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// Sentinels surfaced from the matrix package, re-exported so callers can
// match with errors.Is without importing matrix.
var (
	ErrNilMatrix         = matrix.ErrNilMatrix
	ErrInvalidDimensions = matrix.ErrInvalidDimensions
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrNaNInf            = matrix.ErrNaNInf
)

var (
	// ErrUnderdetermined is returned when an operation needs M ≥ N
	// (Gram-Schmidt, Solve) but A has fewer rows than columns.
	ErrUnderdetermined = errors.New("qr: fewer rows than columns")

	// ErrUnknownMethod is returned by Factorize for an unrecognized Method.
	ErrUnknownMethod = errors.New("qr: unknown method")
)

// qrErrorf tags err with the operation name, keeping errors.Is intact.
func qrErrorf(op string, err error) error {
	return fmt.Errorf("qr.%s: %w", op, err)
}
