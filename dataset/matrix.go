package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// FromMatrix builds a Dataset from a gonum design matrix X and a column
// vector y of target labels. X columns map to attributes in order; every
// value in X and y must be exactly 0 or 1. target names the class column
// (DefaultTarget when empty).
func FromMatrix(X, y mat.Matrix, attributes []string, target string) (*Dataset, error) {
	if target == "" {
		target = DefaultTarget
	}

	// 入力検証
	rX, cX := X.Dims()
	rY, cY := y.Dims()

	if rX == 0 || cX == 0 {
		return nil, errors.NewValueError("FromMatrix", "empty matrix")
	}
	if cX != len(attributes) {
		return nil, errors.NewDimensionError("FromMatrix", len(attributes), cX, 1)
	}
	if rY != rX {
		return nil, errors.NewDimensionError("FromMatrix", rX, rY, 0)
	}
	if cY != 1 {
		return nil, errors.NewValueError("FromMatrix", "y must be a column vector (n×1 matrix)")
	}

	rows := make([]Row, rX)
	for i := 0; i < rX; i++ {
		row := make(Row, len(attributes)+1)
		for j, attr := range attributes {
			v := X.At(i, j)
			if v != 0 && v != 1 {
				return nil, errors.NewValueError("FromMatrix", fmt.Sprintf("row %d: attribute %q must be 0 or 1: got %g", i, attr, v))
			}
			row[attr] = int(v)
		}
		v := y.At(i, 0)
		if v != 0 && v != 1 {
			return nil, errors.NewValueError("FromMatrix", fmt.Sprintf("row %d: target must be 0 or 1: got %g", i, v))
		}
		row[target] = int(v)
		rows[i] = row
	}
	return New(rows, attributes, target)
}

// Matrices converts the dataset back to a gonum design matrix and target
// vector, with columns in attribute order.
func (d *Dataset) Matrices() (*mat.Dense, *mat.VecDense, error) {
	if d.Len() == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "goid3: Matrices")
	}
	if len(d.attributes) == 0 {
		return nil, nil, errors.NewValueError("Matrices", "dataset has no attribute columns")
	}
	X := mat.NewDense(d.Len(), len(d.attributes), nil)
	y := mat.NewVecDense(d.Len(), nil)
	for i, row := range d.rows {
		for j, attr := range d.attributes {
			X.Set(i, j, float64(row[attr]))
		}
		y.SetVec(i, float64(row[d.target]))
	}
	return X, y, nil
}
