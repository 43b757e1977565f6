package id3

import (
	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
	"github.com/YuminosukeSato/goid3/tree"
)

// Accuracy returns the percentage in [0, 100] of rows whose predicted
// label matches the dataset's target column. A tree without a root is an
// EmptyTreeError; classification failures on any row propagate unchanged.
func Accuracy(ds *dataset.Dataset, t *tree.Tree) (float64, error) {
	if t == nil || t.Root() == nil {
		return 0, errors.NewEmptyTreeError("Accuracy")
	}
	if ds == nil || ds.Len() == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "goid3: Accuracy")
	}
	matches := 0
	target := ds.Target()
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		prediction, err := t.Classify(row)
		if err != nil {
			return 0, err
		}
		if prediction == row[target] {
			matches++
		}
	}
	return float64(matches) / float64(ds.Len()) * 100, nil
}
