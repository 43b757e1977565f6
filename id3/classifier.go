package id3

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goid3/core/model"
	"github.com/YuminosukeSato/goid3/core/parallel"
	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/metrics"
	"github.com/YuminosukeSato/goid3/pkg/errors"
	"github.com/YuminosukeSato/goid3/pkg/log"
	"github.com/YuminosukeSato/goid3/tree"
)

// Classifier is a scikit-learn style estimator wrapping tree induction.
// Fit grows a decision tree from a dataset, Predict classifies binary
// feature matrices whose columns follow the training attribute order,
// and PruneWith swaps the tree for a post-pruned variant.
type Classifier struct {
	model.BaseEstimator

	criterion     Criterion
	criterionName string
	logger        log.Logger

	tree       *tree.Tree
	attributes []string
	target     string
}

// NewClassifier creates a classifier splitting on entropy unless
// configured otherwise.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.GetLoggerWithName("id3.classifier")
	}
	return c
}

// Fit grows the decision tree from the training dataset.
func (c *Classifier) Fit(ds *dataset.Dataset) (err error) {
	defer errors.Recover(&err, "Classifier.Fit")

	if ds == nil || ds.Len() == 0 {
		return errors.NewModelError("Classifier.Fit", "empty data", errors.ErrEmptyData)
	}

	criterion := c.criterion
	if criterion == nil {
		name := c.criterionName
		if name == "" {
			criterion = Entropy{}
		} else {
			criterion, err = CriterionByName(name)
			if err != nil {
				return err
			}
		}
	}

	start := time.Now()
	t, err := Construct(ds, criterion)
	if err != nil {
		return err
	}

	c.criterion = criterion
	c.tree = t
	c.attributes = ds.Attributes()
	c.target = ds.Target()
	c.SetFitted()

	c.logger.Info("model fitted",
		log.ModelNameKey, "ID3Classifier",
		log.OperationKey, log.OperationFit,
		log.CriterionKey, criterion.Name(),
		log.SamplesKey, ds.Len(),
		log.AttributesKey, len(c.attributes),
		log.TreeNodesKey, t.Size(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// PredictRow classifies a single row of attribute values.
func (c *Classifier) PredictRow(row dataset.Row) (int, error) {
	if !c.IsFitted() {
		return 0, errors.NewNotFittedError("ID3Classifier", "PredictRow")
	}
	return c.tree.Classify(row)
}

// Predict classifies every row of X and returns an n×1 matrix of 0/1
// labels. Columns of X must follow the attribute order of the training
// dataset, and every cell must be 0 or 1.
func (c *Classifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !c.IsFitted() {
		return nil, errors.NewNotFittedError("ID3Classifier", "Predict")
	}

	r, cols := X.Dims()
	if r == 0 || cols == 0 {
		return nil, errors.NewValueError("Classifier.Predict", "empty matrix")
	}
	if cols != len(c.attributes) {
		return nil, errors.NewDimensionError("Classifier.Predict", len(c.attributes), cols, 1)
	}

	// Row counts at or below this are classified sequentially.
	const parallelThreshold = 1000

	predictions := mat.NewDense(r, 1, nil)
	rowErrs := make([]error, r)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		row := make(dataset.Row, cols)
		for i := start; i < end; i++ {
			for j, attr := range c.attributes {
				v := X.At(i, j)
				if v != 0 && v != 1 {
					rowErrs[i] = errors.NewValueError("Classifier.Predict", "attribute values must be 0 or 1")
					return
				}
				row[attr] = int(v)
			}
			label, err := c.tree.Classify(row)
			if err != nil {
				rowErrs[i] = err
				return
			}
			predictions.Set(i, 0, float64(label))
		}
	})
	for _, err := range rowErrs {
		if err != nil {
			return nil, err
		}
	}

	return predictions, nil
}

// Score predicts labels for X and returns the fraction matching y, a
// value in [0, 1].
func (c *Classifier) Score(X, y mat.Matrix) (float64, error) {
	if !c.IsFitted() {
		return 0, errors.NewNotFittedError("ID3Classifier", "Score")
	}

	yPred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.AccuracyMatrix(y, yPred)
}

// Tree returns the grown decision tree, or nil before Fit.
func (c *Classifier) Tree() *tree.Tree {
	return c.tree
}

// PruneWith runs the pruner against the fitted tree and keeps the best
// tree it finds. The validation set drives the pruner's accuracy
// comparisons.
func (c *Classifier) PruneWith(p *Pruner, validation *dataset.Dataset) error {
	if !c.IsFitted() {
		return errors.NewNotFittedError("ID3Classifier", "PruneWith")
	}

	pruned, err := p.Prune(validation, c.tree)
	if err != nil {
		return err
	}
	c.tree = pruned
	return nil
}
