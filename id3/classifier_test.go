package id3

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

func TestClassifierNotFitted(t *testing.T) {
	clf := NewClassifier()
	X := mat.NewDense(1, 2, []float64{0, 1})
	y := mat.NewDense(1, 1, []float64{1})

	t.Run("Predict", func(t *testing.T) {
		if _, err := clf.Predict(X); !isNotFitted(err) {
			t.Errorf("Predict() error = %v, want *NotFittedError", err)
		}
	})
	t.Run("PredictRow", func(t *testing.T) {
		if _, err := clf.PredictRow(dataset.Row{"A": 0, "B": 1}); !isNotFitted(err) {
			t.Errorf("PredictRow() error = %v, want *NotFittedError", err)
		}
	})
	t.Run("Score", func(t *testing.T) {
		if _, err := clf.Score(X, y); !isNotFitted(err) {
			t.Errorf("Score() error = %v, want *NotFittedError", err)
		}
	})
	t.Run("PruneWith", func(t *testing.T) {
		err := clf.PruneWith(NewPruner(1, 1, WithSeed(1)), trainingSet(t))
		if !isNotFitted(err) {
			t.Errorf("PruneWith() error = %v, want *NotFittedError", err)
		}
	})
}

func isNotFitted(err error) bool {
	var notFitted *errors.NotFittedError
	return errors.As(err, &notFitted)
}

func TestClassifierFitPredict(t *testing.T) {
	clf := NewClassifier()
	if err := clf.Fit(trainingSet(t)); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if !clf.IsFitted() {
		t.Fatal("IsFitted() = false after Fit")
	}
	if clf.Tree() == nil {
		t.Fatal("Tree() = nil after Fit")
	}

	tests := []struct {
		name string
		row  dataset.Row
		want int
	}{
		{name: "Both attributes zero", row: dataset.Row{"A": 0, "B": 0}, want: 0},
		{name: "Second attribute set", row: dataset.Row{"A": 0, "B": 1}, want: 1},
		{name: "First attribute set", row: dataset.Row{"A": 1, "B": 0}, want: 1},
		{name: "Both attributes set", row: dataset.Row{"A": 1, "B": 1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clf.PredictRow(tt.row)
			if err != nil {
				t.Fatalf("PredictRow() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PredictRow(%v) = %d, want %d", tt.row, got, tt.want)
			}
		})
	}
}

func TestClassifierPredictMatrix(t *testing.T) {
	clf := NewClassifier()
	if err := clf.Fit(trainingSet(t)); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// Columns follow the training attribute order A, B.
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	got, err := clf.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	want := []float64{0, 1, 1, 1}
	r, c := got.Dims()
	if r != 4 || c != 1 {
		t.Fatalf("Predict() dims = (%d, %d), want (4, 1)", r, c)
	}
	for i, label := range want {
		if got.At(i, 0) != label {
			t.Errorf("Predict() row %d = %v, want %v", i, got.At(i, 0), label)
		}
	}
}

func TestClassifierPredictErrors(t *testing.T) {
	clf := NewClassifier()
	if err := clf.Fit(trainingSet(t)); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	t.Run("Empty matrix", func(t *testing.T) {
		_, err := clf.Predict(&mat.Dense{})
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Errorf("Predict() error = %v, want *ValueError", err)
		}
	})

	t.Run("Column count mismatch", func(t *testing.T) {
		_, err := clf.Predict(mat.NewDense(1, 3, []float64{0, 1, 0}))
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("Predict() error = %v, want *DimensionError", err)
		}
	})

	t.Run("Non-binary value", func(t *testing.T) {
		_, err := clf.Predict(mat.NewDense(1, 2, []float64{0, 2}))
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Errorf("Predict() error = %v, want *ValueError", err)
		}
	})
}

func TestClassifierScore(t *testing.T) {
	clf := NewClassifier()
	ds := trainingSet(t)
	if err := clf.Fit(ds); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	X, y, err := ds.Matrices()
	if err != nil {
		t.Fatalf("Matrices() error = %v", err)
	}

	got, err := clf.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 1.0 {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}

func TestClassifierFitErrors(t *testing.T) {
	t.Run("Nil dataset", func(t *testing.T) {
		clf := NewClassifier()
		if err := clf.Fit(nil); !errors.Is(err, errors.ErrEmptyData) {
			t.Errorf("Fit(nil) error = %v, want ErrEmptyData", err)
		}
	})

	t.Run("Unknown criterion name", func(t *testing.T) {
		clf := NewClassifier(WithCriterion("gini"))
		err := clf.Fit(trainingSet(t))
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Errorf("Fit() error = %v, want *ValueError", err)
		}
		if clf.IsFitted() {
			t.Error("IsFitted() = true after failed Fit")
		}
	})
}

func TestClassifierCriterionOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "Named criterion", opts: []Option{WithCriterion("variance")}},
		{name: "Criterion strategy", opts: []Option{WithCriterionStrategy(Variance{})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := NewClassifier(tt.opts...)
			ds := trainingSet(t)
			if err := clf.Fit(ds); err != nil {
				t.Fatalf("Fit() error = %v", err)
			}
			acc, err := Accuracy(ds, clf.Tree())
			if err != nil {
				t.Fatalf("Accuracy() error = %v", err)
			}
			if acc != 100 {
				t.Errorf("training accuracy = %v, want 100", acc)
			}
		})
	}
}

func TestClassifierPruneWith(t *testing.T) {
	clf := NewClassifier()
	if err := clf.Fit(trainingSet(t)); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	validation := contradictingValidation(t)
	if err := clf.PruneWith(NewPruner(5, 2, WithSeed(1)), validation); err != nil {
		t.Fatalf("PruneWith() error = %v", err)
	}

	// Pruning against contradicting data collapses the tree into one that
	// predicts 1 for the all-zero row.
	got, err := clf.PredictRow(dataset.Row{"A": 0, "B": 0})
	if err != nil {
		t.Fatalf("PredictRow() error = %v", err)
	}
	if got != 1 {
		t.Errorf("PredictRow() after pruning = %d, want 1", got)
	}
}
