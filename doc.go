// Package goid3 provides ID3 decision-tree learning for binary
// classification, with randomized post-pruning and a scikit-learn-like
// estimator API.
//
// goid3 grows trees over datasets whose attributes and class labels are
// all 0 or 1, using either entropy or variance as the split heuristic,
// and prunes them against a validation set with a randomized search.
//
// # Features
//
// - Two split heuristics: information-gain (entropy) and variance impurity
// - Randomized post-pruning: L restarts of up to K node collapses, keeping the best validation accuracy
// - scikit-learn-like API: Fit / Predict / Score over gonum matrices
// - Deterministic runs: ordered tie-breaks and seedable pruning
// - Robust Error Handling: typed errors with stack traces
// - CSV and matrix ingestion with a configurable target column
//
// # Installation
//
// Install goid3 using go get:
//
//	go get github.com/YuminosukeSato/goid3
//
// # Quick Start
//
// Here's a minimal train-evaluate-prune loop:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/goid3/dataset"
//	    "github.com/YuminosukeSato/goid3/id3"
//	)
//
//	func main() {
//	    training, err := dataset.FromCSVFile("training_set.csv", "Class")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    validation, err := dataset.FromCSVFile("validation_set.csv", "Class")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    tree, err := id3.Construct(training, id3.Entropy{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pruner := id3.NewPruner(20, 5, id3.WithSeed(42))
//	    pruned, err := pruner.Prune(validation, tree)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    accuracy, _ := id3.Accuracy(validation, pruned)
//	    fmt.Printf("Validation accuracy: %.2f%%\n", accuracy)
//	    fmt.Print(pruned)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - id3: induction, evaluation, pruning, the Classifier estimator and the Experiment runner
//   - tree: the indexed binary decision tree and its printer
//   - dataset: binary datasets, CSV loading and the gonum matrix bridge
//   - metrics: classification metrics (accuracy, AUC, log loss)
//   - pkg/errors: typed errors with stack traces
//   - pkg/log: structured logging facade
//   - core/model: estimator base types
//   - core/parallel: parallel processing utilities
//
// # Command Line
//
// The goid3 command runs the full experiment from CSV files:
//
//	goid3 run -l 20 -k 5 \
//	    --training training_set.csv \
//	    --validation validation_set.csv \
//	    --test test_set.csv \
//	    --print-tree
//
// It reports test-set accuracy per heuristic before and after pruning.
//
// # License
//
// goid3 is released under the MIT License.
package goid3
