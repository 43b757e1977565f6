// Package id3 implements ID3 decision-tree induction for binary
// classification, with entropy and variance split criteria and a
// randomized post-pruning search driven by a validation set.
//
// The package works on datasets whose attribute values and target labels
// are all 0 or 1. Induction picks, at every node, the attribute with the
// highest impurity gain, recursing on the value-0 subset before the
// value-1 subset; ties keep the earliest remaining attribute so that
// runs are reproducible.
//
// # Growing and Evaluating a Tree
//
// Construct grows a tree directly from a dataset:
//
//	t, err := id3.Construct(training, id3.Entropy{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	accuracy, _ := id3.Accuracy(test, t) // percentage in [0, 100]
//	fmt.Print(t)
//
// # Post-Pruning
//
// The pruner clones the tree, collapses random internal nodes into
// majority leaves, and keeps the candidate with the best validation
// accuracy over L trials:
//
//	pruner := id3.NewPruner(20, 5, id3.WithSeed(42))
//	pruned, err := pruner.Prune(validation, t)
//
// # scikit-learn Compatible API
//
// Classifier wraps the same machinery behind an estimator interface
// taking gonum matrices:
//
//	clf := id3.NewClassifier(id3.WithCriterion("variance"))
//	if err := clf.Fit(training); err != nil {
//	    log.Fatal(err)
//	}
//	predictions, _ := clf.Predict(X)
//	score, _ := clf.Score(X, y) // fraction in [0, 1]
//
// # Experiments
//
// Experiment compares criteria over a training/validation/test split and
// reports accuracies before and after pruning:
//
//	exp := id3.Experiment{L: 20, K: 5}
//	results, err := exp.Run(training, validation, test)
package id3
