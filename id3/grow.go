package id3

import (
	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
	"github.com/YuminosukeSato/goid3/tree"
)

// Construct trains a decision tree on ds with the given split criterion
// using the ID3 algorithm: recursively pick the attribute with the best
// gain, partition the rows by its value, and grow one subtree per branch
// until every path ends in a leaf.
func Construct(ds *dataset.Dataset, c Criterion) (*tree.Tree, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "goid3: Construct: training set")
	}
	t := tree.New()
	if err := grow(ds, ds.Attributes(), c, t, -1, -1); err != nil {
		return nil, err
	}
	return t, nil
}

// grow builds the subtree for ds under parentIdx on the given branch;
// parentIdx < 0 attaches the root. Recursion depth is bounded by the
// number of remaining attributes, each level consuming one.
func grow(ds *dataset.Dataset, remaining []string, c Criterion, t *tree.Tree, parentIdx, branch int) error {
	ones, zeroes := ds.CountTarget()

	switch {
	case ones == 0:
		_, err := createNode(t, parentIdx, branch, "0", zeroes, ones)
		return err
	case zeroes == 0:
		_, err := createNode(t, parentIdx, branch, "1", zeroes, ones)
		return err
	case len(remaining) == 0:
		_, err := createNode(t, parentIdx, branch, majorityLabel(ones, zeroes), zeroes, ones)
		return err
	}

	total := c.Impurity(ones, zeroes)
	best, err := BestAttribute(c, total, ds, remaining)
	if err != nil {
		return err
	}
	idx, err := createNode(t, parentIdx, branch, best, zeroes, ones)
	if err != nil {
		return err
	}

	rest := make([]string, 0, len(remaining)-1)
	for _, attr := range remaining {
		if attr != best {
			rest = append(rest, attr)
		}
	}
	for value := 0; value <= 1; value++ {
		subset := ds.Subset(best, value)
		if subset.Len() == 0 {
			// No examples on this branch: attach a majority leaf reusing
			// the parent split's counts.
			if _, err := createNode(t, idx, value, majorityLabel(ones, zeroes), zeroes, ones); err != nil {
				return err
			}
			continue
		}
		if err := grow(subset, rest, c, t, idx, value); err != nil {
			return err
		}
	}
	return nil
}

// createNode attaches a node as the root (parentIdx < 0) or as the child
// on the given branch, returning the new node's index.
func createNode(t *tree.Tree, parentIdx, branch int, label string, zeroes, ones int) (int, error) {
	if parentIdx < 0 {
		return t.AddRoot(label, zeroes, ones)
	}
	return t.AddChild(parentIdx, branch, label, zeroes, ones)
}

// majorityLabel returns the majority class label, breaking ties toward
// "1".
func majorityLabel(ones, zeroes int) string {
	if ones >= zeroes {
		return "1"
	}
	return "0"
}
