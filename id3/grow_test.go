package id3

import (
	"testing"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// trainingSet returns four rows over attributes A and B where the class
// is A OR B. Both attributes tie on gain, so induction splits on A
// first.
func trainingSet(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Row{
		{"A": 0, "B": 0, "Class": 0},
		{"A": 0, "B": 1, "Class": 1},
		{"A": 1, "B": 0, "Class": 1},
		{"A": 1, "B": 1, "Class": 1},
	}, []string{"A", "B"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return ds
}

// contradictingValidation returns rows the grown tree misclassifies
// completely, so that any pruning collapse improves validation accuracy.
func contradictingValidation(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Row{
		{"A": 0, "B": 0, "Class": 1},
		{"A": 0, "B": 0, "Class": 1},
		{"A": 0, "B": 0, "Class": 1},
	}, []string{"A", "B"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return ds
}

func TestConstruct(t *testing.T) {
	tr, err := Construct(trainingSet(t), Entropy{})
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}

	root := tr.Root()
	if root == nil {
		t.Fatal("Construct() built a tree without a root")
	}
	if root.Label != "A" {
		t.Errorf("root label = %q, want %q", root.Label, "A")
	}
	if root.Index != 0 {
		t.Errorf("root index = %d, want 0", root.Index)
	}
	if root.Ones != 3 || root.Zeroes != 1 {
		t.Errorf("root counts = (%d ones, %d zeroes), want (3, 1)", root.Ones, root.Zeroes)
	}

	// A=0 leads to the secondary split on B, A=1 is a pure leaf.
	left := root.Left
	if left == nil || left.Label != "B" {
		t.Fatalf("left child = %+v, want split on B", left)
	}
	if left.Index != 1 {
		t.Errorf("left child index = %d, want 1", left.Index)
	}
	if left.Left == nil || left.Left.Label != "0" || left.Left.Index != 2 {
		t.Errorf("B=0 leaf = %+v, want label 0 at index 2", left.Left)
	}
	if left.Right == nil || left.Right.Label != "1" || left.Right.Index != 3 {
		t.Errorf("B=1 leaf = %+v, want label 1 at index 3", left.Right)
	}

	right := root.Right
	if right == nil || !right.IsLeaf() || right.Label != "1" {
		t.Fatalf("right child = %+v, want leaf 1", right)
	}
	if right.Index != 4 {
		t.Errorf("right child index = %d, want 4", right.Index)
	}
}

func TestConstructReachesFullTrainingAccuracy(t *testing.T) {
	// Consistent data without conflicting rows is always fit exactly.
	ds := trainingSet(t)
	for _, criterion := range []Criterion{Entropy{}, Variance{}} {
		tr, err := Construct(ds, criterion)
		if err != nil {
			t.Fatalf("Construct(%s) error = %v", criterion.Name(), err)
		}
		acc, err := Accuracy(ds, tr)
		if err != nil {
			t.Fatalf("Accuracy(%s) error = %v", criterion.Name(), err)
		}
		if acc != 100 {
			t.Errorf("training accuracy with %s = %v, want 100", criterion.Name(), acc)
		}
	}
}

func TestConstructPrintsExpectedTree(t *testing.T) {
	tr, err := Construct(trainingSet(t), Entropy{})
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}

	want := "A = 0 :\n" +
		"| B = 0 : 0\n" +
		"| B = 1 : 1\n" +
		"A = 1 : 1\n"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestConstructEmptyData(t *testing.T) {
	if _, err := Construct(nil, Entropy{}); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("Construct(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestConstructConflictingRows(t *testing.T) {
	// Identical attribute values with opposing labels exhaust the
	// attribute list; the majority label (ties toward 1) decides.
	ds, err := dataset.New([]dataset.Row{
		{"A": 0, "Class": 0},
		{"A": 0, "Class": 1},
	}, []string{"A"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tr, err := Construct(ds, Entropy{})
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}

	root := tr.Root()
	if root == nil || root.Label != "A" {
		t.Fatalf("root = %+v, want split on A", root)
	}
	if root.Left == nil || root.Left.Label != "1" {
		t.Errorf("A=0 leaf = %+v, want majority label 1", root.Left)
	}
	// A=1 has no examples, so the parent's majority fills the branch.
	if root.Right == nil || root.Right.Label != "1" {
		t.Errorf("A=1 leaf = %+v, want majority label 1", root.Right)
	}
	if root.Right != nil && (root.Right.Ones != 1 || root.Right.Zeroes != 1) {
		t.Errorf("A=1 leaf counts = (%d ones, %d zeroes), want parent counts (1, 1)", root.Right.Ones, root.Right.Zeroes)
	}
}

func TestConstructDepthBoundedByAttributes(t *testing.T) {
	// Each level consumes an attribute, so a two-attribute dataset can
	// never grow more than two splits along any path.
	tr, err := Construct(trainingSet(t), Variance{})
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}
	if n := tr.NumNonLeaves(); n > 3 {
		t.Errorf("NumNonLeaves() = %d, want at most 3 with two attributes", n)
	}
	if tr.Size() > 7 {
		t.Errorf("Size() = %d, want at most 7 with two binary attributes", tr.Size())
	}
}
