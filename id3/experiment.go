package id3

import (
	"math/rand"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/log"
	"github.com/YuminosukeSato/goid3/tree"
)

// Experiment grows, evaluates and prunes one tree per criterion over a
// training/validation/test split. The zero value runs both entropy and
// variance with an unseeded pruner.
type Experiment struct {
	// L is the number of pruning trials per criterion.
	L int
	// K is the maximum number of collapses per trial.
	K int
	// Criteria to compare. Empty means entropy then variance.
	Criteria []Criterion
	// Rand seeds the pruning searches when set; each criterion draws
	// from the same source in sequence.
	Rand *rand.Rand
	// Logger used by the experiment and its pruners when set.
	Logger log.Logger
}

// RunResult holds the outcome for one criterion: test accuracies in
// percent before and after pruning, both trees, and the pruning trace.
type RunResult struct {
	Criterion             string
	AccuracyBeforePruning float64
	AccuracyAfterPruning  float64
	Tree                  *tree.Tree
	PrunedTree            *tree.Tree
	Trace                 []TrialScore
}

// Run executes the experiment and returns one result per criterion, in
// the order the criteria are listed.
func (e *Experiment) Run(training, validation, test *dataset.Dataset) ([]RunResult, error) {
	criteria := e.Criteria
	if len(criteria) == 0 {
		criteria = []Criterion{Entropy{}, Variance{}}
	}
	logger := e.Logger
	if logger == nil {
		logger = log.GetLoggerWithName("id3.experiment")
	}

	results := make([]RunResult, 0, len(criteria))
	for _, criterion := range criteria {
		t, err := Construct(training, criterion)
		if err != nil {
			return nil, err
		}
		before, err := Accuracy(test, t)
		if err != nil {
			return nil, err
		}
		logger.Info("tree grown",
			log.CriterionKey, criterion.Name(),
			log.PhaseKey, log.PhaseTesting,
			log.TreeNodesKey, t.Size(),
			log.AccuracyKey, before,
		)

		opts := []PrunerOption{}
		if e.Rand != nil {
			opts = append(opts, WithRand(e.Rand))
		}
		if e.Logger != nil {
			opts = append(opts, WithPrunerLogger(e.Logger))
		}
		pruner := NewPruner(e.L, e.K, opts...)
		pruned, err := pruner.Prune(validation, t)
		if err != nil {
			return nil, err
		}
		after, err := Accuracy(test, pruned)
		if err != nil {
			return nil, err
		}
		logger.Info("tree pruned",
			log.CriterionKey, criterion.Name(),
			log.PhaseKey, log.PhaseTesting,
			log.TreeNodesKey, pruned.Size(),
			log.AccuracyKey, after,
		)

		results = append(results, RunResult{
			Criterion:             criterion.Name(),
			AccuracyBeforePruning: before,
			AccuracyAfterPruning:  after,
			Tree:                  t,
			PrunedTree:            pruned,
			Trace:                 pruner.Trace(),
		})
	}

	return results, nil
}
