package id3

import (
	"math/rand"
	"time"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
	"github.com/YuminosukeSato/goid3/pkg/log"
	"github.com/YuminosukeSato/goid3/tree"
)

// TrialScore records the outcome of one pruning trial: which trial it
// was, how many collapses were applied, the candidate's validation
// accuracy, and whether it replaced the best tree so far.
type TrialScore struct {
	Trial    int
	Prunes   int
	Accuracy float64
	Improved bool
}

// Pruner runs the randomized post-pruning search: L independent trials,
// each cloning the base tree and collapsing a random number (uniform in
// [1, K]) of internal nodes into majority leaves, keeping the candidate
// with the best validation accuracy. The search is a stochastic
// hill-climb, not an optimal pruning; reproducibility comes from seeding
// the random source.
type Pruner struct {
	trials   int
	maxSteps int
	rng      *rand.Rand
	logger   log.Logger
	trace    []TrialScore
}

// PrunerOption configures a Pruner.
type PrunerOption func(*Pruner)

// WithSeed seeds the pruner's random source for reproducible searches.
func WithSeed(seed int64) PrunerOption {
	return func(p *Pruner) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the pruner's random source directly.
func WithRand(rng *rand.Rand) PrunerOption {
	return func(p *Pruner) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// WithPrunerLogger sets the logger used during the search.
func WithPrunerLogger(logger log.Logger) PrunerOption {
	return func(p *Pruner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPruner creates a pruner running trials restarts with at most
// maxSteps collapses per trial. Both parameters are clamped to at least 1
// when the search runs.
func NewPruner(trials, maxSteps int, opts ...PrunerOption) *Pruner {
	p := &Pruner{trials: trials, maxSteps: maxSteps}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.logger == nil {
		p.logger = log.GetLoggerWithName("id3.pruner")
	}
	return p
}

// Prune searches for a pruned variant of base scoring strictly better on
// the validation set and returns the best tree found, which is a clone of
// base when no trial improved on it. base itself is never mutated; every
// candidate works on its own deep copy.
func (p *Pruner) Prune(validation *dataset.Dataset, base *tree.Tree) (*tree.Tree, error) {
	if base == nil || base.Root() == nil {
		return nil, errors.NewEmptyTreeError("Prune")
	}

	best := base.Clone()
	bestScore, err := Accuracy(validation, best)
	if err != nil {
		return nil, err
	}

	trials := p.trials
	if trials < 1 {
		trials = 1
	}
	maxSteps := p.maxSteps
	if maxSteps < 1 {
		maxSteps = 1
	}
	p.trace = make([]TrialScore, 0, trials)
	p.logger.Debug("pruning search starting",
		log.OperationKey, log.OperationPrune,
		log.PruneTrialsKey, trials,
		log.PruneMaxStepsKey, maxSteps,
		log.AccuracyKey, bestScore,
	)

	for trial := 0; trial < trials; trial++ {
		candidate := base.Clone()
		steps := p.rng.Intn(maxSteps) + 1
		applied := 0
		for step := 0; step < steps; step++ {
			nonLeaves := candidate.NonLeaves()
			if len(nonLeaves) == 0 {
				break
			}
			node := nonLeaves[p.rng.Intn(len(nonLeaves))]
			node.Left = nil
			node.Right = nil
			node.Label = majorityLabel(node.Ones, node.Zeroes)
			applied++
		}

		score, err := Accuracy(validation, candidate)
		if err != nil {
			// The trial's candidate is unusable; skip it without touching
			// the best tree found so far.
			errors.Warn(errors.NewPruneTrialWarning(trial, err))
			continue
		}
		improved := score > bestScore
		if improved {
			best = candidate
			bestScore = score
		}
		p.trace = append(p.trace, TrialScore{Trial: trial, Prunes: applied, Accuracy: score, Improved: improved})
		p.logger.Debug("pruning trial scored",
			log.PruneTrialKey, trial,
			log.PruneStepsKey, applied,
			log.AccuracyKey, score,
			"improved", improved,
		)
	}

	p.logger.Info("pruning search finished",
		log.OperationKey, log.OperationPrune,
		log.PruneTrialsKey, trials,
		log.AccuracyKey, bestScore,
		log.TreeNonLeavesKey, best.NumNonLeaves(),
	)
	return best, nil
}

// Trace returns the per-trial scores of the most recent Prune call.
// Trials aborted by an evaluation failure are absent, so the Trial field
// may skip numbers.
func (p *Pruner) Trace() []TrialScore {
	trace := make([]TrialScore, len(p.trace))
	copy(trace, p.trace)
	return trace
}
