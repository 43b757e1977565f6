// Package log defines standard attribute keys for decision-tree training
// operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging in goid3. Using these standard keys enables log analysis and
// filtering over the whole train -> evaluate -> prune workflow.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Tree Structure
//   - Pruning Search
//   - Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples", "prune.trial") to enable structured log analysis.

package log

// Model and Operation Context
// These attributes identify the model, the split criterion, and the operation
// being performed.
const (
	// ModelNameKey identifies the type of model emitting the log entry.
	// Examples: "ID3Classifier"
	ModelNameKey = "model.name"

	// CriterionKey names the impurity criterion driving the split selection.
	// Standard values: "entropy", "variance"
	CriterionKey = "model.criterion"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "evaluate", "prune"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the
	// operation. Examples: "id3.classifier", "id3.pruner", "dataset"
	ComponentKey = "ml.component"

	// PhaseKey indicates which dataset role the operation runs against.
	// Examples: "training", "validation", "testing"
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
// These attributes describe the tabular dataset being processed.
const (
	// SamplesKey indicates the number of rows in the dataset.
	SamplesKey = "data.samples"

	// AttributesKey indicates the number of binary attribute columns.
	AttributesKey = "data.attributes"

	// TargetKey names the target/class column of the dataset.
	TargetKey = "data.target"

	// PositivesKey and NegativesKey carry the class counts of the slice of
	// data currently being split.
	PositivesKey = "data.positives"
	NegativesKey = "data.negatives"
)

// Tree Structure
// These attributes describe the decision tree produced by training.
const (
	// TreeNodesKey records the total number of nodes in a tree.
	TreeNodesKey = "tree.nodes"

	// TreeNonLeavesKey records the number of internal (prunable) nodes.
	TreeNonLeavesKey = "tree.non_leaves"

	// NodeIndexKey identifies a single node by its creation index.
	NodeIndexKey = "tree.node_index"
)

// Pruning Search
// These attributes trace the randomized post-pruning search.
const (
	// PruneTrialsKey records the total number of restarts (the L parameter).
	PruneTrialsKey = "prune.trials"

	// PruneTrialKey identifies the current trial within the search.
	PruneTrialKey = "prune.trial"

	// PruneStepsKey records how many collapse operations a trial applied.
	PruneStepsKey = "prune.steps"

	// PruneMaxStepsKey records the per-trial step bound (the K parameter).
	PruneMaxStepsKey = "prune.max_steps"

	// RandomSeedKey records the seed of the pruning random source, when one
	// was supplied. Essential for reproducing a search.
	RandomSeedKey = "config.random_seed"
)

// Performance Metrics
// These attributes capture timing and accuracy information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy as a percentage in [0,100].
	AccuracyKey = "metrics.accuracy"

	// GainKey records the impurity gain of a chosen split.
	GainKey = "metrics.gain"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "EMPTY_TREE", "MISSING_BRANCH", "NOT_FITTED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "InvalidStateError", "MissingBranchError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Call Fit() before Predict()", "Check the target column name"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationScore    = "score"
	OperationEvaluate = "evaluate"
	OperationPrune    = "prune"

	// Standard dataset roles
	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseTesting    = "testing"

	// Standard error codes
	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorInvalidState      = "INVALID_STATE"
	ErrorEmptyTree         = "EMPTY_TREE"
	ErrorMissingBranch     = "MISSING_BRANCH"
	ErrorInvalidLeaf       = "INVALID_LEAF"
)
