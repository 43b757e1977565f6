package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/id3"
	"github.com/YuminosukeSato/goid3/pkg/log"
)

type runCmdConfig struct {
	*rootCmdConfig
	experimentConfig
	configFile string
}

func runCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &runCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Grow, prune and evaluate ID3 trees over a dataset split",
		Long: `Grow one decision tree per heuristic from the training CSV, prune it with L
randomized trials of up to K collapses against the validation CSV, and report
test-set accuracy before and after pruning`,
		Run: func(cmd *cobra.Command, args []string) {
			logger := log.GetLoggerWithName("goid3.cli")
			if config.configFile != "" {
				fileConfig, err := loadExperimentConfig(config.configFile)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				config.experimentConfig = *fileConfig
			} else if err := config.normalize(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := config.validate(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			training, err := dataset.FromCSVFile(config.Training, config.Target)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			logger.Debug("training data loaded",
				log.PhaseKey, log.PhaseTraining,
				log.SamplesKey, training.Len(),
				log.AttributesKey, len(training.Attributes()),
			)
			validation, err := dataset.FromCSVFile(config.Validation, config.Target)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			logger.Debug("validation data loaded",
				log.PhaseKey, log.PhaseValidation,
				log.SamplesKey, validation.Len(),
			)
			test, err := dataset.FromCSVFile(config.Test, config.Target)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			logger.Debug("test data loaded",
				log.PhaseKey, log.PhaseTesting,
				log.SamplesKey, test.Len(),
			)

			exp := id3.Experiment{L: config.L, K: config.K, Criteria: config.criteria()}
			if config.Seed != 0 {
				exp.Rand = rand.New(rand.NewSource(config.Seed))
				logger.Debug("pruning seeded", log.RandomSeedKey, config.Seed)
			}
			results, err := exp.Run(training, validation, test)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}

			for _, result := range results {
				writeReport(os.Stdout, result, config.PrintTree)
				if config.TracePlot == "" {
					continue
				}
				path := tracePathFor(config.TracePlot, result.Criterion)
				if err := id3.SaveTracePlot(result.Trace, heuristicTitle(result.Criterion), path); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				logger.Info("trace plot written", "path", path, log.CriterionKey, result.Criterion)
			}
		},
	}
	cmd.Flags().IntVarP(&(config.L), "trials", "l", defaultTrials, "number of randomized pruning trials (L)")
	cmd.Flags().IntVarP(&(config.K), "prunes", "k", defaultMaxPrunes, "maximum prunes per trial (K)")
	cmd.Flags().StringVar(&(config.Training), "training", "", "path to the training CSV file (required)")
	cmd.Flags().StringVar(&(config.Validation), "validation", "", "path to the validation CSV file (required)")
	cmd.Flags().StringVar(&(config.Test), "test", "", "path to the test CSV file (required)")
	cmd.Flags().StringVar(&(config.Metric), "metric", metricBoth, "heuristic(s) to run: entropy, variance or both")
	cmd.Flags().StringVar(&(config.Target), "target", dataset.DefaultTarget, "name of the class column in the CSV files")
	cmd.Flags().BoolVar(&(config.PrintTree), "print-tree", false, "print the trees before and after pruning")
	cmd.Flags().StringVar(&(config.TracePlot), "trace-plot", "", "base path for per-heuristic pruning trace plots; the heuristic name is inserted before the extension")
	cmd.Flags().Int64Var(&(config.Seed), "seed", 0, "random seed for the pruning search (0 seeds from the clock)")
	cmd.Flags().StringVarP(&(config.configFile), "config", "c", "", "path to a YAML experiment config; replaces the other experiment flags")
	return cmd
}

// writeReport prints one heuristic's outcome: optional tree dumps
// followed by the accuracy block.
func writeReport(w io.Writer, result id3.RunResult, printTree bool) {
	if printTree {
		fmt.Fprintf(w, "%s tree before pruning:\n", capitalize(result.Criterion))
		fmt.Fprint(w, result.Tree)
		fmt.Fprintf(w, "Pruned %s tree:\n", result.Criterion)
		fmt.Fprint(w, result.PrunedTree)
	}
	fmt.Fprintln(w, heuristicTitle(result.Criterion))
	fmt.Fprintf(w, "Accuracy before pruning : %.2f%%\n", result.AccuracyBeforePruning)
	fmt.Fprintf(w, "Accuracy after pruning  : %.2f%%\n", result.AccuracyAfterPruning)
}

// heuristicTitle names a criterion's report section, e.g. "Entropy
// heuristic".
func heuristicTitle(criterion string) string {
	return capitalize(criterion) + " heuristic"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// tracePathFor derives a per-heuristic plot path by inserting the
// criterion name before the extension: trace.png -> trace-entropy.png.
func tracePathFor(base, criterion string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + criterion + ext
}
