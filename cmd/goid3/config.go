package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/id3"
)

const (
	metricEntropy  = "entropy"
	metricVariance = "variance"
	metricBoth     = "both"
)

const (
	defaultTrials    = 10
	defaultMaxPrunes = 10
)

// experimentConfig describes one experiment run: the pruning parameters,
// the dataset split, and the reporting switches. It is populated either
// from the run command's flags or from a YAML file.
type experimentConfig struct {
	L          int    `yaml:"l"`
	K          int    `yaml:"k"`
	Training   string `yaml:"training"`
	Validation string `yaml:"validation"`
	Test       string `yaml:"test"`
	Metric     string `yaml:"metric,omitempty"`
	Target     string `yaml:"target,omitempty"`
	PrintTree  bool   `yaml:"printTree,omitempty"`
	TracePlot  string `yaml:"tracePlot,omitempty"`
	Seed       int64  `yaml:"seed,omitempty"`
}

// loadExperimentConfig reads a YAML experiment config and fills defaults
// for anything left unset.
func loadExperimentConfig(path string) (*experimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config experimentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if err := config.normalize(); err != nil {
		return nil, err
	}
	return &config, nil
}

// normalize folds the metric to lower case, rejects unknown values, and
// applies defaults for the pruning parameters and the target column.
func (c *experimentConfig) normalize() error {
	switch metric := strings.ToLower(c.Metric); metric {
	case "", "default":
		c.Metric = metricBoth
	case metricEntropy, metricVariance, metricBoth:
		c.Metric = metric
	default:
		return fmt.Errorf(`unknown metric "%s"`, c.Metric)
	}

	if c.L <= 0 {
		c.L = defaultTrials
	}
	if c.K <= 0 {
		c.K = defaultMaxPrunes
	}
	if c.Target == "" {
		c.Target = dataset.DefaultTarget
	}
	return nil
}

func (c *experimentConfig) validate() error {
	if c.Training == "" {
		return fmt.Errorf("required training flag was not set")
	}
	if c.Validation == "" {
		return fmt.Errorf("required validation flag was not set")
	}
	if c.Test == "" {
		return fmt.Errorf("required test flag was not set")
	}
	return nil
}

// criteria resolves the metric selection to the heuristics to run.
func (c *experimentConfig) criteria() []id3.Criterion {
	switch c.Metric {
	case metricEntropy:
		return []id3.Criterion{id3.Entropy{}}
	case metricVariance:
		return []id3.Criterion{id3.Variance{}}
	default:
		return []id3.Criterion{id3.Entropy{}, id3.Variance{}}
	}
}
