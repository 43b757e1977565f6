package id3

import (
	"github.com/YuminosukeSato/goid3/pkg/log"
)

// Option is a function that configures a Classifier.
type Option func(*Classifier)

// WithCriterion selects the split criterion by name ("entropy" or
// "variance"). The name is resolved when Fit is called, so an unknown
// name surfaces as a Fit error.
func WithCriterion(name string) Option {
	return func(c *Classifier) {
		c.criterionName = name
		c.criterion = nil
	}
}

// WithCriterionStrategy sets the split criterion directly.
func WithCriterionStrategy(criterion Criterion) Option {
	return func(c *Classifier) {
		if criterion != nil {
			c.criterion = criterion
			c.criterionName = ""
		}
	}
}

// WithLogger sets the logger used by the classifier.
func WithLogger(logger log.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}
