package id3

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// Criterion scores the impurity of a binary class distribution. The two
// implementations, Entropy and Variance, are interchangeable: the builder
// asks the active criterion for the impurity of each candidate split and
// keeps the attribute with the highest gain.
type Criterion interface {
	// Name identifies the criterion ("entropy" or "variance").
	Name() string
	// Impurity returns the impurity of a node holding ones positive and
	// zeroes negative examples. Degenerate distributions (either count
	// zero, or no examples at all) score 0.
	Impurity(ones, zeroes int) float64
}

// Entropy is the information-theoretic impurity, maximal (1.0) at a
// perfect 50/50 split.
type Entropy struct{}

// Name returns "entropy".
func (Entropy) Name() string { return "entropy" }

// Impurity returns -p·log2(p) - q·log2(q) over the class proportions.
func (Entropy) Impurity(ones, zeroes int) float64 {
	total := ones + zeroes
	if total == 0 || ones == 0 || zeroes == 0 {
		return 0
	}
	p := float64(ones) / float64(total)
	q := float64(zeroes) / float64(total)
	return -p*math.Log2(p) - q*math.Log2(q)
}

// Variance is the variance impurity p·q, cheaper than entropy with a
// similar shape, maximal (0.25) at a 50/50 split.
type Variance struct{}

// Name returns "variance".
func (Variance) Name() string { return "variance" }

// Impurity returns p·q over the class proportions.
func (Variance) Impurity(ones, zeroes int) float64 {
	total := ones + zeroes
	if total == 0 || ones == 0 || zeroes == 0 {
		return 0
	}
	p := float64(ones) / float64(total)
	q := float64(zeroes) / float64(total)
	return p * q
}

// CriterionByName resolves "entropy" or "variance" to its Criterion.
// Unknown names are a ValueError.
func CriterionByName(name string) (Criterion, error) {
	switch name {
	case "entropy":
		return Entropy{}, nil
	case "variance":
		return Variance{}, nil
	default:
		return nil, errors.NewValueError("CriterionByName", fmt.Sprintf("unknown criterion %q (want \"entropy\" or \"variance\")", name))
	}
}

// BestAttribute returns the candidate attribute with the maximal gain
// under c, where gain is total minus the size-weighted impurity of the
// two value partitions. Ties keep the first candidate in list order, so
// the candidate ordering is the deterministic tie-break key.
func BestAttribute(c Criterion, total float64, ds *dataset.Dataset, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", errors.NewValueError("BestAttribute", "no candidate attributes")
	}
	if ds.Len() == 0 {
		return "", errors.Wrap(errors.ErrEmptyData, "goid3: BestAttribute")
	}
	best := candidates[0]
	bestGain := math.Inf(-1)
	for _, attr := range candidates {
		subtotal := 0.0
		for value := 0; value <= 1; value++ {
			subset := ds.Subset(attr, value)
			ones, zeroes := subset.CountTarget()
			weight := float64(ones+zeroes) / float64(ds.Len())
			subtotal += weight * c.Impurity(ones, zeroes)
		}
		gain := total - subtotal
		if gain > bestGain {
			bestGain = gain
			best = attr
		}
	}
	return best, nil
}
