// Package dataset provides the binary tabular data model consumed by the
// ID3 trainer: rows of attribute values in {0, 1} with one designated
// target column, loadable from CSV files or gonum matrices.
package dataset

import (
	"fmt"

	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// DefaultTarget is the target column name assumed when none is given.
const DefaultTarget = "Class"

// Row maps attribute names (including the target column) to 0/1 values.
type Row map[string]int

// Dataset is an immutable collection of validated binary rows.
// Attribute order is preserved from construction; it drives both the
// candidate ordering of the tree builder and the column order of the
// matrix bridge.
type Dataset struct {
	rows       []Row
	attributes []string
	target     string
}

// New validates rows against the attribute list and target column and
// returns a Dataset. Every row must carry a 0/1 value for the target and
// for each attribute; anything else is a ValueError.
func New(rows []Row, attributes []string, target string) (*Dataset, error) {
	if target == "" {
		return nil, errors.NewValueError("NewDataset", "target column name must not be empty")
	}
	seen := make(map[string]struct{}, len(attributes))
	for _, attr := range attributes {
		if attr == target {
			return nil, errors.NewValueError("NewDataset", fmt.Sprintf("attribute %q duplicates the target column", attr))
		}
		if _, dup := seen[attr]; dup {
			return nil, errors.NewValueError("NewDataset", fmt.Sprintf("duplicate attribute %q", attr))
		}
		seen[attr] = struct{}{}
	}
	for i, row := range rows {
		value, ok := row[target]
		if !ok {
			return nil, errors.NewValueError("NewDataset", fmt.Sprintf("row %d has no value for target %q", i, target))
		}
		if value != 0 && value != 1 {
			return nil, errors.NewValueError("NewDataset", fmt.Sprintf("row %d: target %q must be 0 or 1: got %d", i, target, value))
		}
		for _, attr := range attributes {
			value, ok := row[attr]
			if !ok {
				return nil, errors.NewValueError("NewDataset", fmt.Sprintf("row %d has no value for attribute %q", i, attr))
			}
			if value != 0 && value != 1 {
				return nil, errors.NewValueError("NewDataset", fmt.Sprintf("row %d: attribute %q must be 0 or 1: got %d", i, attr, value))
			}
		}
	}
	return &Dataset{rows: rows, attributes: attributes, target: target}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Attributes returns the ordered attribute names, excluding the target.
// The returned slice is a copy and may be modified freely.
func (d *Dataset) Attributes() []string {
	attrs := make([]string, len(d.attributes))
	copy(attrs, d.attributes)
	return attrs
}

// Target returns the name of the target column.
func (d *Dataset) Target() string {
	return d.target
}

// Row returns the i-th row. The map is shared, not copied; callers must
// treat it as read-only.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// CountTarget returns how many rows have target value 1 (ones) and
// target value 0 (zeroes).
func (d *Dataset) CountTarget() (ones, zeroes int) {
	for _, row := range d.rows {
		if row[d.target] == 1 {
			ones++
		} else {
			zeroes++
		}
	}
	return ones, zeroes
}

// Subset returns the rows whose value for attr equals value. Row maps are
// shared with the parent dataset; the result may be empty.
func (d *Dataset) Subset(attr string, value int) *Dataset {
	var rows []Row
	for _, row := range d.rows {
		if row[attr] == value {
			rows = append(rows, row)
		}
	}
	return &Dataset{rows: rows, attributes: d.attributes, target: d.target}
}
