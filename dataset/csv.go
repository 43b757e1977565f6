package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// FromCSV parses a CSV stream into a Dataset. The first row is the header
// and names every column; target selects the class column (DefaultTarget
// when empty) and must appear in the header. All remaining columns become
// attributes in header order. Every cell must parse as 0 or 1.
func FromCSV(r io.Reader, target string) (*Dataset, error) {
	if target == "" {
		target = DefaultTarget
	}
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "goid3: FromCSV: reading header")
	}
	targetFound := false
	attributes := make([]string, 0, len(header))
	for _, column := range header {
		if column == target {
			targetFound = true
			continue
		}
		attributes = append(attributes, column)
	}
	if !targetFound {
		return nil, errors.NewValueError("FromCSV", fmt.Sprintf("header has no target column %q", target))
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "goid3: FromCSV: reading line %d", line)
		}
		row := make(Row, len(header))
		for i, cell := range record {
			value, err := strconv.Atoi(cell)
			if err != nil {
				return nil, errors.NewValueError("FromCSV", fmt.Sprintf("line %d: column %q: %q is not an integer", line, header[i], cell))
			}
			row[header[i]] = value
		}
		rows = append(rows, row)
	}
	return New(rows, attributes, target)
}

// FromCSVFile opens path and parses it with FromCSV.
func FromCSVFile(path, target string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "goid3: FromCSVFile: opening %s", path)
	}
	defer f.Close()
	ds, err := FromCSV(f, target)
	if err != nil {
		return nil, errors.Wrapf(err, "goid3: FromCSVFile: parsing %s", path)
	}
	return ds, nil
}
