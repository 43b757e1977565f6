package dataset

import (
	"testing"
)

// orRows returns four rows over A and B whose class is A OR B.
func orRows() []Row {
	return []Row{
		{"A": 0, "B": 0, "Class": 0},
		{"A": 0, "B": 1, "Class": 1},
		{"A": 1, "B": 0, "Class": 1},
		{"A": 1, "B": 1, "Class": 1},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rows       []Row
		attributes []string
		target     string
		wantErr    bool
	}{
		{
			name:       "valid dataset",
			rows:       orRows(),
			attributes: []string{"A", "B"},
			target:     "Class",
			wantErr:    false,
		},
		{
			name:       "empty rows are allowed",
			rows:       nil,
			attributes: []string{"A", "B"},
			target:     "Class",
			wantErr:    false,
		},
		{
			name:       "empty target name",
			rows:       orRows(),
			attributes: []string{"A", "B"},
			target:     "",
			wantErr:    true,
		},
		{
			name:       "row missing target",
			rows:       []Row{{"A": 0, "B": 0}},
			attributes: []string{"A", "B"},
			target:     "Class",
			wantErr:    true,
		},
		{
			name:       "non-binary target value",
			rows:       []Row{{"A": 0, "B": 0, "Class": 2}},
			attributes: []string{"A", "B"},
			target:     "Class",
			wantErr:    true,
		},
		{
			name:       "row missing attribute",
			rows:       []Row{{"A": 0, "Class": 1}},
			attributes: []string{"A", "B"},
			target:     "Class",
			wantErr:    true,
		},
		{
			name:       "non-binary attribute value",
			rows:       []Row{{"A": -1, "B": 0, "Class": 1}},
			attributes: []string{"A", "B"},
			target:     "Class",
			wantErr:    true,
		},
		{
			name:       "duplicate attribute",
			rows:       orRows(),
			attributes: []string{"A", "A"},
			target:     "Class",
			wantErr:    true,
		},
		{
			name:       "attribute duplicating target",
			rows:       orRows(),
			attributes: []string{"A", "Class"},
			target:     "Class",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(tt.rows, tt.attributes, tt.target)

			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if ds.Len() != len(tt.rows) {
					t.Errorf("Len() = %v, want %v", ds.Len(), len(tt.rows))
				}
				if ds.Target() != tt.target {
					t.Errorf("Target() = %v, want %v", ds.Target(), tt.target)
				}
			}
		})
	}
}

func TestCountTarget(t *testing.T) {
	ds, err := New(orRows(), []string{"A", "B"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ones, zeroes := ds.CountTarget()
	if ones != 3 {
		t.Errorf("ones = %v, want 3", ones)
	}
	if zeroes != 1 {
		t.Errorf("zeroes = %v, want 1", zeroes)
	}
}

func TestSubset(t *testing.T) {
	ds, err := New(orRows(), []string{"A", "B"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name      string
		attribute string
		value     int
		wantLen   int
		wantOnes  int
	}{
		{name: "A equals 0", attribute: "A", value: 0, wantLen: 2, wantOnes: 1},
		{name: "A equals 1", attribute: "A", value: 1, wantLen: 2, wantOnes: 2},
		{name: "B equals 1", attribute: "B", value: 1, wantLen: 2, wantOnes: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := ds.Subset(tt.attribute, tt.value)
			if sub.Len() != tt.wantLen {
				t.Errorf("Len() = %v, want %v", sub.Len(), tt.wantLen)
			}
			ones, _ := sub.CountTarget()
			if ones != tt.wantOnes {
				t.Errorf("ones = %v, want %v", ones, tt.wantOnes)
			}
			if sub.Target() != ds.Target() {
				t.Errorf("Target() = %v, want %v", sub.Target(), ds.Target())
			}
		})
	}

	// A subset can be empty without being an error.
	pure, err := New([]Row{{"A": 1, "Class": 1}}, []string{"A"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := pure.Subset("A", 0).Len(); got != 0 {
		t.Errorf("empty subset Len() = %v, want 0", got)
	}
}

// TestAttributesCopy verifies mutating the returned attribute slice does
// not corrupt the dataset's ordering.
func TestAttributesCopy(t *testing.T) {
	ds, err := New(orRows(), []string{"A", "B"}, "Class")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	attrs := ds.Attributes()
	attrs[0] = "corrupted"

	fresh := ds.Attributes()
	if fresh[0] != "A" || fresh[1] != "B" {
		t.Errorf("Attributes() = %v, want [A B]", fresh)
	}
}

func BenchmarkSubset(b *testing.B) {
	rows := make([]Row, 0, 1024)
	for i := 0; i < 1024; i++ {
		rows = append(rows, Row{"A": i % 2, "B": (i / 2) % 2, "Class": (i / 4) % 2})
	}
	ds, err := New(rows, []string{"A", "B"}, "Class")
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ds.Subset("A", i%2)
	}
}
