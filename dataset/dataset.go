package dataset

import "fmt"

// Dataset is an ordered, immutable sequence of instances sharing a schema.
// Index i (0..n-1) is the canonical identity of instance i.
type Dataset struct {
	name  string
	attrs []Attribute
	rows  []Instance
}

// New validates rows against attrs and returns a Dataset.
//
// Stage 1 (Validate): schema must have >=1 attribute; every row must match
// the schema arity and each value its attribute kind.
// Stage 2 (Finalize): copy the schema and rows.
//
// Errors: ErrNoAttributes, ErrArity, ErrKindMismatch (wrapped with the row index).
// Complexity: O(n·d).
func New(name string, attrs []Attribute, rows []Instance) (*Dataset, error) {
	if len(attrs) == 0 {
		return nil, ErrNoAttributes
	}
	for i, r := range rows {
		if r.Len() != len(attrs) {
			return nil, fmt.Errorf("dataset.New(row %d): %w", i, ErrArity)
		}
		for j, a := range attrs {
			if r.Value(j).Kind != a.Kind {
				return nil, fmt.Errorf("dataset.New(row %d, attr %q): %w", i, a.Name, ErrKindMismatch)
			}
		}
	}

	as := make([]Attribute, len(attrs))
	copy(as, attrs)
	rs := make([]Instance, len(rows))
	copy(rs, rows)

	return &Dataset{name: name, attrs: as, rows: rs}, nil
}

// FromVectors builds an all-numeric dataset with attributes a0..a(d-1).
func FromVectors(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrNoAttributes
	}
	d := len(rows[0])
	attrs := make([]Attribute, d)
	for j := range attrs {
		attrs[j] = Attribute{Name: fmt.Sprintf("a%d", j), Kind: Numeric}
	}
	instances := make([]Instance, len(rows))
	for i, r := range rows {
		vals := make([]Value, len(r))
		for j, f := range r {
			vals[j] = Num(f)
		}
		instances[i] = Instance{values: vals}
	}

	return New("vectors", attrs, instances)
}

// FromStrings builds a dataset with a single String attribute, one row per s.
func FromStrings(rows ...string) (*Dataset, error) {
	attrs := []Attribute{{Name: "sequence", Kind: String}}
	instances := make([]Instance, len(rows))
	for i, s := range rows {
		instances[i] = Instance{values: []Value{Text(s)}}
	}

	return New("sequences", attrs, instances)
}

// Name returns the relation name.
func (d *Dataset) Name() string { return d.name }

// Len returns the number of instances.
func (d *Dataset) Len() int { return len(d.rows) }

// At returns instance i. It panics on an out-of-range index like a slice.
func (d *Dataset) At(i int) Instance { return d.rows[i] }

// Instance returns instance i or ErrIndexOutOfRange.
func (d *Dataset) Instance(i int) (Instance, error) {
	if i < 0 || i >= len(d.rows) {
		return Instance{}, fmt.Errorf("dataset.Instance(%d): %w", i, ErrIndexOutOfRange)
	}

	return d.rows[i], nil
}

// Attributes returns a copy of the schema.
func (d *Dataset) Attributes() []Attribute {
	out := make([]Attribute, len(d.attrs))
	copy(out, d.attrs)

	return out
}

// Numeric reports whether every attribute is numeric.
func (d *Dataset) Numeric() bool {
	for _, a := range d.attrs {
		if a.Kind != Numeric {
			return false
		}
	}

	return true
}
