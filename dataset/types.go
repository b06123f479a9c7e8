// Package dataset defines attribute kinds, values, instances and sentinel errors.
package dataset

import (
	"errors"
	"strconv"
)

var (
	// ErrArity indicates an instance whose attribute count differs from the schema.
	ErrArity = errors.New("dataset: instance arity does not match schema")

	// ErrKindMismatch indicates a value whose kind differs from its attribute's kind.
	ErrKindMismatch = errors.New("dataset: value kind does not match attribute kind")

	// ErrIndexOutOfRange indicates an instance index outside [0, n).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")

	// ErrNoAttributes indicates a schema with zero attributes.
	ErrNoAttributes = errors.New("dataset: schema has no attributes")

	// ErrMalformed indicates unparsable dataset text (see ParseError for position).
	ErrMalformed = errors.New("dataset: malformed input")

	// ErrMissingValue indicates a '?' value; lvcluster does not impute.
	ErrMissingValue = errors.New("dataset: missing values are not supported")
)

// Kind is the declared kind of an attribute.
type Kind int

const (
	// Numeric attributes carry a float64.
	Numeric Kind = iota

	// Nominal attributes carry one label out of a declared domain. Num holds
	// the label's position in the domain.
	Nominal

	// String attributes carry free text. As a sequence it expands to runes.
	String
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Nominal:
		return "nominal"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Attribute describes one column of the dataset.
type Attribute struct {
	Name string
	Kind Kind

	// Values is the nominal domain in declaration order (Nominal only).
	Values []string
}

// Value is a single attribute value. It is self-describing so that distance
// functions can operate on an Instance without the schema at hand.
type Value struct {
	Kind Kind
	Num  float64 // numeric value, or nominal domain position
	Str  string  // textual form (nominal label, string content, formatted number)
}

// Num builds a numeric value.
func Num(f float64) Value {
	return Value{Kind: Numeric, Num: f, Str: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Sym builds a nominal value with its domain position.
func Sym(label string, pos int) Value {
	return Value{Kind: Nominal, Num: float64(pos), Str: label}
}

// Text builds a string value.
func Text(s string) Value {
	return Value{Kind: String, Str: s}
}

// Instance is an ordered, fixed-length tuple of attribute values.
// Instances are immutable once built: accessors return copies.
type Instance struct {
	values []Value
}

// NewInstance copies values into a new Instance.
func NewInstance(values ...Value) Instance {
	v := make([]Value, len(values))
	copy(v, values)

	return Instance{values: v}
}

// Len returns the number of attributes.
func (in Instance) Len() int { return len(in.values) }

// Value returns attribute i.
func (in Instance) Value(i int) Value { return in.values[i] }

// Numeric reports whether every value is numeric.
func (in Instance) Numeric() bool {
	for _, v := range in.values {
		if v.Kind != Numeric {
			return false
		}
	}

	return true
}

// Vector returns the Num field of every value as a fresh slice.
// Complexity: O(len).
func (in Instance) Vector() []float64 {
	out := make([]float64, len(in.values))
	for i, v := range in.values {
		out[i] = v.Num
	}

	return out
}

// Tokens returns the instance's sequence representation: String values
// expand to one token per rune, every other value contributes one token
// (its textual form). Used by the symbolic distance functions.
func (in Instance) Tokens() []string {
	out := make([]string, 0, len(in.values))
	for _, v := range in.values {
		if v.Kind == String {
			for _, r := range v.Str {
				out = append(out, string(r))
			}
			continue
		}
		out = append(out, v.Str)
	}

	return out
}

// String renders the instance like a data row: comma separated values.
func (in Instance) String() string {
	var b []byte
	for i, v := range in.values {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, v.Str...)
	}

	return string(b)
}
