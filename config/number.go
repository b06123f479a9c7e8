package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotANumber indicates a numeric key holding text that is not a number.
var ErrNotANumber = errors.New("config: value is not a number")

// Int is an integer key that also accepts its quoted form ("3").
type Int int

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Int) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrNotANumber)
	}
	if node.Tag == "!!null" {
		return nil
	}

	return n.parse(node.Value)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (n *Int) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case int64:
		*n = Int(x)
		return nil
	case string:
		return n.parse(x)
	default:
		return fmt.Errorf("%v: %w", v, ErrNotANumber)
	}
}

func (n *Int) parse(s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	*n = Int(i)

	return nil
}

// Float is a real-valued key that also accepts its quoted form ("1.0").
type Float float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Float) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrNotANumber)
	}
	if node.Tag == "!!null" {
		return nil
	}

	return f.parse(node.Value)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (f *Float) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case float64:
		*f = Float(x)
		return nil
	case int64:
		*f = Float(x)
		return nil
	case string:
		return f.parse(x)
	default:
		return fmt.Errorf("%v: %w", v, ErrNotANumber)
	}
}

func (f *Float) parse(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	*f = Float(v)

	return nil
}
