package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports the line at which ARFF parsing failed.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: arff line %d: %s", e.Line, e.Msg)
}

// Unwrap exposes the sentinel (ErrMalformed, ErrMissingValue, ...).
func (e *ParseError) Unwrap() error { return e.Err }

// ReadARFFFile opens path and parses it with ReadARFF.
func ReadARFFFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open arff file '%s': %w", path, err)
	}
	defer f.Close()

	return ReadARFF(f)
}

// ReadARFF parses a dense attribute-relation file:
//
//	% comment
//	@relation name
//	@attribute x numeric
//	@attribute colour {red,green}
//	@attribute seq string
//	@data
//	1.5,red,'abc'
//
// Supported types: numeric, real, integer, string and nominal {..}.
// Sparse rows, dates and missing values ('?') are rejected.
//
// Complexity: O(size of input).
func ReadARFF(r io.Reader) (*Dataset, error) {
	var (
		name   string
		attrs  []Attribute
		rows   []Instance
		inData bool
		lineNo int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if !inData {
			keyword, rest := splitKeyword(line)
			switch keyword {
			case "@relation":
				name = unquote(rest)
			case "@attribute":
				a, err := parseAttribute(rest)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Msg: err.Error(), Err: ErrMalformed}
				}
				attrs = append(attrs, a)
			case "@data":
				inData = true
			default:
				return nil, &ParseError{Line: lineNo, Msg: "unexpected header line " + strconv.Quote(line), Err: ErrMalformed}
			}
			continue
		}

		if strings.HasPrefix(line, "{") {
			return nil, &ParseError{Line: lineNo, Msg: "sparse rows are not supported", Err: ErrMalformed}
		}
		fields, err := splitRow(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error(), Err: ErrMalformed}
		}
		if len(fields) != len(attrs) {
			return nil, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("expected %d values, got %d", len(attrs), len(fields)),
				Err:  ErrArity,
			}
		}
		vals := make([]Value, len(fields))
		for j, f := range fields {
			v, perr := parseValue(attrs[j], f)
			if perr != nil {
				return nil, &ParseError{Line: lineNo, Msg: perr.Error(), Err: perr}
			}
			vals[j] = v
		}
		rows = append(rows, Instance{values: vals})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read arff input: %w", err)
	}
	if !inData {
		return nil, &ParseError{Line: lineNo, Msg: "missing @data section", Err: ErrMalformed}
	}

	return New(name, attrs, rows)
}

// splitKeyword lower-cases the leading @keyword and returns the remainder.
func splitKeyword(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return strings.ToLower(line), ""
	}

	return strings.ToLower(line[:i]), strings.TrimSpace(line[i+1:])
}

// parseAttribute parses "<name> <type>" where name may be quoted.
func parseAttribute(rest string) (Attribute, error) {
	var nm, typ string
	if rest != "" && (rest[0] == '\'' || rest[0] == '"') {
		end := strings.IndexByte(rest[1:], rest[0])
		if end < 0 {
			return Attribute{}, fmt.Errorf("unterminated attribute name")
		}
		nm = rest[1 : end+1]
		typ = strings.TrimSpace(rest[end+2:])
	} else {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			return Attribute{}, fmt.Errorf("attribute %q has no type", rest)
		}
		nm, typ = rest[:i], strings.TrimSpace(rest[i+1:])
	}

	if strings.HasPrefix(typ, "{") {
		if !strings.HasSuffix(typ, "}") {
			return Attribute{}, fmt.Errorf("unterminated nominal domain for %q", nm)
		}
		labels, err := splitRow(typ[1 : len(typ)-1])
		if err != nil {
			return Attribute{}, err
		}

		return Attribute{Name: nm, Kind: Nominal, Values: labels}, nil
	}

	switch strings.ToLower(typ) {
	case "numeric", "real", "integer":
		return Attribute{Name: nm, Kind: Numeric}, nil
	case "string":
		return Attribute{Name: nm, Kind: String}, nil
	default:
		return Attribute{}, fmt.Errorf("unsupported attribute type %q", typ)
	}
}

// parseValue converts a raw field into a Value of attribute a's kind.
func parseValue(a Attribute, raw string) (Value, error) {
	if raw == "?" {
		return Value{}, ErrMissingValue
	}
	switch a.Kind {
	case Numeric:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not numeric", ErrKindMismatch, raw)
		}

		return Num(f), nil
	case Nominal:
		for i, l := range a.Values {
			if l == raw {
				return Sym(raw, i), nil
			}
		}

		return Value{}, fmt.Errorf("%w: %q not in domain of %q", ErrKindMismatch, raw, a.Name)
	default:
		return Text(raw), nil
	}
}

// splitRow splits a comma separated row honouring single/double quotes and
// backslash escapes inside quotes. Fields are trimmed and unquoted.
func splitRow(line string) ([]string, error) {
	var (
		fields []string
		cur    strings.Builder
		quote  byte
		quoted bool
	)
	flush := func() {
		f := cur.String()
		if !quoted {
			f = strings.TrimSpace(f)
		}
		fields = append(fields, f)
		cur.Reset()
		quoted = false
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0 && c == '\\' && i+1 < len(line):
			i++
			cur.WriteByte(line[i])
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			quoted = true
			cur.Reset()
		case c == ',':
			flush()
		case quoted && (c == ' ' || c == '\t'):
			// whitespace between a closing quote and the separator
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush()

	return fields, nil
}

// unquote strips one level of matching quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}

	return s
}
