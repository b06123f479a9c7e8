package dataset_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedARFF = `% three instances, mixed kinds
@RELATION shapes

@ATTRIBUTE x NUMERIC
@attribute 'colour name' {red, green}
@attribute seq string

@DATA
1.5,red,'ab c'
-2,green,"x\"y"
3e1, red ,plain
`

// TestReadARFF_Mixed parses every supported attribute kind.
func TestReadARFF_Mixed(t *testing.T) {
	ds, err := dataset.ReadARFF(strings.NewReader(mixedARFF))
	require.NoError(t, err)

	assert.Equal(t, "shapes", ds.Name())
	assert.Equal(t, 3, ds.Len())
	attrs := ds.Attributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, dataset.Numeric, attrs[0].Kind)
	assert.Equal(t, "colour name", attrs[1].Name)
	assert.Equal(t, []string{"red", "green"}, attrs[1].Values)
	assert.Equal(t, dataset.String, attrs[2].Kind)
	assert.False(t, ds.Numeric())

	first := ds.At(0)
	assert.Equal(t, 1.5, first.Value(0).Num)
	assert.Equal(t, 0.0, first.Value(1).Num)
	assert.Equal(t, "ab c", first.Value(2).Str)

	second := ds.At(1)
	assert.Equal(t, 1.0, second.Value(1).Num, "green is domain position 1")
	assert.Equal(t, `x"y`, second.Value(2).Str)

	third := ds.At(2)
	assert.Equal(t, 30.0, third.Value(0).Num)
	assert.Equal(t, "red", third.Value(1).Str)
}

// TestReadARFF_Errors covers malformed and unsupported inputs.
func TestReadARFF_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"no data", "@relation r\n@attribute a numeric\n", dataset.ErrMalformed},
		{"bad type", "@relation r\n@attribute a date\n@data\n", dataset.ErrMalformed},
		{"arity", "@relation r\n@attribute a numeric\n@data\n1,2\n", dataset.ErrArity},
		{"missing", "@relation r\n@attribute a numeric\n@data\n?\n", dataset.ErrMissingValue},
		{"not numeric", "@relation r\n@attribute a numeric\n@data\nabc\n", dataset.ErrKindMismatch},
		{"not in domain", "@relation r\n@attribute a {x,y}\n@data\nz\n", dataset.ErrKindMismatch},
		{"sparse", "@relation r\n@attribute a numeric\n@data\n{0 1}\n", dataset.ErrMalformed},
		{"no attributes", "@relation r\n@data\n", dataset.ErrNoAttributes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.ReadARFF(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_ValidatesSchema rejects rows that do not fit the attributes.
func TestNew_ValidatesSchema(t *testing.T) {
	attrs := []dataset.Attribute{{Name: "a", Kind: dataset.Numeric}}

	_, err := dataset.New("r", attrs, []dataset.Instance{dataset.NewInstance(dataset.Num(1), dataset.Num(2))})
	assert.ErrorIs(t, err, dataset.ErrArity)

	_, err = dataset.New("r", attrs, []dataset.Instance{dataset.NewInstance(dataset.Text("x"))})
	assert.ErrorIs(t, err, dataset.ErrKindMismatch)

	_, err = dataset.New("r", nil, nil)
	assert.ErrorIs(t, err, dataset.ErrNoAttributes)
}

// TestInstance_Views checks Vector, Tokens and String.
func TestInstance_Views(t *testing.T) {
	in := dataset.NewInstance(dataset.Num(2), dataset.Sym("red", 0), dataset.Text("héy"))
	assert.Equal(t, []float64{2, 0, 0}, in.Vector())
	assert.Equal(t, []string{"2", "red", "h", "é", "y"}, in.Tokens())
	assert.Equal(t, "2,red,héy", in.String())
	assert.False(t, in.Numeric())
	assert.True(t, dataset.NewInstance(dataset.Num(1)).Numeric())
}

// TestFromVectors builds a numeric dataset and guards the index accessor.
func TestFromVectors(t *testing.T) {
	ds, err := dataset.FromVectors([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.True(t, ds.Numeric())
	assert.Equal(t, []float64{3, 4}, ds.At(1).Vector())

	_, err = ds.Instance(2)
	assert.ErrorIs(t, err, dataset.ErrIndexOutOfRange)

	_, err = dataset.FromVectors([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dataset.ErrArity)
}
