package netfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crndecomp/crn"
)

const toyYAML = `
id: toy
reactions:
  - reactants: [{species: A, coefficient: 1}]
    products:  [{species: B}]
    reversible: true
  - equation: "2C + D -> E"
`

func TestParse_YAML(t *testing.T) {
	net, err := Parse([]byte(toyYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "toy", net.ID)
	require.Len(t, net.Reactions, 2)
	assert.Equal(t, crn.Reaction{
		Reactants:  []crn.Term{{Species: "A", Coefficient: 1}},
		Products:   []crn.Term{{Species: "B", Coefficient: 1}},
		Reversible: true,
	}, net.Reactions[0])
	assert.Equal(t, []crn.Term{{Species: "C", Coefficient: 2}, {Species: "D", Coefficient: 1}}, net.Reactions[1].Reactants)
	assert.False(t, net.Reactions[1].Reversible)
}

func TestParse_JSON(t *testing.T) {
	doc := `{"id": "j", "reactions": [{"equation": "0 <=> X"}]}`
	net, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "j", net.ID)
	assert.Empty(t, net.Reactions[0].Reactants)
	assert.True(t, net.Reactions[0].Reversible)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{"UnknownField", "id: x\nreaktions: []\n", FormatYAML},
		{"BadYAML", "id: [unclosed\n", FormatYAML},
		{"YAMLInJSONFile", "id: x\n", FormatJSON},
		{"EquationAndTerms", "reactions:\n  - equation: A -> B\n    reactants: [{species: A}]\n", FormatYAML},
		{"NoArrow", "reactions:\n  - equation: A + B\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.format)
			assert.ErrorIs(t, err, ErrParse)
		})
	}

	_, err := Parse([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseEquation(t *testing.T) {
	tests := []struct {
		eq   string
		want crn.Reaction
	}{
		{"A -> B", crn.Reaction{
			Reactants: []crn.Term{{Species: "A", Coefficient: 1}},
			Products:  []crn.Term{{Species: "B", Coefficient: 1}},
		}},
		{"2 H2 + O2 <-> 2H2O", crn.Reaction{
			Reactants:  []crn.Term{{Species: "H2", Coefficient: 2}, {Species: "O2", Coefficient: 1}},
			Products:   []crn.Term{{Species: "H2O", Coefficient: 2}},
			Reversible: true,
		}},
		{"X -> 0", crn.Reaction{
			Reactants: []crn.Term{{Species: "X", Coefficient: 1}},
			Products:  []crn.Term{},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.eq, func(t *testing.T) {
			got, err := ParseEquation(tt.eq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"A + -> B", "3 -> A", "A B -> C"} {
		_, err := ParseEquation(bad)
		assert.ErrorIs(t, err, ErrParse, bad)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cycle.yml")
	require.NoError(t, os.WriteFile(path, []byte("reactions:\n  - equation: A -> B\n"), 0o644))

	net, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cycle", net.ID, "id falls back to the file name")

	_, err = Load(filepath.Join(dir, "net.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
