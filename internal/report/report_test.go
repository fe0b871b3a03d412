package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/decomp"
)

func reaction(from, to string, reversible bool) crn.Reaction {
	return crn.Reaction{
		Reactants:  []crn.Term{{Species: from, Coefficient: 1}},
		Products:   []crn.Term{{Species: to, Coefficient: 1}},
		Reversible: reversible,
	}
}

func decompose(t *testing.T, net crn.Network) *decomp.Result {
	t.Helper()
	res, err := decomp.Decompose(net)
	require.NoError(t, err)

	return res
}

func TestJoinLabels(t *testing.T) {
	assert.Equal(t, "R1, R3, R5", JoinLabels([]int{0, 2, 4}))
	assert.Equal(t, "", JoinLabels(nil))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "yml": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite_Text(t *testing.T) {
	res := decompose(t, crn.Network{ID: "toy", Reactions: []crn.Reaction{
		reaction("A", "B", true), reaction("C", "D", false),
	}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatText))
	out := buf.String()

	assert.Contains(t, out, "network: toy\n")
	assert.Contains(t, out, "species: A, B, C, D\n")
	assert.Contains(t, out, "R2   B -> A\n")
	assert.Contains(t, out, "basis: R1, R3 (rank 2)\n")
	assert.Contains(t, out, "  P1: R1, R2\n  P2: R3\n")
	assert.NotContains(t, out, "warning")
}

func TestWrite_TextNoDecomposition(t *testing.T) {
	res := decompose(t, crn.Network{ID: "single", Reactions: []crn.Reaction{reaction("A", "B", true)}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatText))
	assert.True(t, strings.HasSuffix(buf.String(), "single has no nontrivial incidence independent decomposition\n"))
}

func TestWrite_TextIncomplete(t *testing.T) {
	res := decompose(t, crn.Network{ID: "loop", Reactions: []crn.Reaction{
		reaction("A", "A", false), reaction("B", "C", false), reaction("D", "E", false),
	}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatText))
	assert.Contains(t, buf.String(), "warning: incomplete decomposition (unassigned: R1)\n")
}

func TestWrite_JSON(t *testing.T) {
	res := decompose(t, crn.Network{ID: "toy", Reactions: []crn.Reaction{
		reaction("A", "B", true), reaction("C", "D", true),
	}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatJSON))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "toy", doc.Network)
	assert.Equal(t, "PARTITIONS_FINAL", doc.State)
	assert.Equal(t, [][]string{{"R1", "R2"}, {"R3", "R4"}}, doc.Partitions)
	assert.Equal(t, []string{"A", "B", "C", "D"}, doc.Complexes)
	assert.Equal(t, reactionEntry{Label: "R4", Equation: "D -> C", Source: 2, Reverse: true}, doc.Reactions[3])
	assert.Equal(t, []float64{-1, 1, 0, 0}, doc.Incidence[0])
	assert.Empty(t, doc.Edges)
}

func TestWrite_YAML(t *testing.T) {
	res := decompose(t, crn.Network{ID: "tri", Reactions: []crn.Reaction{
		reaction("A", "B", false), reaction("B", "C", false), reaction("A", "C", false),
	}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatYAML))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.False(t, doc.Decomposed)
	assert.Equal(t, "tri has no nontrivial incidence independent decomposition", doc.Message)
	assert.Equal(t, [][2]string{{"R1", "R2"}}, doc.Edges)
	assert.Empty(t, doc.Partitions)
}

func TestWrite_Errors(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, nil, FormatText))
	assert.ErrorIs(t, Write(&bytes.Buffer{}, &decomp.Result{}, Format("xml")), ErrUnknownFormat)
}

func TestWriteIncidence(t *testing.T) {
	net := crn.Network{Reactions: []crn.Reaction{reaction("A", "B", true)}}
	enc, err := crn.Encode(net, crn.CollectSpecies(net))
	require.NoError(t, err)
	ia, err := crn.BuildIncidence(enc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteIncidence(&buf, enc, ia))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"R1", "R2"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"A", "-1", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"B", "1", "-1"}, strings.Fields(lines[2]))

	assert.ErrorIs(t, WriteIncidence(&buf, nil, ia), crn.ErrNilEncoding)
}
