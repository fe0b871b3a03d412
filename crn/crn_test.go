// SPDX-License-Identifier: MIT

package crn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crndecomp/crn"
)

func term(s string, c int) crn.Term { return crn.Term{Species: s, Coefficient: c} }

// rx builds a reaction with unit coefficients.
func rx(reactants, products []string, reversible bool) crn.Reaction {
	r := crn.Reaction{Reversible: reversible}
	for _, s := range reactants {
		r.Reactants = append(r.Reactants, term(s, 1))
	}
	for _, s := range products {
		r.Products = append(r.Products, term(s, 1))
	}

	return r
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		net     crn.Network
		wantErr bool
	}{
		{name: "Empty", net: crn.Network{ID: "empty"}},
		{name: "Valid", net: crn.Network{Reactions: []crn.Reaction{rx([]string{"A"}, []string{"B"}, true)}}},
		{name: "InflowZeroComplex", net: crn.Network{Reactions: []crn.Reaction{rx(nil, []string{"A"}, false)}}},
		{name: "EmptyReaction", net: crn.Network{Reactions: []crn.Reaction{{}}}, wantErr: true},
		{
			name: "ZeroCoefficient",
			net: crn.Network{Reactions: []crn.Reaction{{
				Reactants: []crn.Term{term("A", 0)}, Products: []crn.Term{term("B", 1)},
			}}},
			wantErr: true,
		},
		{
			name: "NegativeProduct",
			net: crn.Network{Reactions: []crn.Reaction{{
				Reactants: []crn.Term{term("A", 1)}, Products: []crn.Term{term("B", -2)},
			}}},
			wantErr: true,
		},
		{
			name: "EmptySpeciesName",
			net: crn.Network{Reactions: []crn.Reaction{{
				Reactants: []crn.Term{term("", 1)},
			}}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := crn.Validate(tc.net)
			if tc.wantErr {
				assert.ErrorIs(t, err, crn.ErrInvalidNetwork)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCollectSpecies_FirstSeenOrder(t *testing.T) {
	net := crn.Network{Reactions: []crn.Reaction{
		rx([]string{"X", "A"}, []string{"B"}, false),
		rx([]string{"B"}, []string{"A", "C"}, true),
	}}

	assert.Equal(t, []string{"X", "A", "B", "C"}, crn.CollectSpecies(net))
	assert.Empty(t, crn.CollectSpecies(crn.Network{}))
	assert.Equal(t, 3, crn.PseudoReactionCount(net))
}

func TestEncode_ReversibleAndDedup(t *testing.T) {
	// A ⇌ B, B → A: three pseudo-reactions over two complexes.
	net := crn.Network{Reactions: []crn.Reaction{
		rx([]string{"A"}, []string{"B"}, true),
		rx([]string{"B"}, []string{"A"}, false),
	}}
	enc, err := crn.Encode(net, crn.CollectSpecies(net))
	require.NoError(t, err)

	require.Len(t, enc.Reactions, 3)
	assert.Equal(t, 2, enc.Complexes.Len())

	assert.Equal(t, crn.PseudoReaction{Index: 0, Source: 0, Reactant: 0, Product: 1}, enc.Reactions[0])
	assert.Equal(t, crn.PseudoReaction{Index: 1, Source: 0, Reverse: true, Reactant: 1, Product: 0}, enc.Reactions[1])
	assert.Equal(t, crn.PseudoReaction{Index: 2, Source: 1, Reactant: 1, Product: 0}, enc.Reactions[2])

	assert.Equal(t, []float64{-1, 1}, enc.ReactionVector(0))
	assert.Equal(t, []float64{1, -1}, enc.ReactionVector(1))
	assert.Equal(t, "B -> A", enc.Describe(1))
}

func TestEncode_StoichiometryAndZeroComplex(t *testing.T) {
	net := crn.Network{Reactions: []crn.Reaction{
		{Reactants: []crn.Term{term("A", 2), term("B", 1)}, Products: []crn.Term{term("C", 1)}},
		{Products: []crn.Term{term("A", 1)}},
	}}
	enc, err := crn.Encode(net, crn.CollectSpecies(net))
	require.NoError(t, err)

	assert.Equal(t, 4, enc.Complexes.Len())
	assert.Equal(t, "2A+B -> C", enc.Describe(0))
	assert.Equal(t, "0 -> A", enc.Describe(1))

	idx, ok := enc.Complexes.Lookup([]float64{2, 1, 0})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestEncode_UnknownSpecies(t *testing.T) {
	net := crn.Network{Reactions: []crn.Reaction{rx([]string{"A"}, []string{"B"}, false)}}
	_, err := crn.Encode(net, []string{"A"})
	assert.ErrorIs(t, err, crn.ErrUnknownSpecies)
}

func TestBuildIncidence(t *testing.T) {
	// A ⇌ B, C → D
	net := crn.Network{Reactions: []crn.Reaction{
		rx([]string{"A"}, []string{"B"}, true),
		rx([]string{"C"}, []string{"D"}, false),
	}}
	enc, err := crn.Encode(net, crn.CollectSpecies(net))
	require.NoError(t, err)

	ia, err := crn.BuildIncidence(enc)
	require.NoError(t, err)
	assert.Equal(t, "[-1, 1, 0]\n[1, -1, 0]\n[0, 0, -1]\n[0, 0, 1]\n", ia.String())

	_, err = crn.BuildIncidence(nil)
	assert.ErrorIs(t, err, crn.ErrNilEncoding)
}

// A self-loop column (reactant complex == product complex) nets to zero.
func TestBuildIncidence_SelfLoopColumnIsZero(t *testing.T) {
	net := crn.Network{Reactions: []crn.Reaction{
		rx([]string{"A"}, []string{"A"}, false),
		rx([]string{"A"}, []string{"B"}, false),
	}}
	enc, err := crn.Encode(net, crn.CollectSpecies(net))
	require.NoError(t, err)
	assert.Equal(t, enc.Reactions[0].Reactant, enc.Reactions[0].Product)

	ia, err := crn.BuildIncidence(enc)
	require.NoError(t, err)
	for i := 0; i < ia.Rows(); i++ {
		v, err := ia.At(i, 0)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "R1", crn.Label(0))
	assert.Equal(t, []string{"R3", "R10"}, crn.Labels([]int{2, 9}))
}
