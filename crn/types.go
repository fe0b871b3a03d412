// SPDX-License-Identifier: MIT

package crn

import (
	"errors"
	"strconv"
)

// Sentinel errors for network validation and encoding.
var (
	// ErrInvalidNetwork marks malformed reaction data: non-positive
	// stoichiometry, an empty species name, or a reaction with neither
	// reactants nor products.
	ErrInvalidNetwork = errors.New("crn: invalid network")

	// ErrUnknownSpecies is returned by Encode when a term references a
	// species absent from the supplied species index.
	ErrUnknownSpecies = errors.New("crn: species not in index")

	// ErrNilEncoding is returned when a nil *Encoding is passed.
	ErrNilEncoding = errors.New("crn: encoding is nil")
)

// Term is one species with its stoichiometric coefficient on one side of a
// reaction. Coefficients must be positive.
type Term struct {
	Species     string
	Coefficient int
}

// Reaction is a source reaction as given by the network description.
type Reaction struct {
	Reactants  []Term
	Products   []Term
	Reversible bool
}

// Network is an identified list of reactions.
type Network struct {
	ID        string
	Reactions []Reaction
}

// PseudoReaction is one direction of a source reaction. Reactant and
// Product are complex indices into the Encoding's ComplexTable.
type PseudoReaction struct {
	Index    int  // 0-based position among all pseudo-reactions
	Source   int  // 0-based position of the originating source reaction
	Reverse  bool // true for the synthetic reverse of a reversible reaction
	Reactant int
	Product  int
}

// Label renders pseudo-reaction index i (0-based) as "R<i+1>".
func Label(i int) string {
	return "R" + strconv.Itoa(i+1)
}

// Labels renders each 0-based index with Label.
func Labels(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = Label(i)
	}

	return out
}
