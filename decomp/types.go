// SPDX-License-Identifier: MIT

package decomp

import (
	"errors"

	"github.com/katalvlaran/crndecomp/core"
	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/matrix"
)

// Sentinel errors for the decomposition pipeline.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("decomp: invalid option supplied")

	// ErrNilBasis is returned when a stage receives a nil *Basis.
	ErrNilBasis = errors.New("decomp: basis is nil")

	// ErrNilGraph is returned when a stage receives a nil reaction graph.
	ErrNilGraph = errors.New("decomp: reaction graph is nil")
)

// State is a step of the partition assignment state machine.
type State int

const (
	StateInit State = iota
	StateGraphBuilt
	StateComponentsComputed
	StateNoDecomposition
	StatePartitionsBuilt
	StateValidating
	StatePartitionsFinal
	StateFallbackRecompute
)

var stateNames = [...]string{
	StateInit:               "INIT",
	StateGraphBuilt:         "GRAPH_BUILT",
	StateComponentsComputed: "COMPONENTS_COMPUTED",
	StateNoDecomposition:    "NO_DECOMPOSITION",
	StatePartitionsBuilt:    "PARTITIONS_BUILT",
	StateValidating:         "VALIDATING",
	StatePartitionsFinal:    "PARTITIONS_FINAL",
	StateFallbackRecompute:  "FALLBACK_RECOMPUTE",
}

// String returns the upper-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}

	return stateNames[s]
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateNoDecomposition || s == StatePartitionsFinal
}

// Basis is the set of linearly independent pseudo-reactions selected by
// row reduction of the incidence matrix.
type Basis struct {
	// Reactions holds 0-based pseudo-reaction indices, increasing.
	Reactions []int

	// Rows is |basis| × complexes: row j is the reaction vector of
	// Reactions[j] (a column of I_a).
	Rows *matrix.Dense

	// Rank equals len(Reactions).
	Rank int
}

// Column returns the combination column of pseudo-reaction idx, or -1 when
// idx is not a basis reaction.
func (b *Basis) Column(idx int) int {
	for j, r := range b.Reactions {
		if r == idx {
			return j
		}
	}

	return -1
}

// Result is everything Decompose derived from one network.
type Result struct {
	// ID is the network identifier.
	ID string

	// State is the terminal state reached.
	State State

	// Decomposed is true iff the graph had two or more components.
	Decomposed bool

	// Complete reports that every pseudo-reaction lies in exactly one
	// partition. It is also true for a NO_DECOMPOSITION outcome.
	Complete bool

	// Rounded is false once the unrounded fallback has run.
	Rounded bool

	// Message describes a NO_DECOMPOSITION outcome; empty otherwise.
	Message string

	Species      []string
	Encoding     *crn.Encoding
	Incidence    *matrix.Dense
	Basis        *Basis
	Combinations *matrix.Dense
	Graph        *core.Graph

	// Components lists the basis reaction indices of each connected
	// component of Graph, numbered by smallest member.
	Components [][]int

	// Partitions holds sorted pseudo-reaction indices, one entry per
	// component, in component order.
	Partitions [][]int

	// Trace records every state visited, in order.
	Trace []State
}
