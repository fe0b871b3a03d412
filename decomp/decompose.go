// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/matrix"
)

const noDecompositionFmt = "%s has no nontrivial incidence independent decomposition"

// Decompose computes the finest nontrivial incidence independent
// decomposition of net.
//
// A NO_DECOMPOSITION outcome is returned as a Result with Decomposed ==
// false and a Message naming the network, never as an error. A network with
// no reactions ends there too.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - crn.ErrInvalidNetwork when net fails crn.Validate.
//   - wrapped matrix errors for numeric failures that the fallback cannot
//     absorb.
func Decompose(net crn.Network, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = crn.Validate(net); err != nil {
		return nil, err
	}

	m := &machine{
		net: net,
		o:   o,
		log: o.Logger.With(slog.String("network", net.ID)),
		res: &Result{ID: net.ID, Rounded: true},
	}
	if err = m.run(); err != nil {
		return nil, fmt.Errorf("decomp: %s: %w", net.ID, err)
	}

	return m.res, nil
}

// machine carries the state shared by the transitions of one Decompose call.
type machine struct {
	net       crn.Network
	o         Options
	log       *slog.Logger
	res       *Result
	reactions *matrix.Dense // r × complexes
	fellBack  bool
}

func (m *machine) run() error {
	st := StateInit
	for {
		m.res.Trace = append(m.res.Trace, st)
		m.log.Debug("decomp: enter state", slog.String("state", st.String()))
		if st.Terminal() {
			m.res.State = st

			return nil
		}
		next, err := m.step(st)
		if err != nil {
			return fmt.Errorf("%s: %w", st, err)
		}
		st = next
	}
}

func (m *machine) step(st State) (State, error) {
	switch st {
	case StateInit:
		return m.init()
	case StateGraphBuilt:
		return m.components()
	case StateComponentsComputed:
		if len(m.res.Components) <= 1 {
			m.res.Decomposed = false
			m.res.Complete = true
			m.res.Partitions = nil
			m.res.Message = fmt.Sprintf(noDecompositionFmt, m.networkName())

			return StateNoDecomposition, nil
		}

		return m.partitions()
	case StatePartitionsBuilt:
		return StateValidating, nil
	case StateValidating:
		return m.validate(), nil
	case StateFallbackRecompute:
		return m.fallback()
	default:
		return st, fmt.Errorf("no transition from %s", st)
	}
}

// init runs the linear algebra stages and the rounded combination pass.
func (m *machine) init() (State, error) {
	res := m.res
	res.Species = crn.CollectSpecies(m.net)
	enc, err := crn.Encode(m.net, res.Species)
	if err != nil {
		return StateInit, err
	}
	res.Encoding = enc
	if res.Incidence, err = crn.BuildIncidence(enc); err != nil {
		return StateInit, err
	}
	m.log.Debug("decomp: incidence built",
		slog.Int("species", len(res.Species)),
		slog.Int("complexes", enc.Complexes.Len()),
		slog.Int("reactions", len(enc.Reactions)))

	if len(enc.Reactions) == 0 {
		// Nothing to span: an empty graph has no components.
		res.Basis = &Basis{Reactions: []int{}}
		if res.Basis.Rows, err = matrix.NewZeros(0, 0); err != nil {
			return StateInit, err
		}
		if res.Combinations, err = matrix.NewZeros(0, 0); err != nil {
			return StateInit, err
		}
		m.reactions = res.Combinations

		return m.graph()
	}

	if m.reactions, err = matrix.Transpose(res.Incidence); err != nil {
		return StateInit, err
	}
	if res.Basis, err = ExtractBasis(res.Incidence, m.o.Epsilon); err != nil {
		return StateInit, err
	}
	m.log.Debug("decomp: basis extracted",
		slog.Int("rank", res.Basis.Rank),
		slog.Any("basis", crn.Labels(res.Basis.Reactions)))

	if res.Combinations, err = SolveCombinations(m.reactions, res.Basis, true, m.o.Epsilon); err != nil {
		return StateInit, err
	}

	return m.graph()
}

func (m *machine) graph() (State, error) {
	g, err := BuildReactionGraph(m.res.Basis, m.res.Combinations, m.o.Epsilon)
	if err != nil {
		return StateInit, err
	}
	m.res.Graph = g
	m.log.Debug("decomp: reaction graph built",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Bool("rounded", m.res.Rounded))

	return StateGraphBuilt, nil
}

func (m *machine) components() (State, error) {
	comps, err := ReactionComponents(m.res.Graph)
	if err != nil {
		return StateGraphBuilt, err
	}
	m.res.Components = comps
	m.log.Debug("decomp: components computed", slog.Int("count", len(comps)))

	return StateComponentsComputed, nil
}

func (m *machine) partitions() (State, error) {
	parts, err := AssignPartitions(m.res.Components, m.res.Basis, m.res.Combinations, m.o.Epsilon)
	if err != nil {
		return StateComponentsComputed, err
	}
	m.res.Partitions = parts
	m.res.Decomposed = true

	return StatePartitionsBuilt, nil
}

func (m *machine) validate() State {
	missing, duplicated := Coverage(m.res.Partitions, len(m.res.Encoding.Reactions))
	if len(missing) == 0 && len(duplicated) == 0 {
		m.res.Complete = true

		return StatePartitionsFinal
	}
	if m.o.Fallback && !m.fellBack {
		m.log.Info("decomp: incomplete covering, recomputing unrounded",
			slog.Any("missing", crn.Labels(missing)),
			slog.Any("duplicated", crn.Labels(duplicated)))

		return StateFallbackRecompute
	}

	m.res.Complete = false
	m.log.Warn("decomp: partitions do not cover every reaction",
		slog.Any("missing", crn.Labels(missing)),
		slog.Any("duplicated", crn.Labels(duplicated)),
		slog.Bool("rounded", m.res.Rounded))

	return StatePartitionsFinal
}

// fallback discards the rounded combinations and rebuilds G from the raw
// least-squares solution. It runs at most once per call.
func (m *machine) fallback() (State, error) {
	m.fellBack = true
	m.res.Rounded = false
	m.res.Partitions = nil
	m.res.Decomposed = false

	comb, err := SolveCombinations(m.reactions, m.res.Basis, false, m.o.Epsilon)
	if err != nil {
		return StateFallbackRecompute, err
	}
	m.res.Combinations = comb

	return m.graph()
}

func (m *machine) networkName() string {
	if m.net.ID == "" {
		return "network"
	}

	return m.net.ID
}
