// Package report renders decomposition results for people and for tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/decomp"
	"github.com/katalvlaran/crndecomp/matrix"
)

// ErrUnknownFormat is returned for a format name Write does not know.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text", "yaml" (or "yml") and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// JoinLabels renders 0-based pseudo-reaction indices as "R1, R3, R5".
func JoinLabels(indices []int) string {
	return strings.Join(crn.Labels(indices), ", ")
}

// Write renders res to w.
func Write(w io.Writer, res *decomp.Result, format Format) error {
	if res == nil {
		return errors.New("report: nil result")
	}
	switch format {
	case FormatText, "":
		return writeText(w, res)
	case FormatYAML:
		out, err := yaml.Marshal(newDocument(res))
		if err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		_, err = w.Write(out)

		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(res)); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// document is the machine-readable form of a result.
type document struct {
	Network    string          `json:"network"`
	State      string          `json:"state"`
	Decomposed bool            `json:"decomposed"`
	Complete   bool            `json:"complete"`
	Rounded    bool            `json:"rounded"`
	Message    string          `json:"message,omitempty"`
	Species    []string        `json:"species"`
	Complexes  []string        `json:"complexes"`
	Reactions  []reactionEntry `json:"reactions"`
	Incidence  [][]float64     `json:"incidence"`
	Basis      []string        `json:"basis"`
	Edges      [][2]string     `json:"edges"`
	Partitions [][]string      `json:"partitions"`
	Trace      []string        `json:"trace"`
}

type reactionEntry struct {
	Label    string `json:"label"`
	Equation string `json:"equation"`
	Source   int    `json:"source"`
	Reverse  bool   `json:"reverse,omitempty"`
}

func newDocument(res *decomp.Result) document {
	doc := document{
		Network:    res.ID,
		State:      res.State.String(),
		Decomposed: res.Decomposed,
		Complete:   res.Complete,
		Rounded:    res.Rounded,
		Message:    res.Message,
		Species:    res.Species,
		Complexes:  []string{},
		Reactions:  []reactionEntry{},
		Basis:      []string{},
		Edges:      [][2]string{},
		Partitions: res.PartitionLabels(),
		Incidence:  rows(res.Incidence),
		Trace:      make([]string, 0, len(res.Trace)),
	}
	if enc := res.Encoding; enc != nil {
		for i := 0; i < enc.Complexes.Len(); i++ {
			doc.Complexes = append(doc.Complexes, enc.Complexes.Format(i, enc.Species))
		}
		for _, p := range enc.Reactions {
			doc.Reactions = append(doc.Reactions, reactionEntry{
				Label:    crn.Label(p.Index),
				Equation: enc.Describe(p.Index),
				Source:   p.Source + 1,
				Reverse:  p.Reverse,
			})
		}
	}
	if res.Basis != nil {
		doc.Basis = crn.Labels(res.Basis.Reactions)
	}
	if res.Graph != nil {
		for _, e := range res.Graph.Edges() {
			doc.Edges = append(doc.Edges, [2]string{e.From, e.To})
		}
	}
	for _, s := range res.Trace {
		doc.Trace = append(doc.Trace, s.String())
	}

	return doc
}

func rows(m *matrix.Dense) [][]float64 {
	out := [][]float64{}
	if m == nil {
		return out
	}
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			break
		}
		out = append(out, row)
	}

	return out
}

func writeText(w io.Writer, res *decomp.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "network: %s\n", res.ID)
	fmt.Fprintf(&b, "species: %s\n", strings.Join(res.Species, ", "))
	if enc := res.Encoding; enc != nil {
		fmt.Fprintf(&b, "reactions: %d (%d complexes)\n", len(enc.Reactions), enc.Complexes.Len())
		for _, p := range enc.Reactions {
			fmt.Fprintf(&b, "  %-4s %s\n", crn.Label(p.Index), enc.Describe(p.Index))
		}
	}
	if res.Basis != nil {
		fmt.Fprintf(&b, "basis: %s (rank %d)\n", JoinLabels(res.Basis.Reactions), res.Basis.Rank)
	}

	if !res.Decomposed {
		fmt.Fprintln(&b, res.Message)
		_, err := io.WriteString(w, b.String())

		return err
	}

	fmt.Fprintf(&b, "partitions: %d\n", len(res.Partitions))
	for k, part := range res.Partitions {
		fmt.Fprintf(&b, "  P%d: %s\n", k+1, JoinLabels(part))
	}
	if !res.Complete {
		missing, duplicated := decomp.Coverage(res.Partitions, res.ReactionCount())
		fmt.Fprintf(&b, "warning: incomplete decomposition (unassigned: %s", JoinLabels(missing))
		if len(duplicated) > 0 {
			fmt.Fprintf(&b, "; duplicated: %s", JoinLabels(duplicated))
		}
		fmt.Fprintln(&b, ")")
	}
	_, err := io.WriteString(w, b.String())

	return err
}
