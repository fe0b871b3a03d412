// Package netfile reads reaction network descriptions from YAML or JSON
// files into crn.Network values.
//
// A file names the network and lists its reactions, each either as
// explicit term lists or as an equation string:
//
//	id: toy
//	reactions:
//	  - reactants: [{species: A, coefficient: 1}]
//	    products:  [{species: B}]
//	    reversible: true
//	  - equation: "2C + D -> E"
//
// Only the shape of the document is checked here; stoichiometric validity
// is left to crn.Validate.
package netfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/crndecomp/crn"
)

var (
	// ErrParse wraps every decoding failure.
	ErrParse = errors.New("netfile: parse error")

	// ErrUnsupportedFormat is returned for an unknown file extension or
	// format name.
	ErrUnsupportedFormat = errors.New("netfile: unsupported format")
)

// Format is the encoding of a network document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// networkFile is the on-disk document.
type networkFile struct {
	ID        string         `json:"id"`
	Reactions []reactionFile `json:"reactions"`
}

type reactionFile struct {
	Equation   string     `json:"equation,omitempty"`
	Reactants  []termFile `json:"reactants,omitempty"`
	Products   []termFile `json:"products,omitempty"`
	Reversible bool       `json:"reversible,omitempty"`
}

type termFile struct {
	Species string `json:"species"`
	// Coefficient defaults to 1 when omitted.
	Coefficient *int `json:"coefficient,omitempty"`
}

// Load reads and parses the network file at path. When the document has
// no id, the file's base name without extension is used.
func Load(path string) (crn.Network, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return crn.Network{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return crn.Network{}, fmt.Errorf("reading network file: %w", err)
	}
	net, err := Parse(data, format)
	if err != nil {
		return crn.Network{}, fmt.Errorf("%s: %w", path, err)
	}
	if net.ID == "" {
		net.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return net, nil
}

// Parse decodes data in the given format. Unknown fields are rejected.
func Parse(data []byte, format Format) (crn.Network, error) {
	switch format {
	case FormatYAML:
	case FormatJSON:
		if !json.Valid(data) {
			return crn.Network{}, fmt.Errorf("invalid JSON document: %w", ErrParse)
		}
	default:
		return crn.Network{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	var doc networkFile
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return crn.Network{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return doc.network()
}

func (d networkFile) network() (crn.Network, error) {
	net := crn.Network{ID: d.ID, Reactions: make([]crn.Reaction, 0, len(d.Reactions))}
	for i, rf := range d.Reactions {
		rx, err := rf.reaction()
		if err != nil {
			return crn.Network{}, fmt.Errorf("reaction %d: %w", i+1, err)
		}
		net.Reactions = append(net.Reactions, rx)
	}

	return net, nil
}

func (r reactionFile) reaction() (crn.Reaction, error) {
	if r.Equation != "" {
		if len(r.Reactants) > 0 || len(r.Products) > 0 || r.Reversible {
			return crn.Reaction{}, fmt.Errorf("equation cannot be combined with term lists: %w", ErrParse)
		}

		return ParseEquation(r.Equation)
	}

	return crn.Reaction{
		Reactants:  terms(r.Reactants),
		Products:   terms(r.Products),
		Reversible: r.Reversible,
	}, nil
}

func terms(in []termFile) []crn.Term {
	out := make([]crn.Term, 0, len(in))
	for _, t := range in {
		c := 1
		if t.Coefficient != nil {
			c = *t.Coefficient
		}
		out = append(out, crn.Term{Species: t.Species, Coefficient: c})
	}

	return out
}
