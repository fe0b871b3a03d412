package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/decomp"
	"github.com/katalvlaran/crndecomp/internal/cli"
	"github.com/katalvlaran/crndecomp/internal/netfile"
	"github.com/katalvlaran/crndecomp/internal/report"
)

// loadNetwork reads and validates the network at path.
func (a *app) loadNetwork(path string) (crn.Network, error) {
	net, err := netfile.Load(path)
	if err != nil {
		return crn.Network{}, cli.InputError("reading network", err)
	}
	if err = crn.Validate(net); err != nil {
		return crn.Network{}, cli.InvalidNetworkError("checking network "+net.ID, err)
	}
	a.logger.Debug("network loaded", "network", net.ID, "reactions", len(net.Reactions))

	return net, nil
}

func newDecomposeCmd(a *app) *cobra.Command {
	var noFallback bool

	cmd := &cobra.Command{
		Use:   "decompose <file>",
		Short: "Compute the finest incidence independent decomposition",
		Example: `  # Decompose a network and print a text report
  crndecomp decompose network.yaml

  # Machine-readable output with a looser tolerance
  crndecomp decompose network.json --format json --epsilon 1e-6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.loadNetwork(args[0])
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(a.cfg.Format)
			if err != nil {
				return cli.ConfigError("report format", err)
			}

			res, err := decomp.Decompose(net,
				decomp.WithEpsilon(a.cfg.Epsilon),
				decomp.WithFallback(a.cfg.Fallback && !noFallback),
				decomp.WithLogger(a.logger),
			)
			switch {
			case errors.Is(err, decomp.ErrOptionViolation):
				return cli.ConfigError("decomposition options", err)
			case errors.Is(err, crn.ErrInvalidNetwork):
				return cli.InvalidNetworkError("checking network "+net.ID, err)
			case err != nil:
				return cli.GeneralError("decomposing "+net.ID, err)
			}

			if err = report.Write(a.stdout, res, format); err != nil {
				return cli.GeneralError("writing report", err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "o", "", "output format: text, yaml or json")
	cmd.Flags().Float64("epsilon", 0, "numeric tolerance (default from config, 1e-9)")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "skip the unrounded recomputation")

	return cmd
}

func newSpeciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "species <file>",
		Short: "List species in first-seen order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.loadNetwork(args[0])
			if err != nil {
				return err
			}
			for i, s := range crn.CollectSpecies(net) {
				fmt.Fprintf(a.stdout, "%d\t%s\n", i+1, s)
			}
			return nil
		},
	}
}

func newIncidenceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "incidence <file>",
		Short: "Print the complex × reaction incidence matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.loadNetwork(args[0])
			if err != nil {
				return err
			}
			enc, err := crn.Encode(net, crn.CollectSpecies(net))
			if err != nil {
				return cli.InvalidNetworkError("encoding network "+net.ID, err)
			}
			ia, err := crn.BuildIncidence(enc)
			if err != nil {
				return cli.GeneralError("building incidence matrix", err)
			}
			for _, p := range enc.Reactions {
				fmt.Fprintf(a.stdout, "%s: %s\n", crn.Label(p.Index), enc.Describe(p.Index))
			}
			fmt.Fprintln(a.stdout)
			return report.WriteIncidence(a.stdout, enc, ia)
		},
	}
}
