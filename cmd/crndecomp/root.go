package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crndecomp/internal/cli"
	"github.com/katalvlaran/crndecomp/internal/logging"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	// Set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     *slog.Logger

	// Persistent flags
	cfgFile   string
	logLevel  string
	logFormat string

	stdout, stderr io.Writer
}

// Command group IDs
const (
	groupNetwork = "network"
	groupUtility = "utility"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "crndecomp",
		Short: "Incidence independent decomposition of reaction networks",
		Long: `crndecomp - incidence independent decomposition of chemical reaction networks

crndecomp reads a reaction network, builds its complexes and incidence matrix,
and splits the reactions into the finest partition whose incidence structures
are independent. A network that cannot be split is reported as such.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help/completion/version commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover crndecomp.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddGroup(
		&cobra.Group{ID: groupNetwork, Title: "Network:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)
	for _, c := range []*cobra.Command{newDecomposeCmd(a), newSpeciesCmd(a), newIncidenceCmd(a)} {
		c.GroupID = groupNetwork
		root.AddCommand(c)
	}
	for _, c := range []*cobra.Command{newConfigCmd(a), newVersionCmd(a)} {
		c.GroupID = groupUtility
		root.AddCommand(c)
	}

	return root
}

// load resolves configuration and the logger for cmd.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	a.cfg, a.configPath, err = cli.LoadConfig(a.cfgFile, cmd.Flags())
	if err != nil {
		return cli.ConfigError("loading configuration", err)
	}
	a.logger, err = logging.New(a.stderr, a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return cli.ConfigError("configuring logger", err)
	}
	a.logger.Debug("configuration loaded", slog.String("path", a.configPath))

	return nil
}
