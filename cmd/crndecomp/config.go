package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newConfigCmd(a *app) *cobra.Command {
	var showSource bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the effective configuration after merging defaults, config file, environment variables and flags.`,
		Example: `  # Show effective configuration
  crndecomp config show

  # Show configuration with source file path
  crndecomp config show --source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showSource {
				if a.configPath != "" {
					fmt.Fprintf(a.stdout, "Config file: %s\n\n", a.configPath)
				} else {
					fmt.Fprintln(a.stdout, "Config file: (none, using defaults)")
					fmt.Fprintln(a.stdout)
				}
			}

			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, string(out))
			return nil
		},
	}
	showCmd.Flags().BoolVar(&showSource, "source", false, "show config file source")
	configCmd.AddCommand(showCmd)

	return configCmd
}
