// Command crndecomp computes the finest nontrivial incidence independent
// decomposition of chemical reaction networks described in YAML or JSON.
package main

import (
	"io"
	"os"

	"github.com/katalvlaran/crndecomp/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return cli.ReportError(stderr, err)
	}

	return cli.ExitSuccess
}
