package terminal

import (
	"io"
	"os"

	"github.com/tallyweb/backoffice/pkg/runtime/terminal/commands"
	"github.com/tallyweb/backoffice/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reports  commands.Generator
	reporter *Reporter
	exporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Reports commands.Generator
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reports:  opts.Reports,
		reporter: NewReporter(opts.Output),
		exporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Business reporting tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.reports, cli.reporter, cli.exporter))
	cmd.AddCommand(commands.NewTypesCmd())

	return cmd
}
