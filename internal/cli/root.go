package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

type globalOptions struct {
	Env string
}

type commandDeps struct {
	out     io.Writer
	build   BuildInfo
	globals *globalOptions
}

// NewRootCommand builds the ledger command tree
func NewRootCommand(out io.Writer, build BuildInfo) *cobra.Command {
	globals := &globalOptions{}
	deps := commandDeps{out: out, build: build, globals: globals}

	cmd := &cobra.Command{
		Use:           "ledger",
		Short:         "Pocket Ledger personal finance store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.PersistentFlags().StringVar(&globals.Env, "env", "", "Environment to load (development, test, production); defaults to PL_ENV")

	cmd.AddCommand(newVersionCommand(deps))
	cmd.AddCommand(newServeCommand(deps))
	cmd.AddCommand(newMigrateCommand(deps))
	cmd.AddCommand(newSeedCommand(deps))
	cmd.AddCommand(newResetCommand(deps))
	cmd.AddCommand(newBillsCommand(deps))
	cmd.AddCommand(newExportCommand(deps))
	return cmd
}
