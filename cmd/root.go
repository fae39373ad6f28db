package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const toolVersion = "1.0.0"

// errUsage marks errors caused by a missing or invalid command line.
var errUsage = errors.New("usage error")

func newRootCmd() *cobra.Command {
	var f bomFlags

	rootCmd := &cobra.Command{
		Use:   "netlist-bom [flags] <file.net>",
		Short: "KiCad netlist to BOM converter",
		Long: `netlist-bom reads a KiCad netlist file (*.net) and prints a bill of
materials as tab-separated text, ready to paste into a spreadsheet.

Rows are either one per component or, with --compressed, one per group of
components sharing the same part, value and footprint. Grouped references are
sorted naturally (R9 before R10).

Given a netlist file directly, netlist-bom runs the bom command with the same
flags, so "netlist-bom -c board.net" equals "netlist-bom bom -c board.net".`,
		Args: netlistArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runBom(cmd, args[0], &f)
		},
		SilenceErrors: true,
	}

	bindBomFlags(rootCmd, &f)

	rootCmd.AddCommand(newBomCmd(), newCheckCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netlist-bom v%s\n", toolVersion)
		},
	}
}

// Execute runs the command tree and exits non-zero on any error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
