package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/netlist-bom/internal/logging"
	"github.com/StinkyLord/netlist-bom/internal/verify"
)

var errMalformed = errors.New("netlist is not well-formed")

func newCheckCmd() *cobra.Command {
	var verbose bool

	checkCmd := &cobra.Command{
		Use:   "check <file.net>",
		Short: "Inspect a netlist for structural problems",
		Long: `Check that a netlist is a well-formed S-expression document and compare the
line scanner used by "bom" with the nesting-aware tree parser.

Disagreements usually mean a field tag appeared in a block that does not
belong to the component (for example a libparts entry after the last
component) and was picked up by the line scanner.`,
		Args: netlistArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			level := "warn"
			if verbose {
				level = "debug"
			}
			logger := logging.New(level, "text", cmd.ErrOrStderr())

			report, err := verify.Check(args[0], logger)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)

			if !report.WellFormed {
				return fmt.Errorf("%s: %w", args[0], errMalformed)
			}
			return nil
		},
	}

	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug diagnostics on stderr")
	return checkCmd
}

func printReport(w io.Writer, r *verify.Report) {
	fmt.Fprintf(w, "Netlist: %s\n", r.Path)
	if r.WellFormed {
		fmt.Fprintf(w, "Structure: well-formed (%d top-level expressions, %d leaves)\n", r.Expressions, r.Leaves)
	} else {
		fmt.Fprintf(w, "Structure: malformed: %s\n", r.ParseError)
	}

	fmt.Fprintf(w, "Components (line scanner): %d\n", r.LineRecords)
	if r.TreeRecords >= 0 {
		fmt.Fprintf(w, "Components (tree parser):  %d\n", r.TreeRecords)
	}

	if len(r.Mismatches) > 0 {
		fmt.Fprintf(w, "\nField disagreements (%d):\n", len(r.Mismatches))
		for _, m := range r.Mismatches {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
	if len(r.DuplicateRefs) > 0 {
		fmt.Fprintf(w, "\nDuplicate references: %v\n", r.DuplicateRefs)
	}
	if len(r.UnknownRefs) > 0 {
		fmt.Fprintf(w, "\nUnknown designator prefixes: %v\n", r.UnknownRefs)
	}

	if r.OK() {
		fmt.Fprintln(w, "\nOK")
	}
}
