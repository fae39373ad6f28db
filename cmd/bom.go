package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/netlist-bom/internal/config"
	"github.com/StinkyLord/netlist-bom/internal/logging"
	"github.com/StinkyLord/netlist-bom/internal/output"
	"github.com/StinkyLord/netlist-bom/internal/scanner"
)

type bomFlags struct {
	compressed bool
	linefeed   bool
	wrap       int
	parser     string
	format     string
	output     string
	noTotal    bool
	capacity   int
	config     string
	verbose    bool
	logFormat  string
}

func newBomCmd() *cobra.Command {
	var f bomFlags

	bomCmd := &cobra.Command{
		Use:   "bom <file.net>",
		Short: "Print the bill of materials of a netlist",
		Long: `Parse a KiCad netlist and print its bill of materials.

Examples:
  netlist-bom bom MySchematic.net
  netlist-bom bom --compressed MySchematic.net
  netlist-bom bom --compressed --linefeed MySchematic.net
  netlist-bom bom -c -f cyclonedx -o bom.json MySchematic.net`,
		Args: netlistArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runBom(cmd, args[0], &f)
		},
	}

	bindBomFlags(bomCmd, &f)
	return bomCmd
}

// bindBomFlags registers the report flags on c. The root command shares them
// so that "netlist-bom file.net" behaves like "netlist-bom bom file.net".
func bindBomFlags(c *cobra.Command, f *bomFlags) {
	fl := c.Flags()
	fl.BoolVarP(&f.compressed, "compressed", "c", false, "Combine references with the same part, value and footprint into one line")
	fl.BoolVarP(&f.linefeed, "linefeed", "l", false,
		"In compressed output, quote the reference list and break it every --wrap items.\n"+
			"This is for readability on many similar parts.")
	fl.IntVar(&f.wrap, "wrap", output.DefaultWrapEvery, "References per line when --linefeed is set")
	fl.StringVar(&f.parser, "parser", "line", "Netlist parser: line (substring scanner) or tree (S-expression grammar)")
	fl.StringVarP(&f.format, "format", "f", "tsv", "Output format: tsv, json, cyclonedx")
	fl.StringVarP(&f.output, "output", "o", "-", "Output file path (use '-' for stdout)")
	fl.BoolVar(&f.noTotal, "no-total", false, "Omit the total component count after compressed output")
	fl.IntVar(&f.capacity, "capacity", 0, "Maximum number of components to record (0 = unlimited)")
	fl.StringVar(&f.config, "config", "", "Path to an HCL settings file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug diagnostics on stderr")
	fl.StringVar(&f.logFormat, "log-format", "text", "Diagnostic log format: text or json")
}

// netlistArg requires exactly one argument ending in the netlist extension.
func netlistArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one netlist file (*%s), got %d arguments", errUsage, scanner.NetlistExt, len(args))
	}
	if !scanner.HasNetlistExt(args[0]) {
		return fmt.Errorf("%w: %q is not a netlist file (*%s)", errUsage, args[0], scanner.NetlistExt)
	}
	return nil
}

// resolveSettings layers defaults, the config file and explicitly set flags.
func resolveSettings(cmd *cobra.Command, f *bomFlags) (config.Settings, error) {
	s := config.Defaults()

	if f.config != "" {
		cfg, err := config.LoadFile(f.config)
		if err != nil {
			return s, err
		}
		s = cfg.Apply(s)
	}

	fl := cmd.Flags()
	if fl.Changed("compressed") {
		s.Compressed = f.compressed
	}
	if fl.Changed("linefeed") {
		s.LineFeed = f.linefeed
	}
	if fl.Changed("wrap") {
		s.WrapEvery = f.wrap
	}
	if fl.Changed("parser") {
		s.Parser = f.parser
	}
	if fl.Changed("format") {
		s.Format = f.format
	}
	if fl.Changed("no-total") {
		s.Total = !f.noTotal
	}
	if fl.Changed("capacity") {
		s.Capacity = f.capacity
	}
	if fl.Changed("log-format") {
		s.LogFormat = f.logFormat
	}
	if f.verbose {
		s.LogLevel = "debug"
	}

	if s.WrapEvery <= 0 {
		return s, fmt.Errorf("--wrap must be positive, got %d", s.WrapEvery)
	}
	if s.Capacity < 0 {
		return s, fmt.Errorf("--capacity must not be negative, got %d", s.Capacity)
	}
	if s.Format == "cdx" {
		s.Format = "cyclonedx"
	}
	if !slices.Contains(config.Formats, s.Format) {
		return s, fmt.Errorf("unsupported format %q (supported: %s)", s.Format, strings.Join(config.Formats, ", "))
	}
	return s, nil
}

func runBom(cmd *cobra.Command, path string, f *bomFlags) error {
	s, err := resolveSettings(cmd, f)
	if err != nil {
		return err
	}

	logger := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
	logger.Debug("settings resolved", "parser", s.Parser, "format", s.Format,
		"compressed", s.Compressed, "linefeed", s.LineFeed, "capacity", s.Capacity)

	sc := scanner.New(s.Parser, logger)
	sc.Capacity = s.Capacity
	result, err := sc.ScanFile(path)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	logger.Info("netlist scanned", "file", path, "components", len(result.Components))

	opts := output.Options{
		Compressed: s.Compressed,
		LineFeed:   s.LineFeed,
		WrapEvery:  s.WrapEvery,
		Total:      s.Total,
	}

	w, closeOut := cmd.OutOrStdout(), func() error { return nil }
	if f.output != "-" {
		if w, closeOut, err = output.Create(f.output); err != nil {
			return err
		}
	}

	switch s.Format {
	case "tsv":
		err = output.WriteTSV(w, result, opts)
	case "json":
		err = output.WriteJSON(w, result, opts)
	case "cyclonedx":
		err = output.WriteCycloneDX(w, result, toolVersion)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if f.output != "-" {
		logger.Info("BOM written", "output", f.output)
	}
	return nil
}
