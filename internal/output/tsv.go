// Package output provides BOM serializers.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/StinkyLord/netlist-bom/internal/bom"
	"github.com/StinkyLord/netlist-bom/internal/scanner"
)

// DefaultWrapEvery is the number of references per line when line feeds are
// enabled in compressed output.
const DefaultWrapEvery = 5

// Options controls the tabular rendering.
type Options struct {
	// Compressed groups identical parts into one row.
	Compressed bool

	// LineFeed quotes the reference cell and breaks it every WrapEvery
	// references. Compressed output only.
	LineFeed bool

	// WrapEvery defaults to DefaultWrapEvery when zero or negative.
	WrapEvery int

	// Total appends the record count as the final line. Compressed output only.
	Total bool
}

func (o Options) wrapEvery() int {
	if o.WrapEvery <= 0 {
		return DefaultWrapEvery
	}
	return o.WrapEvery
}

// WriteTSV renders result as tab-separated text.
//
// Uncompressed:
//
//	ID	Reference	Value	Footprint	Library	Part
//	0	R1	10k	0805	device	R
//
// Compressed:
//
//	Count	Reference	Value	Footprint	Library	Part
//	2	R1 R2 	10k	0805	device	R
//	2
func WriteTSV(w io.Writer, result *scanner.Result, opts Options) error {
	bw := bufio.NewWriter(w)

	if opts.Compressed {
		writeCompressed(bw, result, opts)
	} else {
		writeFlat(bw, result)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write TSV output: %w", err)
	}
	return nil
}

func writeFlat(w *bufio.Writer, result *scanner.Result) {
	writeRow(w, "ID", "Reference", "Value", "Footprint", "Library", "Part")
	for i, c := range result.Components {
		writeRow(w, fmt.Sprint(i), c.Reference, c.Value, c.Footprint, c.Library, c.Part)
	}
}

func writeCompressed(w *bufio.Writer, result *scanner.Result, opts Options) {
	writeRow(w, "Count", "Reference", "Value", "Footprint", "Library", "Part")

	groups := bom.GroupComponents(result.Components)
	for _, g := range groups {
		writeRow(w, fmt.Sprint(g.Count), referenceCell(g.References, opts),
			g.Value, g.Footprint, g.Library, g.Part)
	}

	if opts.Total {
		fmt.Fprintf(w, "%d\n", bom.Total(groups))
	}
}

// referenceCell joins refs with a trailing space after each one. With line
// feeds enabled the cell is quoted and broken every opts.WrapEvery refs:
//
//	"R1 R3 R6 R18 R19
//	R34 R35 "
func referenceCell(refs []string, opts Options) string {
	var sb strings.Builder
	wrap := opts.wrapEvery()

	if opts.LineFeed {
		sb.WriteByte('"')
	}
	for i, r := range refs {
		if opts.LineFeed && i != 0 && i%wrap == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r)
		sb.WriteByte(' ')
	}
	if opts.LineFeed {
		sb.WriteByte('"')
	}
	return sb.String()
}

func writeRow(w *bufio.Writer, cells ...string) {
	w.WriteString(strings.Join(cells, "\t"))
	w.WriteByte('\n')
}

// Create opens outputPath for writing; "-" selects stdout. The returned close
// function must be called once writing is done.
func Create(outputPath string) (io.Writer, func() error, error) {
	if outputPath == "" || outputPath == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create output file: %w", err)
	}
	return f, f.Close, nil
}
