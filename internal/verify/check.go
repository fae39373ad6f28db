// Package verify inspects a netlist without producing a BOM: it checks that
// the file is well-formed, cross-checks the line scanner against the tree
// parser, and reports designator problems.
package verify

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/chewxy/sexp"

	"github.com/StinkyLord/netlist-bom/internal/designators"
	"github.com/StinkyLord/netlist-bom/internal/model"
	"github.com/StinkyLord/netlist-bom/internal/netlist"
)

// Mismatch is one field on which the two parsers disagree.
type Mismatch struct {
	Index int    // record index
	Ref   string // reference as seen by the line parser
	Field string
	Line  string // line parser value
	Tree  string // tree parser value
}

func (m Mismatch) String() string {
	return fmt.Sprintf("#%d %s: %s line=%q tree=%q", m.Index, m.Ref, m.Field, m.Line, m.Tree)
}

// Report is the outcome of Check.
type Report struct {
	Path string

	// WellFormed is false when the file is not a balanced S-expression
	// document. ParseError then holds the reason.
	WellFormed  bool
	ParseError  string
	Expressions int // top-level expressions
	Leaves      int // leaf count of all top-level expressions

	LineRecords int
	TreeRecords int // -1 when the tree parser could not run
	Mismatches  []Mismatch

	DuplicateRefs []string
	UnknownRefs   []string // references with an unknown designator prefix
}

// OK reports whether nothing worth flagging was found.
func (r *Report) OK() bool {
	return r.WellFormed && len(r.Mismatches) == 0 && r.LineRecords == r.TreeRecords &&
		len(r.DuplicateRefs) == 0
}

// Check runs every inspection against the file at path. Only I/O errors are
// returned; everything else ends up in the report.
func Check(path string, logger *slog.Logger) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read netlist: %w", err)
	}
	return CheckBytes(path, data, logger)
}

// CheckBytes is Check on in-memory content.
func CheckBytes(path string, data []byte, logger *slog.Logger) (*Report, error) {
	r := &Report{Path: path, TreeRecords: -1}

	exprs, err := sexp.ParseString(string(data))
	if err != nil {
		r.ParseError = err.Error()
	} else {
		r.WellFormed = true
		r.Expressions = len(exprs)
		for _, e := range exprs {
			if e.IsLeaf() {
				r.Leaves++
			} else {
				r.Leaves += e.LeafCount()
			}
		}
	}

	lineRecs, err := (&netlist.LineParser{Logger: logger}).Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("line parser failed: %w", err)
	}
	r.LineRecords = len(lineRecs)

	tp, err := netlist.NewTreeParser(logger)
	if err != nil {
		return nil, err
	}
	treeRecs, err := tp.Parse(bytes.NewReader(data))
	if err != nil {
		if logger != nil {
			logger.Warn("tree parser failed, skipping cross-check", "err", err)
		}
		if r.ParseError == "" {
			r.ParseError = err.Error()
			r.WellFormed = false
		}
	} else {
		r.TreeRecords = len(treeRecs)
		r.Mismatches = compare(lineRecs, treeRecs)
	}

	r.DuplicateRefs, r.UnknownRefs = inspectRefs(lineRecs)
	return r, nil
}

// compare lines records up by position and lists the differing fields.
func compare(line, tree []*model.Component) []Mismatch {
	var out []Mismatch
	n := min(len(line), len(tree))
	for i := 0; i < n; i++ {
		l, t := line[i], tree[i]
		for _, f := range []struct {
			name string
			a, b string
		}{
			{"reference", l.Reference, t.Reference},
			{"value", l.Value, t.Value},
			{"footprint", l.Footprint, t.Footprint},
			{"library", l.Library, t.Library},
			{"part", l.Part, t.Part},
		} {
			if f.a != f.b {
				out = append(out, Mismatch{Index: i, Ref: l.Reference, Field: f.name, Line: f.a, Tree: f.b})
			}
		}
	}
	return out
}

func inspectRefs(recs []*model.Component) (dups, unknown []string) {
	seen := map[string]int{}
	for _, c := range recs {
		if c.Reference == "" {
			continue
		}
		seen[c.Reference]++
		if seen[c.Reference] == 2 {
			dups = append(dups, c.Reference)
		}
		if seen[c.Reference] == 1 && designators.Match(c.Reference) == nil {
			unknown = append(unknown, c.Reference)
		}
	}
	return dups, unknown
}
