// Package netlist turns netlist text into component records.
//
// Two parsers live here. LineParser is the line-oriented substring scanner: it
// has no notion of nesting and attributes any matching field tag to the record
// that is currently open. TreeParser parses the document as S-expressions and
// only reads fields from the places they belong to.
package netlist

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/StinkyLord/netlist-bom/internal/extract"
	"github.com/StinkyLord/netlist-bom/internal/model"
)

// ComponentStart opens a new component block, e.g.
//
//	(comp (ref F101)
const ComponentStart = "(comp (ref "

// endTag closes every field.
const endTag = ")"

// fieldTag pairs a start tag with the component field it fills.
type fieldTag struct {
	start string
	field func(c *model.Component) *string
}

// fieldTags lists the extracted fields in extraction order.
var fieldTags = []fieldTag{
	{"(ref ", func(c *model.Component) *string { return &c.Reference }},
	{"(value ", func(c *model.Component) *string { return &c.Value }},
	{"(footprint ", func(c *model.Component) *string { return &c.Footprint }},
	{"(lib ", func(c *model.Component) *string { return &c.Library }},
	{"(part ", func(c *model.Component) *string { return &c.Part }},
}

// Builder accumulates component records from a stream of lines.
//
// The zero value is ready to use and has no capacity limit.
type Builder struct {
	// Capacity caps the number of records that receive fields. Zero means
	// unbounded. Start markers beyond the cap still advance the cursor.
	Capacity int

	// Logger receives diagnostics. Nil silences them.
	Logger *slog.Logger

	records []*model.Component
	markers int // start markers seen; the active record is markers-1
	line    int
	dropped int
}

// NewBuilder creates a Builder with the given capacity (0 = unbounded).
func NewBuilder(capacity int, logger *slog.Logger) *Builder {
	return &Builder{Capacity: capacity, Logger: logger}
}

// Feed scans one line.
func (b *Builder) Feed(line string) {
	b.line++

	if strings.Contains(line, ComponentStart) {
		b.markers++
		if b.Capacity > 0 && b.markers > b.Capacity {
			b.dropped++
		} else {
			b.records = append(b.records, &model.Component{})
		}
	}

	cursor := b.markers - 1
	if cursor < 0 || cursor >= len(b.records) {
		return
	}

	rec := b.records[cursor]
	for _, ft := range fieldTags {
		dst := ft.field(rec)
		if *dst != "" {
			continue
		}
		v, err := extract.Field(line, ft.start, endTag)
		switch {
		case err == nil:
			*dst = v
		case errors.Is(err, extract.ErrStartOutOfRange):
			b.debug("field tag at end of line", "line", b.line, "tag", ft.start)
		}
	}
}

// Records returns the records built so far in creation order.
// A diagnostic is logged once per call when the capacity was exceeded.
func (b *Builder) Records() []*model.Component {
	if b.dropped > 0 && b.Logger != nil {
		b.Logger.Warn("component capacity exceeded, records dropped",
			"capacity", b.Capacity, "dropped", b.dropped)
	}
	out := make([]*model.Component, len(b.records))
	copy(out, b.records)
	return out
}

// Dropped returns how many start markers found no room under Capacity.
func (b *Builder) Dropped() int { return b.dropped }

func (b *Builder) debug(msg string, args ...any) {
	if b.Logger != nil {
		b.Logger.Debug(msg, args...)
	}
}

// BuildRecords runs a fresh unbounded Builder over lines.
func BuildRecords(lines []string) []*model.Component {
	b := &Builder{}
	for _, l := range lines {
		b.Feed(l)
	}
	return b.Records()
}

// LineParser is the line-oriented substring scanner.
type LineParser struct {
	Capacity int
	Logger   *slog.Logger
}

func (p *LineParser) Name() string { return "line" }

// Parse consumes r to the end and returns every record found. Lines have no
// length limit; only a read error stops the parse.
func (p *LineParser) Parse(r io.Reader) ([]*model.Component, error) {
	b := NewBuilder(p.Capacity, p.Logger)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			b.Feed(strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return b.Records(), nil
}
