// Package scanner reads a netlist file with the selected parser and assembles
// the result handed to grouping and rendering.
package scanner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/StinkyLord/netlist-bom/internal/model"
	"github.com/StinkyLord/netlist-bom/internal/netlist"
)

// ErrUnknownParser is returned for a parser name that is not registered.
var ErrUnknownParser = errors.New("unknown parser")

// NetlistExt is the file extension accepted as input.
const NetlistExt = ".net"

// Parser is the interface every netlist parser must implement.
type Parser interface {
	Name() string
	Parse(r io.Reader) ([]*model.Component, error)
}

// ParserNames lists the registered parsers, default first.
var ParserNames = []string{"line", "tree"}

// Result holds the parsed component list and where it came from.
type Result struct {
	Path       string
	Parser     string
	Components []*model.Component
}

// Scanner runs one parser against a netlist file.
type Scanner struct {
	// Parser selects the parser by name; empty means "line".
	Parser string

	// Capacity caps the line parser's record count; 0 means unbounded.
	Capacity int

	Logger *slog.Logger
}

// New creates a Scanner.
func New(parser string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{Parser: parser, Logger: logger}
}

// HasNetlistExt reports whether path carries the netlist file extension.
func HasNetlistExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), NetlistExt)
}

// NewParser returns the registered parser called name.
func (s *Scanner) NewParser(name string) (Parser, error) {
	switch name {
	case "", "line":
		return &netlist.LineParser{Capacity: s.Capacity, Logger: s.Logger}, nil
	case "tree":
		return netlist.NewTreeParser(s.Logger)
	default:
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownParser, name, strings.Join(ParserNames, ", "))
	}
}

// ScanFile parses the netlist at path. Any I/O error is fatal.
func (s *Scanner) ScanFile(path string) (*Result, error) {
	p, err := s.NewParser(s.Parser)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open netlist: %w", err)
	}
	defer f.Close()

	res, err := s.scan(p, f)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Scan parses a netlist from r.
func (s *Scanner) Scan(r io.Reader) (*Result, error) {
	p, err := s.NewParser(s.Parser)
	if err != nil {
		return nil, err
	}
	return s.scan(p, r)
}

func (s *Scanner) scan(p Parser, r io.Reader) (*Result, error) {
	s.Logger.Debug("parsing netlist", "parser", p.Name())

	comps, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s parser failed: %w", p.Name(), err)
	}

	s.Logger.Debug("netlist parsed", "parser", p.Name(), "components", len(comps))
	return &Result{Parser: p.Name(), Components: comps}, nil
}
