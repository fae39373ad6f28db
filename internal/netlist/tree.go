package netlist

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/StinkyLord/netlist-bom/internal/model"
)

// sexpLexer tokenizes netlist S-expressions.
var sexpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Atom", Pattern: `[^\s()"]+`},
})

// Document is a sequence of top-level expressions.
type Document struct {
	Nodes []*Node `parser:"@@*"`
}

// Node is either a nested list or a single atom.
type Node struct {
	List *List   `parser:"  @@"`
	Atom *string `parser:"| @( Atom | String )"`
}

// List is a parenthesized expression. Head holds the leading atom, if any.
// Example: (libsource (lib device) (part R)) -> Head "libsource", two Items.
type List struct {
	Pos   lexer.Position
	Head  string  `parser:"LParen @( Atom | String )?"`
	Items []*Node `parser:"@@* RParen"`
}

// child returns the first direct child list with the given head.
func (l *List) child(head string) *List {
	for _, n := range l.Items {
		if n.List != nil && n.List.Head == head {
			return n.List
		}
	}
	return nil
}

// text returns the first atom of the first direct child list named head.
func (l *List) text(head string) string {
	c := l.child(head)
	if c == nil {
		return ""
	}
	for _, n := range c.Items {
		if n.Atom != nil {
			return *n.Atom
		}
	}
	return ""
}

// TreeParser reads components from a fully parsed S-expression tree.
type TreeParser struct {
	Logger *slog.Logger

	parser *participle.Parser[Document]
}

// NewTreeParser builds the grammar.
func NewTreeParser(logger *slog.Logger) (*TreeParser, error) {
	p, err := participle.Build[Document](
		participle.Lexer(sexpLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build netlist grammar: %w", err)
	}
	return &TreeParser{Logger: logger, parser: p}, nil
}

func (p *TreeParser) Name() string { return "tree" }

// Parse parses r as S-expressions and collects every (comp ...) list in
// document order. Fields are read only from their own block, so a (value ...)
// inside a (property ...) sub-block is not taken for the component value.
func (p *TreeParser) Parse(r io.Reader) ([]*model.Component, error) {
	doc, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	var comps []*model.Component
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.List == nil {
			return
		}
		if n.List.Head == "comp" {
			comps = append(comps, componentFromList(n.List))
			if p.Logger != nil {
				p.Logger.Debug("component block", "line", n.List.Pos.Line, "ref", comps[len(comps)-1].Reference)
			}
			return
		}
		for _, c := range n.List.Items {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return comps, nil
}

func componentFromList(l *List) *model.Component {
	c := &model.Component{
		Reference: l.text("ref"),
		Value:     l.text("value"),
		Footprint: l.text("footprint"),
	}
	if src := l.child("libsource"); src != nil {
		c.Library = src.text("lib")
		c.Part = src.text("part")
	}
	return c
}
