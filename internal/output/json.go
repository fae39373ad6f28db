package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/StinkyLord/netlist-bom/internal/bom"
	"github.com/StinkyLord/netlist-bom/internal/designators"
	"github.com/StinkyLord/netlist-bom/internal/scanner"
)

// jsonRecord is one component in the flat JSON listing.
type jsonRecord struct {
	ID        int    `json:"id"`
	Reference string `json:"reference"`
	Value     string `json:"value"`
	Footprint string `json:"footprint"`
	Library   string `json:"library"`
	Part      string `json:"part"`
	Category  string `json:"category"`
}

// jsonGroup is one compressed BOM line.
type jsonGroup struct {
	Count      int      `json:"count"`
	References []string `json:"references"`
	Value      string   `json:"value"`
	Footprint  string   `json:"footprint"`
	Library    string   `json:"library"`
	Part       string   `json:"part"`
	Category   string   `json:"category"`
}

// jsonReport is the document written by WriteJSON.
type jsonReport struct {
	Source     string       `json:"source,omitempty"`
	Parser     string       `json:"parser"`
	Total      int          `json:"total"`
	Components []jsonRecord `json:"components,omitempty"`
	Groups     []jsonGroup  `json:"groups,omitempty"`
}

// WriteJSON serialises result as indented JSON. With opts.Compressed the
// report carries groups, otherwise the flat component list.
//
// Example output (compressed):
//
//	{
//	  "parser": "line",
//	  "total": 2,
//	  "groups": [
//	    {
//	      "count": 2,
//	      "references": ["R1", "R2"],
//	      "value": "10k",
//	      "footprint": "0805",
//	      "library": "device",
//	      "part": "R",
//	      "category": "resistor"
//	    }
//	  ]
//	}
func WriteJSON(w io.Writer, result *scanner.Result, opts Options) error {
	report := jsonReport{
		Source: result.Path,
		Parser: result.Parser,
		Total:  len(result.Components),
	}

	if opts.Compressed {
		groups := bom.GroupComponents(result.Components)
		report.Groups = make([]jsonGroup, 0, len(groups))
		for _, g := range groups {
			report.Groups = append(report.Groups, jsonGroup{
				Count:      g.Count,
				References: g.References,
				Value:      g.Value,
				Footprint:  g.Footprint,
				Library:    g.Library,
				Part:       g.Part,
				Category:   groupCategory(g),
			})
		}
	} else {
		report.Components = make([]jsonRecord, 0, len(result.Components))
		for i, c := range result.Components {
			report.Components = append(report.Components, jsonRecord{
				ID:        i,
				Reference: c.Reference,
				Value:     c.Value,
				Footprint: c.Footprint,
				Library:   c.Library,
				Part:      c.Part,
				Category:  designators.Name(c.Reference),
			})
		}
	}

	return writeJSON(w, report)
}

// groupCategory names the category of the group's first reference.
func groupCategory(g bom.Group) string {
	if len(g.References) == 0 {
		return "unknown"
	}
	return designators.Name(g.References[0])
}

// writeJSON marshals v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}
