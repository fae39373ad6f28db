package output

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/StinkyLord/netlist-bom/internal/bom"
	"github.com/StinkyLord/netlist-bom/internal/designators"
	"github.com/StinkyLord/netlist-bom/internal/scanner"
)

// ---- CycloneDX 1.4 JSON schema types ----

type cdxBOM struct {
	BOMFormat    string         `json:"bomFormat"`
	SpecVersion  string         `json:"specVersion"`
	Version      int            `json:"version"`
	SerialNumber string         `json:"serialNumber"`
	Metadata     cdxMetadata    `json:"metadata"`
	Components   []cdxComponent `json:"components"`
}

type cdxMetadata struct {
	Timestamp  string        `json:"timestamp"`
	Tools      []cdxTool     `json:"tools"`
	Properties []cdxProperty `json:"properties,omitempty"`
}

type cdxTool struct {
	Vendor  string `json:"vendor"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// cdxComponent is one hardware BOM line. Name is the symbol part, Version
// carries the component value since CycloneDX has no dedicated field for it.
type cdxComponent struct {
	Type        string        `json:"type"`
	BOMRef      string        `json:"bom-ref"`
	Group       string        `json:"group,omitempty"`
	Name        string        `json:"name"`
	Version     string        `json:"version,omitempty"`
	Description string        `json:"description,omitempty"`
	Properties  []cdxProperty `json:"properties,omitempty"`
}

type cdxProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToolName identifies this program in generated documents.
const ToolName = "netlist-bom"

// WriteCycloneDX serialises result as a CycloneDX 1.4 hardware BOM. Components
// are always grouped; each group becomes one "device" component with its
// quantity and designators as properties.
func WriteCycloneDX(w io.Writer, result *scanner.Result, toolVersion string) error {
	return writeJSON(w, buildCycloneDX(result, toolVersion))
}

func buildCycloneDX(result *scanner.Result, toolVersion string) cdxBOM {
	groups := bom.GroupComponents(result.Components)

	cdxComps := make([]cdxComponent, 0, len(groups))
	for i, g := range groups {
		comp := cdxComponent{
			Type:    "device",
			BOMRef:  "bom-line-" + strconv.Itoa(i+1),
			Group:   g.Library,
			Name:    g.Part,
			Version: g.Value,
		}
		if cat := designators.Match(firstRef(g)); cat != nil {
			comp.Description = cat.Description
		}

		comp.Properties = append(comp.Properties,
			cdxProperty{Name: "bom:quantity", Value: strconv.Itoa(g.Count)},
			cdxProperty{Name: "bom:references", Value: strings.Join(g.References, " ")},
			cdxProperty{Name: "bom:category", Value: groupCategory(g)},
		)
		if g.Footprint != "" {
			comp.Properties = append(comp.Properties, cdxProperty{
				Name:  "bom:footprint",
				Value: g.Footprint,
			})
		}
		if g.Value != "" {
			comp.Properties = append(comp.Properties, cdxProperty{
				Name:  "bom:value",
				Value: g.Value,
			})
		}

		cdxComps = append(cdxComps, comp)
	}

	meta := cdxMetadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Tools: []cdxTool{
			{
				Vendor:  "StinkyLord",
				Name:    ToolName,
				Version: toolVersion,
			},
		},
		Properties: []cdxProperty{
			{Name: "bom:parser", Value: result.Parser},
			{Name: "bom:total", Value: strconv.Itoa(bom.Total(groups))},
		},
	}
	if result.Path != "" {
		meta.Properties = append(meta.Properties, cdxProperty{Name: "bom:source", Value: result.Path})
	}

	return cdxBOM{
		BOMFormat:    "CycloneDX",
		SpecVersion:  "1.4",
		Version:      1,
		SerialNumber: "urn:uuid:" + uuid.NewString(),
		Metadata:     meta,
		Components:   cdxComps,
	}
}

func firstRef(g bom.Group) string {
	if len(g.References) == 0 {
		return ""
	}
	return g.References[0]
}
