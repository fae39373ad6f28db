package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/StinkyLord/netlist-bom/internal/model"
	"github.com/StinkyLord/netlist-bom/internal/scanner"
)

// makeTestResult builds a synthetic scanner.Result for testing.
// R10, R9 and R101 share part/value/footprint; C2 and C101 do too;
// F101 stands alone.
func makeTestResult() *scanner.Result {
	comps := []*model.Component{
		{Reference: "F101", Value: "RXEF030", Footprint: "bat-mon-sys:Polyfuse-MC33173", Library: "device", Part: "FUSE"},
		{Reference: "R10", Value: "10k", Footprint: "SM0805", Library: "device", Part: "R"},
		{Reference: "R9", Value: "10k", Footprint: "SM0805", Library: "device", Part: "R"},
		{Reference: "C101", Value: "100n", Footprint: "SM0603", Library: "device", Part: "C"},
		{Reference: "R101", Value: "10k", Footprint: "SM0805", Library: "device", Part: "R"},
		{Reference: "C2", Value: "100n", Footprint: "SM0603", Library: "device", Part: "C"},
	}
	return &scanner.Result{
		Path:       "battery.net",
		Parser:     "line",
		Components: comps,
	}
}

// TestCycloneDXSchema verifies that the output is valid JSON and contains the
// required CycloneDX 1.4 top-level fields.
func TestCycloneDXSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCycloneDX(&buf, makeTestResult(), "1.0.0-test"); err != nil {
		t.Fatalf("WriteCycloneDX failed: %v", err)
	}

	// Must be valid JSON
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v\nContent:\n%s", err, buf.String())
	}

	requiredFields := []string{"bomFormat", "specVersion", "version", "serialNumber", "metadata", "components"}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing required field %q in CycloneDX output", field)
		}
	}

	var bomFormat string
	if err := json.Unmarshal(raw["bomFormat"], &bomFormat); err != nil || bomFormat != "CycloneDX" {
		t.Errorf("bomFormat = %q, want %q", bomFormat, "CycloneDX")
	}

	var specVersion string
	if err := json.Unmarshal(raw["specVersion"], &specVersion); err != nil || specVersion != "1.4" {
		t.Errorf("specVersion = %q, want %q", specVersion, "1.4")
	}

	// serialNumber must be urn:uuid:<36 chars>
	var serialNumber string
	if err := json.Unmarshal(raw["serialNumber"], &serialNumber); err != nil || !strings.HasPrefix(serialNumber, "urn:uuid:") {
		t.Errorf("serialNumber = %q, want prefix %q", serialNumber, "urn:uuid:")
	}
	if got := len(strings.TrimPrefix(serialNumber, "urn:uuid:")); got != 36 {
		t.Errorf("serialNumber UUID length = %d, want 36", got)
	}
}

// TestCycloneDXComponents verifies one device component per BOM line.
func TestCycloneDXComponents(t *testing.T) {
	doc := buildCycloneDX(makeTestResult(), "1.0.0-test")

	if len(doc.Components) != 3 {
		t.Fatalf("component count = %d, want 3", len(doc.Components))
	}

	res := doc.Components[1]
	if res.Type != "device" {
		t.Errorf("type = %q, want device", res.Type)
	}
	if res.Name != "R" || res.Version != "10k" || res.Group != "device" {
		t.Errorf("name/version/group = %q/%q/%q, want R/10k/device", res.Name, res.Version, res.Group)
	}

	props := map[string]string{}
	for _, p := range res.Properties {
		props[p.Name] = p.Value
	}
	if props["bom:quantity"] != "3" {
		t.Errorf("bom:quantity = %q, want 3", props["bom:quantity"])
	}
	if props["bom:references"] != "R9 R10 R101" {
		t.Errorf("bom:references = %q, want %q", props["bom:references"], "R9 R10 R101")
	}
	if props["bom:footprint"] != "SM0805" {
		t.Errorf("bom:footprint = %q, want SM0805", props["bom:footprint"])
	}
	if props["bom:category"] != "resistor" {
		t.Errorf("bom:category = %q, want resistor", props["bom:category"])
	}

	seen := map[string]bool{}
	for _, c := range doc.Components {
		if seen[c.BOMRef] {
			t.Errorf("duplicate bom-ref %q", c.BOMRef)
		}
		seen[c.BOMRef] = true
	}
}

// TestCycloneDXMetadata verifies the metadata block.
func TestCycloneDXMetadata(t *testing.T) {
	doc := buildCycloneDX(makeTestResult(), "test-version")

	if doc.Metadata.Timestamp == "" {
		t.Error("metadata.timestamp is empty")
	}
	if len(doc.Metadata.Tools) == 0 {
		t.Fatal("metadata.tools is empty")
	}
	tool := doc.Metadata.Tools[0]
	if tool.Name != ToolName {
		t.Errorf("tool name = %q, want %q", tool.Name, ToolName)
	}
	if tool.Version != "test-version" {
		t.Errorf("tool version = %q, want %q", tool.Version, "test-version")
	}

	props := map[string]string{}
	for _, p := range doc.Metadata.Properties {
		props[p.Name] = p.Value
	}
	if props["bom:total"] != "6" {
		t.Errorf("bom:total = %q, want 6", props["bom:total"])
	}
	if props["bom:source"] != "battery.net" {
		t.Errorf("bom:source = %q, want battery.net", props["bom:source"])
	}
}
