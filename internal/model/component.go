// Package model defines the internal data structures used by the BOM engine.
package model

// Component is one placed part parsed from a netlist.
type Component struct {
	Reference string // Designator (e.g., "R101")
	Value     string // Free-form value (e.g., "10k", "FUSE")
	Footprint string // Package identifier, may be empty
	Library   string // Source symbol library, may be empty
	Part      string // Symbol name inside the library
}

// GroupKey is the equivalence key used when compressing a BOM.
// Library and Reference are not part of it.
type GroupKey struct {
	Part      string
	Value     string
	Footprint string
}

// Key returns the grouping key of the component. Two components are
// considered the same BOM line when their keys are equal, so
//   - "R1 10k 0805 (device:R)" and "R7 10k 0805 (mylib:R)" share a key
//   - "R1 10k 0805" and "R2 10k 0603" do not
func (c *Component) Key() GroupKey {
	return GroupKey{Part: c.Part, Value: c.Value, Footprint: c.Footprint}
}

// Complete reports whether every field has been filled.
func (c *Component) Complete() bool {
	return c.Reference != "" && c.Value != "" && c.Footprint != "" &&
		c.Library != "" && c.Part != ""
}
