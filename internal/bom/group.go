// Package bom compresses a component list into BOM lines.
package bom

import "github.com/StinkyLord/netlist-bom/internal/model"

// Group is one compressed BOM line: every component sharing the same part,
// value and footprint. Exemplar fields come from the first member.
type Group struct {
	Count      int
	References []string // natural-sorted
	Members    []int    // indices into the source record list, in source order
	Value      string
	Footprint  string
	Library    string
	Part       string
}

// GroupComponents partitions records by model.GroupKey. Groups are returned in
// the order their first member appears in records, and every record belongs to
// exactly one group.
func GroupComponents(records []*model.Component) []Group {
	used := make([]bool, len(records))
	var groups []Group

	for i, first := range records {
		if used[i] {
			continue
		}
		used[i] = true
		key := first.Key()

		g := Group{
			Members:   []int{i},
			Value:     first.Value,
			Footprint: first.Footprint,
			Library:   first.Library,
			Part:      first.Part,
		}
		for j := i + 1; j < len(records); j++ {
			if !used[j] && records[j].Key() == key {
				used[j] = true
				g.Members = append(g.Members, j)
			}
		}

		g.Count = len(g.Members)
		g.References = make([]string, 0, g.Count)
		for _, m := range g.Members {
			g.References = append(g.References, records[m].Reference)
		}
		NaturalSort(g.References)

		groups = append(groups, g)
	}
	return groups
}

// Total returns the number of records covered by groups.
func Total(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += g.Count
	}
	return n
}
