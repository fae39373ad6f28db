// Package designators maps reference designator prefixes to component
// categories (R -> resistor, C -> capacitor, ...).
//
// The table follows the common IEEE 315 / IPC usage seen in KiCad libraries.
// It is informational only and never changes how records are grouped.
package designators

import "strings"

// Category describes one family of reference designators.
type Category struct {
	Name        string   // Canonical category name
	Prefixes    []string // Designator prefixes, upper case
	Description string
}

// KnownCategories is the built-in designator database.
var KnownCategories = []Category{
	{Name: "resistor", Prefixes: []string{"R"}, Description: "Resistor"},
	{Name: "resistor-network", Prefixes: []string{"RN", "RA"}, Description: "Resistor network / array"},
	{Name: "potentiometer", Prefixes: []string{"RV", "VR"}, Description: "Variable resistor"},
	{Name: "capacitor", Prefixes: []string{"C"}, Description: "Capacitor"},
	{Name: "inductor", Prefixes: []string{"L"}, Description: "Inductor or coil"},
	{Name: "ferrite-bead", Prefixes: []string{"FB"}, Description: "Ferrite bead"},
	{Name: "diode", Prefixes: []string{"D", "CR"}, Description: "Diode"},
	{Name: "led", Prefixes: []string{"LED"}, Description: "Light emitting diode"},
	{Name: "transistor", Prefixes: []string{"Q"}, Description: "Transistor"},
	{Name: "integrated-circuit", Prefixes: []string{"U", "IC"}, Description: "Integrated circuit"},
	{Name: "connector", Prefixes: []string{"J", "P", "CN", "X"}, Description: "Connector, plug or socket"},
	{Name: "jumper", Prefixes: []string{"JP"}, Description: "Jumper or solder bridge"},
	{Name: "fuse", Prefixes: []string{"F"}, Description: "Fuse or polyfuse"},
	{Name: "switch", Prefixes: []string{"SW", "S"}, Description: "Switch or push button"},
	{Name: "relay", Prefixes: []string{"K"}, Description: "Relay or contactor"},
	{Name: "crystal", Prefixes: []string{"Y", "XTAL"}, Description: "Crystal or resonator"},
	{Name: "transformer", Prefixes: []string{"T", "TR"}, Description: "Transformer"},
	{Name: "battery", Prefixes: []string{"BT", "BAT"}, Description: "Battery or cell holder"},
	{Name: "test-point", Prefixes: []string{"TP"}, Description: "Test point"},
	{Name: "mounting-hole", Prefixes: []string{"H", "MH"}, Description: "Mounting hole"},
	{Name: "fiducial", Prefixes: []string{"FID"}, Description: "Fiducial mark"},
	{Name: "buzzer", Prefixes: []string{"BZ", "LS"}, Description: "Buzzer or loudspeaker"},
}

// byPrefix is built once from KnownCategories.
var byPrefix = func() map[string]*Category {
	m := map[string]*Category{}
	for i := range KnownCategories {
		c := &KnownCategories[i]
		for _, p := range c.Prefixes {
			m[p] = c
		}
	}
	return m
}()

// Prefix returns the letter part of a reference designator, upper cased,
// with trailing digits and any unit suffix ("U2A" -> "U") removed.
func Prefix(ref string) string {
	end := 0
	for end < len(ref) {
		b := ref[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
			end++
			continue
		}
		break
	}
	return strings.ToUpper(ref[:end])
}

// Match returns the Category for a reference designator, or nil when the
// prefix is unknown. The exact prefix wins; otherwise the longest known
// leading prefix is used ("LEDS1" -> led, "RX1" -> resistor).
func Match(ref string) *Category {
	p := Prefix(ref)
	if p == "" {
		return nil
	}
	for n := len(p); n > 0; n-- {
		if c, ok := byPrefix[p[:n]]; ok {
			return c
		}
	}
	return nil
}

// Name returns the category name for ref, or "unknown".
func Name(ref string) string {
	if c := Match(ref); c != nil {
		return c.Name
	}
	return "unknown"
}
