package designators

import "testing"

func TestPrefix(t *testing.T) {
	tests := map[string]string{
		"R101": "R",
		"U2A":  "U",
		"tp3":  "TP",
		"LED1": "LED",
		"42":   "",
		"":     "",
	}
	for in, want := range tests {
		if got := Prefix(in); got != want {
			t.Errorf("Prefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"R1", "resistor"},
		{"RN3", "resistor-network"},
		{"C101", "capacitor"},
		{"F101", "fuse"},
		{"FB2", "ferrite-bead"},
		{"LED4", "led"},
		{"JP1", "jumper"},
		{"P101", "connector"},
		{"U7", "integrated-circuit"},
		{"TP12", "test-point"},
		{"RX1", "resistor"},
	}
	for _, tt := range tests {
		c := Match(tt.ref)
		if c == nil {
			t.Errorf("Match(%q) = nil, want %q", tt.ref, tt.want)
			continue
		}
		if c.Name != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.ref, c.Name, tt.want)
		}
	}
}

func TestMatch_Unknown(t *testing.T) {
	for _, ref := range []string{"", "123", "#PWR01", "AE1"} {
		if c := Match(ref); c != nil {
			t.Errorf("Match(%q) = %q, want nil", ref, c.Name)
		}
		if Name(ref) != "unknown" {
			t.Errorf("Name(%q) = %q, want unknown", ref, Name(ref))
		}
	}
}
