package bom

import "strings"

// TrailingDigits returns the length of the decimal digit run at the end of ref.
func TrailingDigits(ref string) int {
	n := 0
	for i := len(ref) - 1; i >= 0 && ref[i] >= '0' && ref[i] <= '9'; i-- {
		n++
	}
	return n
}

// PadReference left-pads the trailing digit run of ref with zeros until it is
// digits long. A reference without trailing digits gets the zeros appended:
//
//	PadReference("R9", 3)  == "R009"
//	PadReference("R101", 3) == "R101"
//	PadReference("TP", 2)  == "TP00"
func PadReference(ref string, digits int) string {
	dc := TrailingDigits(ref)
	if dc >= digits {
		return ref
	}
	cut := len(ref) - dc
	return ref[:cut] + strings.Repeat("0", digits-dc) + ref[cut:]
}

// NaturalSort orders refs in place so that numeric suffixes compare by value:
// R9 sorts before R10. It is a plain exchange sort over the padded forms.
func NaturalSort(refs []string) {
	maxDigits := 0
	for _, r := range refs {
		if d := TrailingDigits(r); d > maxDigits {
			maxDigits = d
		}
	}

	padded := make([]string, len(refs))
	for i, r := range refs {
		padded[i] = PadReference(r, maxDigits)
	}

	for i := 0; i < len(refs); i++ {
		for j := 0; j < len(refs)-1; j++ {
			if padded[j] > padded[j+1] {
				padded[j], padded[j+1] = padded[j+1], padded[j]
				refs[j], refs[j+1] = refs[j+1], refs[j]
			}
		}
	}
}
