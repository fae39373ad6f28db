// Package extract pulls tag-delimited values out of single netlist lines.
//
// It does not understand S-expressions. A value is whatever sits between the
// first occurrence of a start tag and the next end tag on the same line, with
// a single quoted literal honoured so that an end tag inside quotes does not
// cut the value short.
package extract

import (
	"errors"
	"strings"
)

var (
	// ErrTagNotFound means the start tag does not occur in the line. The
	// destination field must be left untouched.
	ErrTagNotFound = errors.New("start tag not found")

	// ErrStartOutOfRange means the start tag sits at the very end of the line
	// so there is no room for a value.
	ErrStartOutOfRange = errors.New("value start beyond end of line")
)

// Field returns the text between startTag and endTag in line.
//
// Example:
//
//	line     = `(value "10 kOhm")`
//	startTag = `(value `
//	endTag   = `)`
//	result   = `10 kOhm`
//
// When endTag is missing the value runs to the end of the line.
func Field(line, startTag, endTag string) (string, error) {
	idx := strings.Index(line, startTag)
	if idx < 0 {
		return "", ErrTagNotFound
	}

	start := idx + len(startTag)
	if start >= len(line) {
		return "", ErrStartOutOfRange
	}

	// search for endTag begins here; moved past a quoted literal if present
	searchFrom := start
	closeQuote := -1
	if line[start] == '"' {
		if q := strings.IndexByte(line[start+1:], '"'); q >= 0 {
			closeQuote = start + 1 + q
			searchFrom = closeQuote + 1
		} else {
			searchFrom = len(line)
		}
	}

	end := len(line)
	if e := strings.Index(line[searchFrom:], endTag); e >= 0 && endTag != "" {
		end = searchFrom + e
	}

	if line[start] != '"' {
		return line[start:end], nil
	}
	if closeQuote < 0 {
		// unterminated literal: drop the opening quote only
		return line[start+1 : end], nil
	}
	return line[start+1:closeQuote] + line[closeQuote+1:end], nil
}
