package extract

import (
	"errors"
	"testing"
)

func TestField(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		startTag string
		endTag   string
		want     string
		wantErr  error
	}{
		{name: "plain", line: "    (comp (ref R101)", startTag: "(ref ", endTag: ")", want: "R101"},
		{name: "value", line: "      (value 10k)", startTag: "(value ", endTag: ")", want: "10k"},
		{name: "quoted", line: `      (value "10 kOhm")`, startTag: "(value ", endTag: ")", want: "10 kOhm"},
		{name: "quoted with paren inside", line: `(value "1k (1%)")`, startTag: "(value ", endTag: ")", want: "1k (1%)"},
		{name: "missing end tag", line: "(footprint bat-mon-sys:Polyfuse", startTag: "(footprint ", endTag: ")", want: "bat-mon-sys:Polyfuse"},
		{name: "first occurrence wins", line: "(libsource (lib device) (lib other))", startTag: "(lib ", endTag: ")", want: "device"},
		{name: "nested part", line: "      (libsource (lib device) (part FUSE))", startTag: "(part ", endTag: ")", want: "FUSE"},
		{name: "unterminated quote", line: `(value "abc`, startTag: "(value ", endTag: ")", want: "abc"},
		{name: "text after closing quote", line: `(value "a"b)`, startTag: "(value ", endTag: ")", want: "ab"},
		{name: "empty value", line: "(value )", startTag: "(value ", endTag: ")", want: ""},
		{name: "tag absent", line: "(tstamp 5420FC1D)", startTag: "(value ", endTag: ")", wantErr: ErrTagNotFound},
		{name: "tag at end of line", line: "      (value ", startTag: "(value ", endTag: ")", wantErr: ErrStartOutOfRange},
		{name: "empty line", line: "", startTag: "(ref ", endTag: ")", wantErr: ErrTagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Field(tt.line, tt.startTag, tt.endTag)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Field(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Field(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
