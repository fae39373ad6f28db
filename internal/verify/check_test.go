package verify

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func netlistPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..")
	return filepath.Join(root, "testdata", "netlists", name)
}

func TestCheck_CleanNetlist(t *testing.T) {
	r, err := Check(netlistPath("simple.net"), nil)
	require.NoError(t, err)

	if !r.WellFormed {
		t.Errorf("simple.net reported malformed: %s", r.ParseError)
	}
	if r.Expressions == 0 {
		t.Error("Expressions = 0, want at least one")
	}
	if r.LineRecords != 2 || r.TreeRecords != 2 {
		t.Errorf("records line/tree = %d/%d, want 2/2", r.LineRecords, r.TreeRecords)
	}
	if len(r.Mismatches) != 0 {
		t.Errorf("unexpected mismatches: %v", r.Mismatches)
	}
	if !r.OK() {
		t.Errorf("report not OK: %+v", r)
	}
}

// The libparts block after J1 is picked up by the line scanner only.
func TestCheck_FlagsFlatMatching(t *testing.T) {
	r, err := CheckBytes("kicad6.net", []byte(`(export
  (components
    (comp (ref J1)
      (value Conn_01x02)))
  (libparts
    (libpart (lib Connector) (part Conn_01x02))))
`), nil)
	require.NoError(t, err)

	fields := map[string]Mismatch{}
	for _, m := range r.Mismatches {
		fields[m.Field] = m
	}
	lib, ok := fields["library"]
	if !ok {
		t.Fatalf("expected a library mismatch, got %v", r.Mismatches)
	}
	if lib.Line != "Connector" || lib.Tree != "" {
		t.Errorf("library mismatch = %v, want line=Connector tree=\"\"", lib)
	}
	if _, ok := fields["part"]; !ok {
		t.Errorf("expected a part mismatch, got %v", r.Mismatches)
	}
	if r.OK() {
		t.Error("report OK despite mismatches")
	}
}

func TestCheck_TruncatedNetlist(t *testing.T) {
	r, err := Check(netlistPath("truncated.net"), nil)
	require.NoError(t, err)

	if r.WellFormed {
		t.Error("truncated.net reported well-formed")
	}
	if r.ParseError == "" {
		t.Error("ParseError is empty")
	}
	if r.LineRecords != 1 {
		t.Errorf("LineRecords = %d, want 1", r.LineRecords)
	}
	if r.TreeRecords != -1 {
		t.Errorf("TreeRecords = %d, want -1", r.TreeRecords)
	}
}

func TestCheck_DuplicateAndUnknownRefs(t *testing.T) {
	r, err := CheckBytes("dup.net", []byte(`(components
  (comp (ref R1) (value 1k))
  (comp (ref R1) (value 2k))
  (comp (ref AE1) (value ant)))
`), nil)
	require.NoError(t, err)

	require.Equal(t, []string{"R1"}, r.DuplicateRefs)
	require.Equal(t, []string{"AE1"}, r.UnknownRefs)
}

func TestCheck_MissingFile(t *testing.T) {
	if _, err := Check(filepath.Join(t.TempDir(), "none.net"), nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
