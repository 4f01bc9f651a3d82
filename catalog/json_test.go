package catalog

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"transform-regenerator": {"chrome": "50", "node": 6},
		"transform-arrow-functions": {"chrome": 47, "electron": 0.36},
		"es6.promise": {}
	}`)

	c, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	wantNames := []string{"transform-regenerator", "transform-arrow-functions", "es6.promise"}
	if diff := cmp.Diff(wantNames, c.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	got, _ := c.Lookup("transform-arrow-functions")
	want := SupportTable{"chrome": "47", "electron": "0.36"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
	}

	empty, ok := c.Lookup("es6.promise")
	if !ok || len(empty) != 0 {
		t.Errorf("Lookup(es6.promise) = %v, %v; want empty table", empty, ok)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an object", `["a"]`},
		{"bad entry", `{"a": "b"}`},
		{"bad version type", `{"a": {"chrome": true}}`},
		{"duplicate", `{"a": {}, "a": {}}`},
		{"truncated", `{"a": {}`},
		{"trailing data", `{"a": {}} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON([]byte(tt.data)); err == nil {
				t.Errorf("ParseJSON(%s) expected error", tt.data)
			}
		})
	}
}

func TestMarshalJSON_Deterministic(t *testing.T) {
	c := MustNew(
		Entry{Name: "b-item", Support: SupportTable{"safari": "10", "chrome": "51"}},
		Entry{Name: "a-item", Support: SupportTable{"node": "6"}},
	)

	got, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"b-item":{"chrome":"51","safari":"10"},"a-item":{"node":"6"}}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}

	reparsed, err := ParseJSON(got)
	if err != nil {
		t.Fatalf("ParseJSON(MarshalJSON()) error = %v", err)
	}
	if diff := cmp.Diff(c.Names(), reparsed.Names()); diff != "" {
		t.Errorf("order lost on reparse (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON_Empty(t *testing.T) {
	got, err := MustNew().MarshalJSON()
	if err != nil || string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s, %v; want {}", got, err)
	}
}

func TestWriteFile(t *testing.T) {
	c := MustNew(Entry{Name: "es6.map", Support: SupportTable{"chrome": "51"}})
	path := filepath.Join(t.TempDir(), "catalog.json")

	if err := c.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	read, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(c.Names(), read.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("}\n")) {
		t.Errorf("WriteTo() output not newline-terminated: %q", buf.String())
	}
}
