package presetenv

import (
	"encoding/json"
	"testing"
)

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{KindSyntax, KindModule, KindBuiltIns} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != k {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, k)
		}
	}

	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}

func TestPluginEntry_JSON(t *testing.T) {
	entry := PluginEntry{
		Transform: Transform{Name: "transform-classes", Kind: KindSyntax, Package: "@babel/plugin-transform-classes"},
		Options:   PluginOptions{Loose: true},
	}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"transform-classes","kind":"syntax","package":"@babel/plugin-transform-classes","options":{"loose":true}}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestBuiltInsMode_String(t *testing.T) {
	tests := map[BuiltInsMode]string{
		BuiltInsOff:     "false",
		BuiltInsEntry:   "entry",
		BuiltInsUsage:   "usage",
		BuiltInsMode(5): "BuiltInsMode(5)",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
