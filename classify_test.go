package presetenv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsBuiltIn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"es6.promise", true},
		{"es7.array.includes", true},
		{"es2017.object.values", true},
		{"web.timers", true},
		{"web.dom.iterable", true},
		{"transform-arrow-functions", false},
		{"es.promise", false},
		{"es6promise", false},
		{"website.timers", false},
		{"proposal-object-rest-spread", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBuiltIn(tt.name); got != tt.want {
				t.Errorf("IsBuiltIn(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTransformIncludesAndExcludes(t *testing.T) {
	input := []string{"es6.promise", "transform-arrow-functions", "web.timers"}
	got := TransformIncludesAndExcludes(input)

	if diff := cmp.Diff([]string{"es6.promise", "web.timers"}, got.BuiltIns.Items()); diff != "" {
		t.Errorf("BuiltIns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"transform-arrow-functions"}, got.Plugins.Items()); diff != "" {
		t.Errorf("Plugins mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(input, got.All); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformIncludesAndExcludes_Disjoint(t *testing.T) {
	got := TransformIncludesAndExcludes([]string{
		"es6.map", "transform-classes", "es6.map", "web.immediate", "transform-classes",
	})
	for name := range got.Plugins.All() {
		if got.BuiltIns.Has(name) {
			t.Errorf("%q is in both subsets", name)
		}
	}
	if got.Plugins.Len()+got.BuiltIns.Len() != 3 {
		t.Errorf("partition has %d names, want 3", got.Plugins.Len()+got.BuiltIns.Len())
	}
}

func TestTransformIncludesAndExcludes_Empty(t *testing.T) {
	got := TransformIncludesAndExcludes(nil)
	if got.Plugins.Len() != 0 || got.BuiltIns.Len() != 0 {
		t.Errorf("empty input produced %d plugins, %d built-ins", got.Plugins.Len(), got.BuiltIns.Len())
	}
}
