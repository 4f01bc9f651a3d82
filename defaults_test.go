package presetenv

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/liangklfang/babel-preset-env/targets"
)

func TestGetPlatformSpecificDefaultFor(t *testing.T) {
	tests := []struct {
		name    string
		targets targets.Map
		want    []string
	}{
		{"no targets", targets.Map{}, DefaultWebIncludes},
		{"nil targets", nil, DefaultWebIncludes},
		{"browser only", targets.Map{"chrome": "55.0.0"}, DefaultWebIncludes},
		{"browser and node", targets.Map{"chrome": "55.0.0", "node": "8.0.0"}, DefaultWebIncludes},
		{"node only", targets.Map{"node": "8.9.4"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetPlatformSpecificDefaultFor(tt.targets)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("GetPlatformSpecificDefaultFor() = %v, want nil", got.Items())
				}
				return
			}
			if got == nil {
				t.Fatal("GetPlatformSpecificDefaultFor() = nil")
			}
			if diff := cmp.Diff(tt.want, got.Items()); diff != "" {
				t.Errorf("defaults mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
