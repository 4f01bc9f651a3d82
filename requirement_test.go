package presetenv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/targets"
)

func TestIsPluginRequired(t *testing.T) {
	tests := []struct {
		name    string
		targets targets.Map
		support catalog.SupportTable
		want    bool
	}{
		{
			name:    "no targets requires everything",
			targets: targets.Map{},
			support: catalog.SupportTable{"chrome": "49"},
			want:    true,
		},
		{
			name:    "no targets and empty support",
			targets: nil,
			support: catalog.SupportTable{},
			want:    true,
		},
		{
			name:    "target newer than support",
			targets: targets.Map{"chrome": "52.0.0"},
			support: catalog.SupportTable{"chrome": "49"},
			want:    false,
		},
		{
			name:    "target equal to support",
			targets: targets.Map{"chrome": "49.0.0"},
			support: catalog.SupportTable{"chrome": "49"},
			want:    false,
		},
		{
			name:    "target older than support",
			targets: targets.Map{"chrome": "48.0.0"},
			support: catalog.SupportTable{"chrome": "49"},
			want:    true,
		},
		{
			name:    "minor version support",
			targets: targets.Map{"node": "6.4.0"},
			support: catalog.SupportTable{"node": "6.5"},
			want:    true,
		},
		{
			name:    "environment missing from support",
			targets: targets.Map{"ie": "11.0.0"},
			support: catalog.SupportTable{"chrome": "49"},
			want:    true,
		},
		{
			name:    "one environment is enough",
			targets: targets.Map{"chrome": "60.0.0", "firefox": "40.0.0"},
			support: catalog.SupportTable{"chrome": "49", "firefox": "45"},
			want:    true,
		},
		{
			name:    "all environments supported",
			targets: targets.Map{"chrome": "60.0.0", "firefox": "50.0.0"},
			support: catalog.SupportTable{"chrome": "49", "firefox": "45", "ie": "11"},
			want:    false,
		},
		{
			name:    "full semver support entry",
			targets: targets.Map{"node": "8.9.4"},
			support: catalog.SupportTable{"node": "8.10.0"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPluginRequired(tt.targets, tt.support)
			if err != nil {
				t.Fatalf("IsPluginRequired() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsPluginRequired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPluginRequired_InvalidTarget(t *testing.T) {
	tests := []struct {
		name    string
		targets targets.Map
		support catalog.SupportTable
	}{
		{"non-numeric", targets.Map{"chrome": "latest"}, catalog.SupportTable{"chrome": "49"}},
		{"partial version", targets.Map{"chrome": "55"}, catalog.SupportTable{"chrome": "49"}},
		{"environment absent from support", targets.Map{"chrome": "latest"}, catalog.SupportTable{}},
		{"empty value", targets.Map{"node": ""}, catalog.SupportTable{"node": "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IsPluginRequired(tt.targets, tt.support)
			if !errors.Is(err, ErrInvalidTargetVersion) {
				t.Fatalf("error = %v, want ErrInvalidTargetVersion", err)
			}
			var tvErr *TargetVersionError
			if !errors.As(err, &tvErr) {
				t.Fatalf("error %T is not a *TargetVersionError", err)
			}
			for env, v := range tt.targets {
				if tvErr.Environment != env || tvErr.Value != v {
					t.Errorf("error names %s=%q, want %s=%q", tvErr.Environment, tvErr.Value, env, v)
				}
			}
		})
	}
}

func TestIsPluginRequired_InvalidCandidate(t *testing.T) {
	_, err := IsPluginRequired(targets.Map{"chrome": "55.0.0"}, catalog.SupportTable{"chrome": "soon"})
	if !errors.Is(err, ErrInvalidCandidateVersion) {
		t.Fatalf("error = %v, want ErrInvalidCandidateVersion", err)
	}
	var cvErr *CandidateVersionError
	if !errors.As(err, &cvErr) {
		t.Fatalf("error %T is not a *CandidateVersionError", err)
	}
	if cvErr.Environment != "chrome" || cvErr.Value != "soon" {
		t.Errorf("error names %s=%q, want chrome=\"soon\"", cvErr.Environment, cvErr.Value)
	}
}

func TestIsPluginRequired_Deterministic(t *testing.T) {
	tgt := targets.Map{"chrome": "50.0.0", "safari": "9.0.0"}
	support := catalog.SupportTable{"chrome": "49", "safari": "10"}
	first, err := IsPluginRequired(tgt, support)
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		got, err := IsPluginRequired(tgt, support)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("IsPluginRequired() changed from %v to %v", first, got)
		}
	}
}

func TestRequiredBy(t *testing.T) {
	tgt := targets.Map{"chrome": "48.0.0", "firefox": "50.0.0", "ie": "11.0.0"}
	support := catalog.SupportTable{"chrome": "49", "firefox": "45"}

	got, err := RequiredBy(tgt, support)
	if err != nil {
		t.Fatalf("RequiredBy() error = %v", err)
	}
	if diff := cmp.Diff([]string{"chrome", "ie"}, got); diff != "" {
		t.Errorf("RequiredBy() mismatch (-want +got):\n%s", diff)
	}

	got, err = RequiredBy(targets.Map{}, support)
	if err != nil {
		t.Fatalf("RequiredBy() error = %v", err)
	}
	if got != nil {
		t.Errorf("RequiredBy(empty) = %v, want nil", got)
	}
}
