package presetenv

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/liangklfang/babel-preset-env/targets"
)

func TestDiffResults(t *testing.T) {
	tests := []struct {
		name string
		old  *Result
		new  *Result
		want *ResultDiff
	}{
		{
			name: "both nil",
			want: &ResultDiff{},
		},
		{
			name: "identical",
			old:  &Result{Transformations: []string{"a"}, Targets: targets.Map{"chrome": "55.0.0"}},
			new:  &Result{Transformations: []string{"a"}, Targets: targets.Map{"chrome": "55.0.0"}},
			want: &ResultDiff{},
		},
		{
			name: "raised target drops transformations",
			old: &Result{
				Transformations: []string{"transform-classes", "transform-async-to-generator"},
				Targets:         targets.Map{"chrome": "45.0.0"},
			},
			new: &Result{
				Transformations: []string{"transform-async-to-generator"},
				Targets:         targets.Map{"chrome": "52.0.0"},
			},
			want: &ResultDiff{
				RemovedTransformations: []string{"transform-classes"},
				Targets:                []TargetChange{{Environment: "chrome", Old: "45.0.0", New: "52.0.0"}},
			},
		},
		{
			name: "added environment and polyfills",
			old:  &Result{Polyfills: []string{"web.timers"}, Targets: targets.Map{"node": "8.0.0"}},
			new: &Result{
				Polyfills: []string{"web.timers", "es6.promise", "es6.map"},
				Targets:   targets.Map{"node": "8.0.0", "ie": "11.0.0"},
			},
			want: &ResultDiff{
				AddedPolyfills: []string{"es6.map", "es6.promise"},
				Targets:        []TargetChange{{Environment: "ie", New: "11.0.0"}},
			},
		},
		{
			name: "nil old",
			new:  &Result{Transformations: []string{"b", "a"}},
			want: &ResultDiff{AddedTransformations: []string{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffResults(tt.old, tt.new)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffResults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultDiff_Counts(t *testing.T) {
	d := &ResultDiff{
		AddedTransformations: []string{"a"},
		RemovedPolyfills:     []string{"b", "c"},
		Targets:              []TargetChange{{Environment: "chrome"}},
	}
	if d.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if got := d.TotalChanges(); got != 4 {
		t.Errorf("TotalChanges() = %d, want 4", got)
	}
	if !(&ResultDiff{}).IsEmpty() {
		t.Error("empty diff is not empty")
	}
}

func TestTargetChange_Raised(t *testing.T) {
	tests := []struct {
		change TargetChange
		want   bool
	}{
		{TargetChange{Environment: "chrome", Old: "45.0.0", New: "52.0.0"}, true},
		{TargetChange{Environment: "chrome", Old: "52.0.0", New: "45.0.0"}, false},
		{TargetChange{Environment: "chrome", New: "52.0.0"}, false},
		{TargetChange{Environment: "chrome", Old: "bad", New: "52.0.0"}, false},
	}
	for _, tt := range tests {
		if got := tt.change.Raised(); got != tt.want {
			t.Errorf("%+v.Raised() = %v, want %v", tt.change, got, tt.want)
		}
	}
}

func TestDiffResults_EndToEnd(t *testing.T) {
	r := newTestResolver(t)
	before, err := r.Resolve(WithTargets(targets.Map{"chrome": "49.0.0"}))
	if err != nil {
		t.Fatal(err)
	}
	after, err := r.Resolve(WithTargets(targets.Map{"chrome": "55.0.0"}))
	if err != nil {
		t.Fatal(err)
	}

	d := DiffResults(before, after)
	if len(d.AddedTransformations) != 0 {
		t.Errorf("raising chrome added %v", d.AddedTransformations)
	}
	if !slicesContain(d.RemovedTransformations, RegeneratorTransform) {
		t.Errorf("RemovedTransformations = %v, want transform-regenerator", d.RemovedTransformations)
	}
	if len(d.Targets) != 1 || !d.Targets[0].Raised() {
		t.Errorf("Targets = %+v, want one raised target", d.Targets)
	}
}
