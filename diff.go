package presetenv

import (
	"maps"
	"slices"

	"github.com/liangklfang/babel-preset-env/version"
)

// TargetChange describes a target environment whose version differs
// between two results. Old or New is empty when the environment was added
// or removed.
type TargetChange struct {
	Environment string `json:"environment"`
	Old         string `json:"old,omitempty"`
	New         string `json:"new,omitempty"`
}

// Raised reports whether the target moved to a newer version.
func (c TargetChange) Raised() bool {
	if c.Old == "" || c.New == "" {
		return false
	}
	gt, err := version.GreaterThan(c.New, c.Old)
	return err == nil && gt
}

// ResultDiff describes the differences between two resolutions.
//
// Raising a target usually removes transformations; lowering it adds them.
//
// Example usage:
//
//	before, _ := r.Resolve(presetenv.WithTargets(targets.Map{"chrome": "49.0.0"}))
//	after, _ := r.Resolve(presetenv.WithTargets(targets.Map{"chrome": "60.0.0"}))
//	diff := presetenv.DiffResults(before, after)
//	fmt.Printf("%d transformations dropped\n", len(diff.RemovedTransformations))
type ResultDiff struct {
	// AddedTransformations are selected in new but not in old.
	AddedTransformations []string `json:"added_transformations,omitempty"`

	// RemovedTransformations are selected in old but not in new.
	RemovedTransformations []string `json:"removed_transformations,omitempty"`

	// AddedPolyfills are selected in new but not in old.
	AddedPolyfills []string `json:"added_polyfills,omitempty"`

	// RemovedPolyfills are selected in old but not in new.
	RemovedPolyfills []string `json:"removed_polyfills,omitempty"`

	// Targets lists the environments whose target changed.
	Targets []TargetChange `json:"targets,omitempty"`
}

// IsEmpty returns true if there are no differences between the results.
func (d *ResultDiff) IsEmpty() bool {
	return d.TotalChanges() == 0
}

// TotalChanges returns the number of added and removed items plus target
// changes.
func (d *ResultDiff) TotalChanges() int {
	return len(d.AddedTransformations) + len(d.RemovedTransformations) +
		len(d.AddedPolyfills) + len(d.RemovedPolyfills) + len(d.Targets)
}

// DiffResults computes the difference between two results. A nil result is
// treated as empty. Every list in the diff is sorted.
func DiffResults(old, new *Result) *ResultDiff {
	if old == nil {
		old = &Result{}
	}
	if new == nil {
		new = &Result{}
	}

	diff := &ResultDiff{}
	diff.AddedTransformations, diff.RemovedTransformations = diffNames(old.Transformations, new.Transformations)
	diff.AddedPolyfills, diff.RemovedPolyfills = diffNames(old.Polyfills, new.Polyfills)

	envs := make(map[string]struct{})
	for env := range maps.Keys(old.Targets) {
		envs[env] = struct{}{}
	}
	for env := range maps.Keys(new.Targets) {
		envs[env] = struct{}{}
	}
	for _, env := range slices.Sorted(maps.Keys(envs)) {
		if o, n := old.Targets[env], new.Targets[env]; o != n {
			diff.Targets = append(diff.Targets, TargetChange{Environment: env, Old: o, New: n})
		}
	}

	return diff
}

// diffNames returns the sorted names only in new and only in old.
func diffNames(old, new []string) (added, removed []string) {
	oldSet := NewItemSet(old...)
	newSet := NewItemSet(new...)

	for _, name := range new {
		if !oldSet.Has(name) {
			added = append(added, name)
		}
	}
	for _, name := range old {
		if !newSet.Has(name) {
			removed = append(removed, name)
		}
	}

	slices.Sort(added)
	slices.Sort(removed)
	return slices.Compact(added), slices.Compact(removed)
}
