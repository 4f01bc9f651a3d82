package presetenv

import (
	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/targets"
	"github.com/liangklfang/babel-preset-env/version"
)

// IsPluginRequired reports whether a candidate with the given support table
// must be kept to run on every environment in t.
//
// Returns true if:
//   - t is empty (no targets means every feature must be assumed missing)
//   - support has no entry for some targeted environment
//   - support's version for some targeted environment is strictly greater
//     than the targeted version
//
// Every target version must be a valid semantic version; otherwise a
// *TargetVersionError is returned. A support version that cannot be
// normalized yields a *CandidateVersionError.
func IsPluginRequired(t targets.Map, support catalog.SupportTable) (bool, error) {
	if len(t) == 0 {
		return true, nil
	}
	envs, err := RequiredBy(t, support)
	if err != nil {
		return false, err
	}
	return len(envs) > 0, nil
}

// RequiredBy returns, in sorted order, the environments of t that lack
// native support for a candidate with the given support table. It applies
// the same rules and validation as IsPluginRequired but returns nil for an
// empty t.
func RequiredBy(t targets.Map, support catalog.SupportTable) ([]string, error) {
	var envs []string
	for _, env := range t.Environments() {
		required, err := requiredFor(env, t[env], support)
		if err != nil {
			return nil, err
		}
		if required {
			envs = append(envs, env)
		}
	}
	return envs, nil
}

func requiredFor(env, targetVersion string, support catalog.SupportTable) (bool, error) {
	if !version.Valid(targetVersion) {
		return false, &TargetVersionError{Environment: env, Value: targetVersion}
	}

	supported, ok := support[env]
	if !ok || supported == "" {
		return true, nil
	}

	lowest, err := version.Semverify(supported)
	if err != nil {
		return false, &CandidateVersionError{Environment: env, Value: supported, Err: err}
	}
	return version.GreaterThan(lowest, targetVersion)
}
