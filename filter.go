package presetenv

import (
	"fmt"

	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/targets"
)

// FilterItems selects the items of list required for t.
//
// The steps run in this order, each able to add to the result:
//  1. Every catalog entry not in excludes for which IsPluginRequired holds.
//  2. Every member of defaults not in excludes. Defaults are not checked
//     against t.
//  3. Every member of includes, even if excluded or unknown to list.
//
// The result keeps that insertion order, so catalog entries appear in
// catalog order. A nil defaults set adds nothing.
func FilterItems(list *catalog.Catalog, includes, excludes *ItemSet, t targets.Map, defaults *ItemSet) (*ItemSet, error) {
	result := NewItemSet()

	for name, support := range list.All() {
		if excludes.Has(name) {
			continue
		}
		required, err := IsPluginRequired(t, support)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if required {
			result.Add(name)
		}
	}

	for name := range defaults.All() {
		if !excludes.Has(name) {
			result.Add(name)
		}
	}

	for name := range includes.All() {
		result.Add(name)
	}

	return result, nil
}
