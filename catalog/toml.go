package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a catalog from TOML where every table is an entry:
//
//	["es6.promise"]
//	chrome = "51"
//	node = 6
//
// Entry order follows the order of tables in the document. Write versions
// with a minor component as strings: TOML floats do not keep trailing zeros,
// so 10.10 would read as "10.1".
func ParseTOML(data []byte) (*Catalog, error) {
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog TOML: %w", err)
	}

	var entries []Entry
	for _, key := range meta.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		table, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("entry %q: expected a table, got %T", name, raw[name])
		}
		support, err := supportFromRaw(table)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Support: support})
	}

	return New(entries...)
}
