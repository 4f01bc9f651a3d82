// Package catalog holds the static feature support tables that drive
// resolution.
//
// A catalog maps an item name (a transformation such as
// "transform-arrow-functions" or a polyfill such as "es6.promise") to a
// SupportTable: for each environment, the first version that implements the
// feature natively. An environment missing from a table has never shipped
// the feature.
//
// Catalogs preserve the order their entries were declared in, since resolved
// transformations are emitted in catalog order. They are read-only once
// built.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/liangklfang/babel-preset-env/version"
)

// SupportTable maps an environment to the first version with native support.
// Versions may be partial ("52", "10.1").
type SupportTable map[string]string

// Environments returns the environments in t in sorted order.
func (t SupportTable) Environments() []string {
	return slices.Sorted(maps.Keys(t))
}

// Entry is one named item of a catalog.
type Entry struct {
	Name    string
	Support SupportTable
}

// Catalog is an ordered, immutable collection of entries keyed by name.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries in the given order. Duplicate names are
// rejected. Support tables are copied.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("catalog entry has empty name")
		}
		if _, dup := c.index[e.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		c.index[e.Name] = len(c.entries)
		c.entries = append(c.entries, Entry{Name: e.Name, Support: maps.Clone(e.Support)})
	}
	return c, nil
}

// MustNew is like New but panics on error. Use only for constants/tests.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Has reports whether name is in the catalog.
func (c *Catalog) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// Lookup returns a copy of the support table for name.
func (c *Catalog) Lookup(name string) (SupportTable, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(c.entries[i].Support), true
}

// Names returns entry names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// All iterates over the entries in catalog order. The yielded tables are
// shared with the catalog and must not be modified.
func (c *Catalog) All() iter.Seq2[string, SupportTable] {
	return func(yield func(string, SupportTable) bool) {
		if c == nil {
			return
		}
		for _, e := range c.entries {
			if !yield(e.Name, e.Support) {
				return
			}
		}
	}
}

// Validate checks that every support version can be normalized to a
// semantic version. All problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error
	for name, support := range c.All() {
		for _, env := range support.Environments() {
			if _, err := version.Semverify(support[env]); err != nil {
				errs = append(errs, fmt.Errorf("%s: %s: %w", name, env, err))
			}
		}
	}
	return errors.Join(errs...)
}
