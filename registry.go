package presetenv

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/liangklfang/babel-preset-env/catalog"
)

// Built-in injection handler identifiers.
const (
	UseBuiltInsEntry = "use-built-ins-entry"
	UseBuiltInsUsage = "use-built-ins-usage"
)

// RegeneratorTransform is the transform whose selection is forwarded to the
// built-ins entry.
const RegeneratorTransform = "transform-regenerator"

// Transform identifies a concrete transform implementation.
type Transform struct {
	// Name is the identifier used in catalogs and include/exclude lists.
	Name string `json:"name"`

	// Kind classifies the transform.
	Kind Kind `json:"kind"`

	// Package is the package that implements the transform.
	Package string `json:"package,omitempty"`
}

// TransformRegistry resolves transform identifiers to implementations.
// Lookup must fail with an error matching ErrUnknownIdentifier on a miss.
type TransformRegistry interface {
	Lookup(name string) (Transform, error)
}

// Compile-time interface compliance checks
var _ TransformRegistry = (*Registry)(nil)
var _ TransformRegistry = (*RegistryChain)(nil)

// Registry is a static, in-memory TransformRegistry.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry creates a registry holding transforms. Later duplicates
// replace earlier ones.
func NewRegistry(transforms ...Transform) *Registry {
	r := &Registry{transforms: make(map[string]Transform, len(transforms))}
	for _, t := range transforms {
		r.transforms[t.Name] = t
	}
	return r
}

// Register adds t. Registering a name twice is an error.
func (r *Registry) Register(t Transform) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.transforms[t.Name]; dup {
		return fmt.Errorf("transform %q already registered", t.Name)
	}
	r.transforms[t.Name] = t
	return nil
}

// Lookup returns the transform registered as name.
func (r *Registry) Lookup(name string) (Transform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transforms[name]
	if !ok {
		return Transform{}, &UnknownIdentifierError{Name: name}
	}
	return t, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.transforms))
}

// NewCatalogRegistry registers every entry of list as a transform of the
// given kind.
func NewCatalogRegistry(list *catalog.Catalog, kind Kind) *Registry {
	transforms := make([]Transform, 0, list.Len())
	for name := range list.All() {
		transforms = append(transforms, Transform{Name: name, Kind: kind, Package: packageFor(name, kind)})
	}
	return NewRegistry(transforms...)
}

// StandardRegistry returns the registry of transforms that exist regardless
// of catalog contents: module format transforms, the regenerator transform
// and the built-ins injection handlers.
func StandardRegistry() *Registry {
	transforms := []Transform{
		{Name: RegeneratorTransform, Kind: KindSyntax, Package: packageFor(RegeneratorTransform, KindSyntax)},
		{Name: UseBuiltInsEntry, Kind: KindBuiltIns, Package: packageFor(UseBuiltInsEntry, KindBuiltIns)},
		{Name: UseBuiltInsUsage, Kind: KindBuiltIns, Package: packageFor(UseBuiltInsUsage, KindBuiltIns)},
	}
	for _, name := range moduleTransformations {
		transforms = append(transforms, Transform{Name: name, Kind: KindModule, Package: packageFor(name, KindModule)})
	}
	return NewRegistry(transforms...)
}

func packageFor(name string, kind Kind) string {
	if kind == KindBuiltIns {
		return "@babel/preset-env/" + name
	}
	return "@babel/plugin-" + name
}
