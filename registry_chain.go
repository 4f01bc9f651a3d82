package presetenv

import (
	"errors"
	"fmt"
	"sync"
)

// RegistryChain implements multi-registry lookup with fallback behavior.
// It tries registries in order and remembers which registry provides each
// transform.
//
// Key behaviors:
//  1. Transforms are looked up in registry order (first to last)
//  2. A miss (ErrUnknownIdentifier) falls through to the next registry
//  3. Any other error stops the lookup and is returned
//  4. A name found in no registry yields an *UnknownIdentifierError
type RegistryChain struct {
	registries []TransformRegistry

	// provider tracks which registry provides each transform name
	provider   map[string]int
	providerMu sync.RWMutex
}

// NewRegistryChain creates a chain consulting registries in priority order.
// Nil registries are skipped.
func NewRegistryChain(registries ...TransformRegistry) (*RegistryChain, error) {
	chain := make([]TransformRegistry, 0, len(registries))
	for _, r := range registries {
		if r != nil {
			chain = append(chain, r)
		}
	}
	if len(chain) == 0 {
		return nil, errors.New("no registries provided")
	}
	return &RegistryChain{
		registries: chain,
		provider:   make(map[string]int),
	}, nil
}

// Lookup resolves name using the first registry that knows it.
func (rc *RegistryChain) Lookup(name string) (Transform, error) {
	rc.providerMu.RLock()
	idx, found := rc.provider[name]
	rc.providerMu.RUnlock()

	if found {
		return rc.registries[idx].Lookup(name)
	}

	for i, r := range rc.registries {
		t, err := r.Lookup(name)
		if err == nil {
			rc.providerMu.Lock()
			if _, exists := rc.provider[name]; !exists {
				rc.provider[name] = i
			}
			rc.providerMu.Unlock()
			return t, nil
		}
		if errors.Is(err, ErrUnknownIdentifier) {
			continue
		}
		return Transform{}, fmt.Errorf("registry %d: %w", i, err)
	}

	return Transform{}, &UnknownIdentifierError{Name: name}
}

// ProviderOf returns the index of the registry that resolved name, or -1 if
// name has not been resolved yet.
func (rc *RegistryChain) ProviderOf(name string) int {
	rc.providerMu.RLock()
	defer rc.providerMu.RUnlock()

	if idx, found := rc.provider[name]; found {
		return idx
	}
	return -1
}
