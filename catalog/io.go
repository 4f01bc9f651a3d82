package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a catalog from disk, choosing the format by extension:
// ".json", ".toml", or ".bzl"/".star" for Starlark.
func ReadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".toml":
		return ParseTOML(data)
	case ".bzl", ".star":
		return ParseStarlark(path, data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q for %s", ext, path)
	}
}
