package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/cargodex/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// ManifestFilename is the per-project manifest probed during discovery.
const ManifestFilename = "Cargo.toml"

// Manifest holds the metadata extracted from a single Cargo.toml.
type Manifest struct {
	// Name is the package name, always non-empty.
	Name string

	// Description is the package description, empty when absent.
	Description string

	// Dir is the directory containing the manifest file.
	Dir string
}

// Reader reads and parses project manifests through a FileSystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads the manifest at path and extracts its package metadata.
// The manifest must contain a [package] table with a string "name";
// "description" is optional. Any failure returns an error and no Manifest.
func (r *Reader) Read(ctx context.Context, path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	name, err := getNestedString(obj, "package.name")
	if err != nil {
		return nil, fmt.Errorf("in manifest %q: %w", path, err)
	}
	if name == "" {
		return nil, fmt.Errorf("in manifest %q: field %q is empty", path, "package.name")
	}

	// Description is optional; a missing or non-string value is simply absent.
	description, _ := getNestedString(obj, "package.description")

	return &Manifest{
		Name:        name,
		Description: description,
		Dir:         filepath.Dir(path),
	}, nil
}

// getNestedString retrieves a string value from a nested map using dot notation.
// Example: "package.name" accesses obj["package"]["name"]
func getNestedString(obj map[string]any, field string) (string, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return "", fmt.Errorf("field %q is not a table at %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return "", fmt.Errorf("field %q not found", field)
		}

		current = value
	}

	s, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", field)
	}

	return s, nil
}
