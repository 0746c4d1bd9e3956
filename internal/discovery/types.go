package discovery

import (
	"path/filepath"
	"slices"
)

// Project represents a discovered Cargo project.
type Project struct {
	// Name is the package name from the manifest, unique within a Collection.
	Name string

	// Description is the package description, empty when the manifest has none.
	Description string

	// Dir is the project directory (the one containing the manifest).
	Dir string

	// ManifestPath is the absolute path to the Cargo.toml file.
	ManifestPath string
}

// DescriptionOrDefault returns the description, or a placeholder when
// the manifest declared none.
func (p Project) DescriptionOrDefault() string {
	if p.Description == "" {
		return "No description"
	}
	return p.Description
}

// RunPath returns the conventional release build output location for
// the project. The path is derived, not verified to exist.
func (p Project) RunPath() string {
	return filepath.Join(p.Dir, "target", "release")
}

// Collection is an ordered set of projects keyed by name, iterated in
// lexicographic name order. Inserting a project whose name is already
// present replaces the earlier entry.
type Collection struct {
	byName map[string]Project
	names  []string // sorted
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]Project)}
}

// Insert adds a project to the collection. A later project with a
// duplicate name silently replaces the earlier one.
func (c *Collection) Insert(p Project) {
	if _, exists := c.byName[p.Name]; !exists {
		i, _ := slices.BinarySearch(c.names, p.Name)
		c.names = slices.Insert(c.names, i, p.Name)
	}
	c.byName[p.Name] = p
}

// Len returns the number of projects in the collection.
func (c *Collection) Len() int {
	return len(c.names)
}

// IsEmpty returns true if the collection holds no projects.
func (c *Collection) IsEmpty() bool {
	return len(c.names) == 0
}

// At returns the project at the given 0-based position in name order.
// It returns false when the position is out of range.
func (c *Collection) At(i int) (Project, bool) {
	if i < 0 || i >= len(c.names) {
		return Project{}, false
	}
	return c.byName[c.names[i]], true
}

// Get returns the project with the given name.
func (c *Collection) Get(name string) (Project, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Names returns the project names in lexicographic order.
func (c *Collection) Names() []string {
	return slices.Clone(c.names)
}

// All returns the projects in lexicographic name order.
func (c *Collection) All() []Project {
	projects := make([]Project, 0, len(c.names))
	for _, name := range c.names {
		projects = append(projects, c.byName[name])
	}
	return projects
}
