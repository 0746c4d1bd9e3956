// Package parser reads project metadata from Cargo.toml manifests.
// It extracts the package name and optional description; any manifest
// that cannot produce a complete result yields an error, never a
// partial value. Callers are expected to treat errors as "skip".
package parser
