// Package discovery locates Cargo projects for the cargodex CLI. It
// scans the immediate subdirectories of a root directory for Cargo.toml
// manifests and aggregates the successfully parsed ones into a
// name-sorted collection.
package discovery
