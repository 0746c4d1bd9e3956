package discovery

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/indaco/cargodex/internal/config"
	"github.com/indaco/cargodex/internal/core"
	"github.com/indaco/cargodex/internal/parser"
)

// Service provides project discovery functionality.
type Service struct {
	fs     core.FileSystem
	cfg    *config.Config
	parser *parser.Reader
	stderr io.Writer
}

// NewService creates a new discovery Service.
func NewService(fs core.FileSystem, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Service{
		fs:     fs,
		cfg:    cfg,
		parser: parser.NewReader(fs),
		stderr: os.Stderr,
	}
}

// Scan enumerates the immediate subdirectories of root and collects
// every project whose Cargo.toml parses successfully. Scanning is
// non-recursive. Directories without a readable, complete manifest are
// skipped silently. An unreadable root emits a diagnostic to stderr and
// yields an empty collection, not an error.
func (s *Service) Scan(ctx context.Context, root string) (*Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projects := NewCollection()

	entries, err := s.fs.ReadDir(ctx, root)
	if err != nil {
		fmt.Fprintf(s.stderr, "Could not read directory %q: %v\n", root, err)
		return projects, nil
	}

	excludes := s.cfg.GetExcludePatterns()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		if s.shouldExclude(name, excludes) {
			continue
		}

		manifestPath := filepath.Join(root, name, parser.ManifestFilename)
		if _, err := s.fs.Stat(ctx, manifestPath); err != nil {
			continue
		}

		m, err := s.parser.Read(ctx, manifestPath)
		if err != nil {
			// Unreadable or incomplete manifest: skip the directory.
			continue
		}

		projects.Insert(Project{
			Name:         m.Name,
			Description:  m.Description,
			Dir:          m.Dir,
			ManifestPath: manifestPath,
		})
	}

	return projects, nil
}

// shouldExclude checks if a directory name should be excluded from scanning.
func (s *Service) shouldExclude(name string, excludes []string) bool {
	// Skip hidden directories.
	if strings.HasPrefix(name, ".") {
		return true
	}

	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}

	return false
}
