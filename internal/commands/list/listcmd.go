package list

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
	"github.com/indaco/cargodex/internal/config"
	"github.com/indaco/cargodex/internal/core"
	"github.com/indaco/cargodex/internal/discovery"
	"github.com/indaco/cargodex/internal/session"
	"github.com/indaco/cargodex/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "list" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List local Cargo projects and browse their details",
		UsageText: `cargodex list [options]

Scans <home>/rust for directories containing a Cargo.toml, lists the
projects it finds, and (on a terminal) lets you pick one by number to
view its details.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Print the listing without the selection prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runListCmd(ctx, cmd, cfg)
		},
	}
}

// runListCmd executes the list command.
func runListCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	root, err := ProjectsRoot()
	if err != nil {
		return err
	}

	projects, err := scan(ctx, cfg, root)
	if err != nil {
		return err
	}

	format := ParseOutputFormat(cmd.String("format"))
	interactive := tui.IsInteractive() && !cmd.Bool("no-interactive")

	if format == FormatText && interactive {
		return session.New(os.Stdin, os.Stdout, projects).Run()
	}

	NewFormatter(format).PrintCollection(root, projects)
	return nil
}

// ProjectsRoot resolves the fixed scan root, <home>/rust.
// An unresolvable home directory is a fatal environment failure.
func ProjectsRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "rust"), nil
}

// scan runs discovery over root, under a spinner when on a terminal.
func scan(ctx context.Context, cfg *config.Config, root string) (*discovery.Collection, error) {
	svc := discovery.NewService(core.NewOSFileSystem(), cfg)

	if !tui.IsInteractive() {
		return svc.Scan(ctx, root)
	}

	var (
		projects *discovery.Collection
		scanErr  error
	)
	err := spinner.New().
		Title(fmt.Sprintf("Scanning %s...", root)).
		Action(func() {
			projects, scanErr = svc.Scan(ctx, root)
		}).
		Run()
	if err != nil {
		return nil, err
	}

	return projects, scanErr
}
