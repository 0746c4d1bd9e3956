package show

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/indaco/cargodex/internal/commands/list"
	"github.com/indaco/cargodex/internal/config"
	"github.com/indaco/cargodex/internal/core"
	"github.com/indaco/cargodex/internal/discovery"
	"github.com/indaco/cargodex/internal/session"
	"github.com/indaco/cargodex/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show details for a single project",
		ArgsUsage: "[name]",
		UsageText: `cargodex show [name]

Prints the detail view for one project. When no name is given and the
session is interactive, a picker over the discovered projects is shown.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd, cfg)
		},
	}
}

// runShowCmd executes the show command.
func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	root, err := list.ProjectsRoot()
	if err != nil {
		return err
	}

	svc := discovery.NewService(core.NewOSFileSystem(), cfg)
	projects, err := svc.Scan(ctx, root)
	if err != nil {
		return err
	}

	if projects.IsEmpty() {
		fmt.Println("No Rust projects found.")
		return nil
	}

	name := cmd.Args().First()
	if name == "" {
		name, err = pickProject(projects)
		if err != nil {
			return err
		}
	}

	p, ok := projects.Get(name)
	if !ok {
		return fmt.Errorf("unknown project %q", name)
	}

	session.PrintDetail(os.Stdout, p)
	return nil
}

// pickProject prompts for a project name when none was given on the
// command line. Outside a terminal there is nothing to prompt on.
func pickProject(projects *discovery.Collection) (string, error) {
	if !tui.IsInteractive() {
		return "", fmt.Errorf("project name required")
	}

	names := projects.Names()
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		options = append(options, huh.NewOption(name, name))
	}

	return tui.Select("Select a project", "", options)
}
