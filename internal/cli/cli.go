package cli

import (
	"context"
	"fmt"

	"github.com/indaco/cargodex/internal/commands/list"
	"github.com/indaco/cargodex/internal/commands/show"
	"github.com/indaco/cargodex/internal/config"
	"github.com/indaco/cargodex/internal/printer"
	"github.com/indaco/cargodex/internal/tui"
	"github.com/indaco/cargodex/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the cargodex cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "cargodex",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Browse and inspect local Cargo projects",
		EnableShellCompletion: true,
		DefaultCommand:        "list",
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			if noColorFlag || cfg.NoColor {
				printer.SetNoColor(true)
			}
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			list.Run(cfg),
			show.Run(cfg),
		},
	}
}
