package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/indaco/cargodex/internal/cli"
	"github.com/indaco/cargodex/internal/config"
)

func main() {
	handleInterrupt()

	if err := runCLI(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with the
// given process arguments.
func runCLI(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return cli.New(cfg).Run(context.Background(), args)
}

// handleInterrupt terminates the process on Ctrl+C, including while the
// interactive session is blocked reading stdin. Interrupt is a normal
// shutdown, so the exit code is 0.
func handleInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		fmt.Println("\nProgram interrupted. Exiting...")
		os.Exit(0)
	}()
}
