// Package session implements the interactive project browser: a
// numbered listing over a discovered collection, driven by a
// line-oriented read loop on standard input.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/indaco/cargodex/internal/discovery"
	"github.com/indaco/cargodex/internal/printer"
)

// Session drives the interactive numbered-menu loop over a project
// collection. Input and output are injected so the loop can be tested
// against in-memory streams.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	projects *discovery.Collection
}

// New creates a Session reading selections from in and writing to out.
func New(in io.Reader, out io.Writer, projects *discovery.Collection) *Session {
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		projects: projects,
	}
}

// Run prints the project listing once and then loops on input until the
// user quits or input is exhausted. An empty collection terminates
// immediately after a notice.
func (s *Session) Run() error {
	if s.projects.IsEmpty() {
		fmt.Fprintln(s.out, "No Rust projects found.")
		return nil
	}

	s.printListing()

	for {
		fmt.Fprint(s.out, "> ")

		if !s.in.Scan() {
			// EOF closes the session the same way "q" does.
			fmt.Fprintln(s.out, "Exiting program...")
			return s.in.Err()
		}

		input := strings.TrimSpace(s.in.Text())

		if strings.EqualFold(input, "q") {
			fmt.Fprintln(s.out, "Exiting program...")
			return nil
		}

		n, err := strconv.ParseUint(input, 10, strconv.IntSize-1)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number or 'q' to quit.")
			continue
		}

		p, ok := s.projects.At(int(n) - 1)
		if !ok {
			fmt.Fprintln(s.out, "Invalid selection. Please enter a valid project number.")
			continue
		}

		PrintDetail(s.out, p)
	}
}

// printListing renders the numbered project menu followed by the
// selection instructions.
func (s *Session) printListing() {
	for i, p := range s.projects.All() {
		fmt.Fprintf(s.out, "%d. %s - %s\n", i+1, p.Name, p.DescriptionOrDefault())
	}
	fmt.Fprintln(s.out, "Enter the number of the project to view details, or 'q' to quit:")
}

// PrintDetail writes the detail view for a single project. It is shared
// with the show command.
func PrintDetail(out io.Writer, p discovery.Project) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, printer.Info("Project Details:"))
	fmt.Fprintf(out, "Project Name: %s\n", printer.Bold(p.Name))
	fmt.Fprintf(out, "Description: %s\n", p.DescriptionOrDefault())
	fmt.Fprintf(out, "Path: %s\n", p.Dir)
	fmt.Fprintf(out, "You can run this project from: %s\n", printer.Faint(p.RunPath()))
}
