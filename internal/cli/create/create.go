// Package create implements the scaffold run itself: materialize the
// blueprint into the current directory, then best-effort bootstrap the
// generated Go module.
package create

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/copycat-mvp/copyscaff/internal/core/config"
	"github.com/copycat-mvp/copyscaff/internal/core/scaffold"
	"github.com/copycat-mvp/copyscaff/internal/core/toolchain"
)

var (
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	bannerColor  = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// NewCommand returns the "new" command. The same action doubles as the
// app's default action, so a bare invocation scaffolds the current
// directory.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Scaffold the copycat-backend project layout into the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Action: Run,
	}
}

// Run executes one scaffold pass against the current working directory.
//
// Filesystem errors during materialization are fatal and become a non-zero
// exit. Toolchain failures are not: the bootstrapper reports them through
// its Result, a single warning is printed, and the run still ends with the
// success banner and exit code 0. The scaffold is considered useful even
// when dependency resolution is unavailable on the host.
func Run(c *cli.Context) error {
	verbose := c.Bool("verbose")
	out := c.App.Writer

	base, err := os.Getwd()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error resolving working directory: %v", err), 1)
	}

	bp, err := config.Load()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading blueprint: %v", err), 1)
	}

	_, _ = fmt.Fprintf(out, "Initializing project: %s...\n", bp.Project.Name)

	if err := scaffold.Create(base, bp, out); err != nil {
		// No rollback: whatever was written stays on disk.
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	_, _ = fmt.Fprintf(out, "%s\n", successColor("Structure created."))

	_, _ = fmt.Fprintln(out, "Initializing Go module...")
	res := toolchain.New(base, bp).Bootstrap()
	if verbose && res.Output != "" {
		_, _ = fmt.Fprint(out, res.Output)
	}
	if res.OK() {
		_, _ = fmt.Fprintf(out, "%s\n", successColor("Go dependencies installed."))
	} else {
		_, _ = fmt.Fprintf(out, "%s %s\n", warningColor("Warning:"), res.Warning())
	}

	_, _ = fmt.Fprintf(out, "\n%s\n", bannerColor(fmt.Sprintf("Project %s initialized successfully!", bp.Project.Name)))
	_, _ = fmt.Fprintln(out, "Next step: run 'go run cmd/server/main.go'")

	return nil
}
