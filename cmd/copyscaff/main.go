package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/copycat-mvp/copyscaff/internal/cli/create"
	"github.com/copycat-mvp/copyscaff/internal/cli/self"
)

func main() {
	app := &cli.App{
		Name:    "copyscaff",
		Usage:   "One-shot scaffold generator for the copycat-backend project",
		Version: "v0.1.0",
		// A bare invocation scaffolds the current directory.
		Action: create.Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Commands: []*cli.Command{
			create.NewCommand(),
			self.NewCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
