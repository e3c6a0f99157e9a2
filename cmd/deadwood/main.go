package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	app := &cli.App{
		Name:    "deadwood",
		Usage:   "Static reachability analysis for mixed web/python source trees",
		Version: version,
		Description: `Deadwood walks a source tree, extracts relative references from HTML,
CSS, JavaScript, and Python files, builds a directed reference graph, and
reports which files and directories are unreachable from the entry points.

Supports: HTML, CSS/SCSS/LESS, JavaScript/TypeScript, Python`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"DEADWOOD_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   ".",
				Usage:   "Project root directory",
			},
			&cli.StringSliceFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory to scan, relative to root (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "Extension allowlist override, e.g. .js (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "entry",
				Aliases: []string{"e"},
				Usage:   "Explicit entry-point file (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "include-hidden",
				Usage: "Scan hidden files and directories",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Extraction worker count (default 2x CPUs)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write results to file (default deadwood-results.txt)",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "Write results to stdout instead of the results file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			treeCmd(),
			stampCmd(),
		},
		DefaultCommand: "analyze",
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
