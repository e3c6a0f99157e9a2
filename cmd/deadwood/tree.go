package main

import (
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mwhitfield/deadwood/pkg/report"
)

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Print the filesystem tree without reachability analysis",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			root, err := resolveRoot(c)
			if err != nil {
				return err
			}

			files, err := collectFilesWithBackups(root, cfg)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				color.Yellow("No source files found")
				return nil
			}

			formatter, dest, err := newFormatter(c, root, cfg)
			if err != nil {
				return err
			}
			defer formatter.Close()

			if err := formatter.Output(report.NewFSView(root, files)); err != nil {
				return err
			}
			if dest != "" {
				color.Green("Results written to %s", dest)
			}
			return nil
		},
	}
}
