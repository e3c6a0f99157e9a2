package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mwhitfield/deadwood/pkg/stamp"
)

func stampCmd() *cli.Command {
	return &cli.Command{
		Name:  "stamp",
		Usage: "Write TRUE_LOCATION/IN_USE headers and move unused files to *.bak",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report intended changes without touching files",
			},
			&cli.BoolFlag{
				Name:  "no-backup",
				Usage: "Stamp unused files in place instead of renaming to *.bak",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			root, err := resolveRoot(c)
			if err != nil {
				return err
			}

			if c.Bool("dry-run") {
				cfg.Stamp.DryRun = true
			}
			if c.Bool("no-backup") {
				cfg.Stamp.Rename = false
			}

			run, err := runAnalysis(c.Context, root, cfg, cfg.Output.Verbose)
			if err != nil {
				return err
			}
			if run == nil {
				return nil
			}

			unused := len(run.Result.Files) - len(run.Report.Used)
			fmt.Printf("About to stamp %d files under %s (%d unused", len(run.Result.Files), root, unused)
			if cfg.Stamp.Rename && !cfg.Stamp.DryRun {
				fmt.Print(", unused files will be renamed to *.bak")
			}
			fmt.Println(")")

			if !cfg.Stamp.DryRun && !c.Bool("yes") && !confirm("Proceed?") {
				color.Yellow("Aborted")
				return nil
			}

			s := &stamp.Stamper{
				Root:   root,
				Rename: cfg.Stamp.Rename,
				DryRun: cfg.Stamp.DryRun,
			}
			for _, path := range run.Result.Files {
				status := s.Apply(path, run.Result.IsReachable(path))
				if cfg.Output.Verbose || cfg.Stamp.DryRun || strings.HasPrefix(status, "ERROR") {
					fmt.Println(status)
				}
			}
			return nil
		},
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
