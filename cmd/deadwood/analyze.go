package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mwhitfield/deadwood/pkg/analyzer/reach"
	"github.com/mwhitfield/deadwood/pkg/classify"
	"github.com/mwhitfield/deadwood/pkg/config"
	"github.com/mwhitfield/deadwood/pkg/progress"
	"github.com/mwhitfield/deadwood/pkg/report"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Build the reference graph and report unreachable files",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			root, err := resolveRoot(c)
			if err != nil {
				return err
			}

			run, err := runAnalysis(c.Context, root, cfg, cfg.Output.Verbose)
			if err != nil {
				return err
			}
			if run == nil {
				return nil
			}

			formatter, dest, err := newFormatter(c, root, cfg)
			if err != nil {
				return err
			}
			defer formatter.Close()

			if err := formatter.Output(run.Report); err != nil {
				return err
			}
			if dest != "" {
				color.Green("Results written to %s", dest)
			}
			return nil
		},
	}
}

// analysisRun bundles the pipeline outputs commands consume.
type analysisRun struct {
	Report *report.Report
	Result *reach.Result
}

// runAnalysis is the shared scan-extract-classify pipeline. A nil run with
// nil error means no source files were found.
func runAnalysis(ctx context.Context, root string, cfg *config.Config, verbose bool) (*analysisRun, error) {
	files, err := collectFiles(root, cfg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil, nil
	}

	scanDirs := absScanDirs(root, cfg.Scan.Dirs)
	roots := reach.SelectRoots(root, scanDirs, files, cfg.Roots)
	if verbose {
		for _, r := range roots {
			fmt.Printf("entry point: %s\n", report.Rel(root, r))
		}
	}

	tracker := progress.NewTracker("Extracting references...", len(files))
	analyzer := reach.New(root,
		reach.WithWorkers(cfg.Jobs),
		reach.WithProgress(tracker.Tick),
	)
	res, err := analyzer.Analyze(ctx, files, roots)
	tracker.FinishSuccess()
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	classification := classify.Classify(root, files, res.Reachable, scanDirs)
	return &analysisRun{
		Report: report.New(root, res, classification),
		Result: res,
	}, nil
}
