package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/mwhitfield/deadwood/pkg/config"
	"github.com/mwhitfield/deadwood/pkg/output"
	"github.com/mwhitfield/deadwood/pkg/scanner"
)

// loadConfig layers CLI flags over the config file (or defaults).
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault()
	}

	if dirs := c.StringSlice("dir"); len(dirs) > 0 {
		cfg.Scan.Dirs = dirs
	}
	if exts := c.StringSlice("ext"); len(exts) > 0 {
		cfg.Scan.Extensions = exts
	}
	if entries := c.StringSlice("entry"); len(entries) > 0 {
		cfg.Roots.Entries = entries
	}
	if c.IsSet("include-hidden") {
		cfg.Scan.IncludeHidden = c.Bool("include-hidden")
	}
	if c.IsSet("jobs") {
		cfg.Jobs = c.Int("jobs")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Output.ResultsFile = c.String("output")
	}
	if c.Bool("no-color") {
		cfg.Output.Color = false
	}
	if c.Bool("verbose") {
		cfg.Output.Verbose = true
	}
	return cfg, nil
}

// resolveRoot validates the --root flag and returns it absolute.
func resolveRoot(c *cli.Context) (string, error) {
	root, err := filepath.Abs(c.String("root"))
	if err != nil {
		return "", cli.Exit(fmt.Sprintf("invalid root path %s: %v", c.String("root"), err), 2)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", cli.Exit(fmt.Sprintf("root directory does not exist: %s", root), 2)
	}
	return root, nil
}

// absScanDirs resolves the configured scan dirs against the project root.
func absScanDirs(root string, dirs []string) []string {
	out := make([]string, len(dirs))
	for i, d := range dirs {
		if filepath.IsAbs(d) {
			out[i] = filepath.Clean(d)
		} else {
			out[i] = filepath.Join(root, d)
		}
	}
	return out
}

// collectFiles validates scan dirs and gathers the candidate file set.
func collectFiles(root string, cfg *config.Config) ([]string, error) {
	files, err := scanner.New(cfg).Collect(root, cfg.Scan.Dirs)
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	return files, nil
}

// collectFilesWithBackups also picks up *.bak files for listings.
func collectFilesWithBackups(root string, cfg *config.Config) ([]string, error) {
	files, err := scanner.New(cfg).CollectWithBackups(root, cfg.Scan.Dirs)
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	return files, nil
}

// newFormatter picks the destination: stdout when requested, the results
// file otherwise. A relative results path is anchored at the project root.
func newFormatter(c *cli.Context, root string, cfg *config.Config) (*output.Formatter, string, error) {
	format := output.ParseFormat(cfg.Output.Format)
	if c.Bool("stdout") {
		return output.NewWriterFormatter(format, os.Stdout, cfg.Output.Color), "", nil
	}
	dest := cfg.Output.ResultsFile
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(root, dest)
	}
	f, err := output.NewFormatter(format, dest, cfg.Output.Color)
	if err != nil {
		return nil, "", err
	}
	return f, dest, nil
}
