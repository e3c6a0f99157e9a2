// Package report renders analysis results as a four-section listing: the
// used-file tree, unnecessary directories, keep directories, and the
// remaining unused files.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mwhitfield/deadwood/pkg/analyzer/reach"
	"github.com/mwhitfield/deadwood/pkg/classify"
	"github.com/mwhitfield/deadwood/pkg/output"
)

// Report is the renderable outcome of one analysis run. All paths are held
// absolute and rendered relative to Root.
type Report struct {
	Root            string
	Roots           []string
	Used            []string
	UnnecessaryDirs []string
	KeepDirs        []string
	OtherUnused     []string
	TotalFiles      int
}

// New assembles a report from the reachability result and the directory
// classification.
func New(root string, res *reach.Result, c classify.Classification) *Report {
	return &Report{
		Root:            root,
		Roots:           res.Roots,
		Used:            res.Used(),
		UnnecessaryDirs: c.Unnecessary,
		KeepDirs:        c.Keep,
		OtherUnused:     c.OtherUnused,
		TotalFiles:      len(res.Files),
	}
}

// summary builds the counts table shown above the sections.
func (r *Report) summary() *output.Table {
	return output.NewTable("", []string{"Metric", "Count"}, [][]string{
		{"Files scanned", fmt.Sprint(r.TotalFiles)},
		{"Entry points", fmt.Sprint(len(r.Roots))},
		{"Used files", fmt.Sprint(len(r.Used))},
		{"Unnecessary directories", fmt.Sprint(len(r.UnnecessaryDirs))},
		{"Keep directories", fmt.Sprint(len(r.KeepDirs))},
		{"Other unused files", fmt.Sprint(len(r.OtherUnused))},
	})
}

// RenderText implements output.Renderable.
func (r *Report) RenderText(w io.Writer, colored bool) error {
	header := func(s string) {
		if colored {
			color.New(color.Bold, color.FgCyan).Fprintln(w, s)
		} else {
			fmt.Fprintln(w, s)
		}
	}

	header("# Reachability Results")
	fmt.Fprintln(w)
	if err := r.summary().RenderText(w, colored); err != nil {
		return err
	}

	header("## Section 1 — Used files (directory tree)")
	fmt.Fprintln(w, Tree(r.Root, r.Used))
	fmt.Fprintln(w)

	header("## Section 2 — Unnecessary directories (all files unused)")
	r.renderList(w, r.UnnecessaryDirs)

	header("## Section 3 — Keep directories (mixed contents)")
	r.renderList(w, r.KeepDirs)

	header("## Section 4 — Other unused files")
	r.renderList(w, r.OtherUnused)

	return nil
}

func (r *Report) renderList(w io.Writer, paths []string) {
	if len(paths) == 0 {
		fmt.Fprintln(w, "(none)")
	} else {
		for _, p := range paths {
			fmt.Fprintf(w, "- %s\n", Rel(r.Root, p))
		}
	}
	fmt.Fprintln(w)
}

// RenderMarkdown implements output.Renderable.
func (r *Report) RenderMarkdown(w io.Writer) error {
	fmt.Fprintln(w, "# Reachability Results")
	fmt.Fprintln(w)
	if err := r.summary().RenderMarkdown(w); err != nil {
		return err
	}

	fmt.Fprintln(w, "## Used files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w, Tree(r.Root, r.Used))
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w)

	sections := []struct {
		title string
		paths []string
	}{
		{"Unnecessary directories", r.UnnecessaryDirs},
		{"Keep directories", r.KeepDirs},
		{"Other unused files", r.OtherUnused},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "## %s\n\n", s.title)
		r.renderList(w, s.paths)
	}
	return nil
}

// Data is the JSON shape of a report. Paths are root-relative with forward
// slashes.
type Data struct {
	Root            string   `json:"root"`
	Roots           []string `json:"roots"`
	UsedFiles       []string `json:"used_files"`
	UnnecessaryDirs []string `json:"unnecessary_dirs"`
	KeepDirs        []string `json:"keep_dirs"`
	OtherUnused     []string `json:"other_unused_files"`
	TotalFiles      int      `json:"total_files"`
}

// RenderData implements output.Renderable.
func (r *Report) RenderData() any {
	return Data{
		Root:            r.Root,
		Roots:           rels(r.Root, r.Roots),
		UsedFiles:       rels(r.Root, r.Used),
		UnnecessaryDirs: rels(r.Root, r.UnnecessaryDirs),
		KeepDirs:        rels(r.Root, r.KeepDirs),
		OtherUnused:     rels(r.Root, r.OtherUnused),
		TotalFiles:      r.TotalFiles,
	}
}
