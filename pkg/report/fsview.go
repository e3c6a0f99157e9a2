package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mwhitfield/deadwood/pkg/stamp"
)

// FSView is the plain filesystem listing: a directory tree of live files and
// a flat list of files already moved aside as *.bak. No reachability is
// involved.
type FSView struct {
	Root  string
	Files []string
	Baks  []string
}

// NewFSView splits files into live and *.bak groups.
func NewFSView(root string, files []string) *FSView {
	v := &FSView{Root: root}
	for _, f := range files {
		if stamp.IsBak(f) {
			v.Baks = append(v.Baks, f)
		} else {
			v.Files = append(v.Files, f)
		}
	}
	return v
}

// RenderText implements output.Renderable.
func (v *FSView) RenderText(w io.Writer, colored bool) error {
	header := func(s string) {
		if colored {
			color.New(color.Bold, color.FgCyan).Fprintln(w, s)
		} else {
			fmt.Fprintln(w, s)
		}
	}

	header("# Filesystem Tree")
	fmt.Fprintln(w, Tree(v.Root, v.Files))
	fmt.Fprintln(w)

	header("# Backup files (.bak)")
	if len(v.Baks) == 0 {
		fmt.Fprintln(w, "(none)")
		return nil
	}
	for _, p := range sortedRels(v.Root, v.Baks) {
		fmt.Fprintf(w, "- %s\n", p)
	}
	return nil
}

// RenderMarkdown implements output.Renderable.
func (v *FSView) RenderMarkdown(w io.Writer) error {
	fmt.Fprintln(w, "# Filesystem Tree")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w, Tree(v.Root, v.Files))
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Backup files")
	fmt.Fprintln(w)
	if len(v.Baks) == 0 {
		fmt.Fprintln(w, "(none)")
		return nil
	}
	for _, p := range sortedRels(v.Root, v.Baks) {
		fmt.Fprintf(w, "- %s\n", p)
	}
	return nil
}

// RenderData implements output.Renderable.
func (v *FSView) RenderData() any {
	return struct {
		Root  string   `json:"root"`
		Files []string `json:"files"`
		Baks  []string `json:"bak_files"`
	}{
		Root:  v.Root,
		Files: sortedRels(v.Root, v.Files),
		Baks:  sortedRels(v.Root, v.Baks),
	}
}
