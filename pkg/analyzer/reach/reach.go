// Package reach builds the cross-file reference graph and computes which
// files are transitively reachable from the entry points.
package reach

import (
	"context"
	"os"
	"sort"

	"github.com/mwhitfield/deadwood/internal/fileproc"
	"github.com/mwhitfield/deadwood/pkg/extract"
	"github.com/mwhitfield/deadwood/pkg/resolve"
)

// Analyzer builds reference graphs from collected files.
type Analyzer struct {
	registry   extract.Registry
	resolver   resolve.Resolver
	workers    int
	onProgress func()
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithRegistry substitutes the extractor registry. Tests use this to inject
// custom parser sets.
func WithRegistry(r extract.Registry) Option {
	return func(a *Analyzer) {
		a.registry = r
	}
}

// WithResolver substitutes the reference resolver.
func WithResolver(r resolve.Resolver) Option {
	return func(a *Analyzer) {
		a.resolver = r
	}
}

// WithWorkers sets the extraction worker count (0 = 2x NumCPU).
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithProgress sets a callback invoked once per processed file.
func WithProgress(fn func()) Option {
	return func(a *Analyzer) {
		a.onProgress = fn
	}
}

// New creates an analyzer anchored at the given project root.
func New(root string, opts ...Option) *Analyzer {
	a := &Analyzer{
		registry: extract.NewRegistry(),
		resolver: resolve.New(root),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildGraph extracts and resolves references for every file and merges the
// per-file edge lists into one graph. Extraction runs in parallel; results
// are positional and each file's targets are sorted, so the graph does not
// depend on scheduling or enumeration order.
func (a *Analyzer) BuildGraph(ctx context.Context, files []string) (*Graph, error) {
	targets, _ := fileproc.MapWithContext(ctx, files, a.workers, a.fileTargets, a.onProgress)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := NewGraph()
	for i, file := range files {
		g.AddNode(file)
		for _, target := range targets[i] {
			g.AddEdge(file, target)
		}
	}
	return g, nil
}

// fileTargets resolves one file's references. Every per-file failure mode
// (unreadable, binary, no registered parser) degrades to an empty
// contribution rather than an error.
func (a *Analyzer) fileTargets(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	if !extract.Textual(content) {
		return nil, nil
	}
	ex := a.registry.For(path)
	if ex == nil {
		return nil, nil
	}

	seen := make(map[string]bool)
	var targets []string
	for _, ref := range ex.Extract(content) {
		if target, ok := a.resolver.Resolve(ref, path); ok && !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}
	sort.Strings(targets)
	return targets, nil
}

// Analyze runs the full pipeline: graph construction, then reachability from
// the given roots, producing the used/unused partition of files.
func (a *Analyzer) Analyze(ctx context.Context, files, roots []string) (*Result, error) {
	g, err := a.BuildGraph(ctx, files)
	if err != nil {
		return nil, err
	}

	reachable := g.ReachableFrom(roots)

	var unreachable []string
	for _, f := range files {
		if !reachable[f] {
			unreachable = append(unreachable, f)
		}
	}

	return &Result{
		Files:       files,
		Roots:       roots,
		Graph:       g,
		Reachable:   reachable,
		Unreachable: unreachable,
	}, nil
}
