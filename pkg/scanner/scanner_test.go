package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/deadwood/pkg/config"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func relNames(t *testing.T, root string, files []string) []string {
	t.Helper()
	var out []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.html":    "<html></html>",
		"js/app.js":     "// app",
		"css/main.css":  "body {}",
		"api/mod.py":    "# mod",
		"data.json":     "{}",
		"notes.txt":     "hi",
		"img/logo.png":  "png",
		"sub/deep/x.ts": "// ts",
	})

	s := New(nil)
	files, err := s.Collect(root, []string{"."})
	require.NoError(t, err)

	got := relNames(t, root, files)
	assert.Equal(t, []string{
		"api/mod.py", "css/main.css", "index.html", "js/app.js", "sub/deep/x.ts",
	}, got, "only allowlisted extensions, sorted")
}

func TestCollectSkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".hidden/app.js": "// hidden dir",
		".secret.js":     "// hidden file",
		"visible.js":     "// visible",
	})

	s := New(nil)
	files, err := s.Collect(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.js"}, relNames(t, root, files))

	cfg := config.DefaultConfig()
	cfg.Scan.IncludeHidden = true
	files, err = New(cfg).Collect(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden/app.js", ".secret.js", "visible.js"}, relNames(t, root, files))
}

func TestCollectExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"node_modules/react/index.js": "// dep",
		"dist/bundle.js":              "// built",
		"src/app.js":                  "// src",
	})

	s := New(nil)
	files, err := s.Collect(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.js"}, relNames(t, root, files))
}

func TestCollectGitignore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":       "generated/\n",
		"generated/out.js": "// gen",
		"src/app.js":       "// src",
	})

	cfg := config.DefaultConfig()
	cfg.Scan.Exclude.Gitignore = true
	files, err := New(cfg).Collect(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.js"}, relNames(t, root, files))
}

func TestCollectMultipleDirsDedup(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"web/index.html": "<html></html>",
		"web/js/app.js":  "// app",
	})

	s := New(nil)
	// Overlapping scan dirs must not produce duplicates.
	files, err := s.Collect(root, []string{"web", "web/js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"web/index.html", "web/js/app.js"}, relNames(t, root, files))
}

func TestCollectCustomAllowlist(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.js":  "//",
		"b.css": "",
		"c.py":  "#",
	})

	cfg := config.DefaultConfig()
	cfg.Scan.Extensions = []string{".js"}
	files, err := New(cfg).Collect(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js"}, relNames(t, root, files))
}

func TestCollectMissingDir(t *testing.T) {
	root := t.TempDir()
	_, err := New(nil).Collect(root, []string{"does-not-exist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestCollectExcludesBackups(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app.js":      "//",
		"old.js.bak":  "//",
		"old.js.bak2": "//",
	})

	files, err := New(nil).Collect(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, relNames(t, root, files))
}

func TestCollectWithBackups(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app.js":        "//",
		"old.js.bak":    "//",
		"dead.css.bak":  "",
		"notes.xyz.bak": "",
	})

	files, err := New(nil).CollectWithBackups(root, []string{"."})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"app.js", "dead.css.bak", "old.js.bak"},
		relNames(t, root, files),
		"backups match on their pre-backup extension")
}
