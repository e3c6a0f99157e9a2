// Package stamp writes TRUE_LOCATION / IN_USE header comments into analyzed
// files and moves unused files aside as *.bak.
package stamp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mwhitfield/deadwood/pkg/lang"
)

var bakRE = regexp.MustCompile(`(?i)\.bak(\d+)?$`)

// IsBak reports whether a path has already been moved aside.
func IsBak(path string) bool {
	return bakRE.MatchString(filepath.Base(path))
}

// SafeBakPath returns a non-conflicting *.bak sibling: file.ext.bak,
// file.ext.bak2, and so on.
func SafeBakPath(path string) string {
	candidate := path + ".bak"
	if !exists(candidate) {
		return candidate
	}
	for n := 2; ; n++ {
		candidate = fmt.Sprintf("%s.bak%d", path, n)
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Stamper applies per-file stamping decisions.
type Stamper struct {
	// Root anchors the TRUE_LOCATION relative path.
	Root string
	// Rename moves unused files to *.bak before stamping.
	Rename bool
	// DryRun reports intended actions without touching disk.
	DryRun bool
}

// Apply stamps one file according to its reachability. The returned status
// line mirrors what was (or would have been) done; errors are folded into
// the status so one bad file never stops the sweep.
func (s *Stamper) Apply(path string, inUse bool) string {
	if !inUse && s.Rename {
		if s.DryRun {
			return fmt.Sprintf("RENAME (dry-run):   %s -> %s.bak", path, path)
		}
		dest := SafeBakPath(path)
		if err := os.Rename(path, dest); err != nil {
			return fmt.Sprintf("ERROR (rename):     %s (%v)", path, err)
		}
		path = dest
	}

	ext := lang.Ext(strings.TrimSuffix(filepath.Base(path), bakRE.FindString(path)))
	if ext == "" {
		ext = lang.Ext(path)
	}
	style, styled := lang.CommentStyle(ext)

	content, readErr := os.ReadFile(path)
	binary := readErr == nil && isBinary(content)

	if !styled || binary || !lang.Commentable(ext) {
		if !inUse {
			if !s.Rename {
				return fmt.Sprintf("SKIP (unused, left in place): %s", path)
			}
			return fmt.Sprintf("RENAMED (unused):   %s", path)
		}
		switch {
		case binary:
			return fmt.Sprintf("SKIP (binary):      %s", path)
		case lang.Uncommentable(ext):
			return fmt.Sprintf("SKIP (no comments): %s", path)
		default:
			return fmt.Sprintf("SKIP (unknown ext): %s", path)
		}
	}

	if readErr != nil {
		return fmt.Sprintf("ERROR (read):        %s (%v)", path, readErr)
	}

	rel := relSlash(s.Root, path)
	useValue := "FALSE"
	if inUse {
		useValue = "TRUE"
	}

	stamped, changed := ensureHeader(string(content), style,
		[2]string{"TRUE_LOCATION", rel},
		[2]string{"IN_USE", useValue},
	)
	if !changed {
		return fmt.Sprintf("OK (up-to-date):    %s  IN_USE=%s", path, useValue)
	}
	if s.DryRun {
		return fmt.Sprintf("WRITE (dry-run):    %s  IN_USE=%s", path, useValue)
	}
	if err := os.WriteFile(path, []byte(stamped), 0o644); err != nil {
		return fmt.Sprintf("ERROR (write):      %s (%v)", path, err)
	}
	return fmt.Sprintf("WROTE:              %s  IN_USE=%s", path, useValue)
}

// ensureHeader places the key comments on the first lines after an optional
// shebang, replacing stale values in place. Re-stamping an already-correct
// file changes nothing.
func ensureHeader(text string, style lang.Style, pairs ...[2]string) (string, bool) {
	lines := splitKeepEnds(text)

	base := 0
	if len(lines) > 0 && strings.HasPrefix(strings.TrimLeft(lines[0], " \t"), "#!") {
		base = 1
	}

	changed := false
	for i, pair := range pairs {
		comment := style.Prefix + pair[0] + ": " + pair[1] + style.Suffix + "\n"
		idx := base + i
		if idx >= len(lines) {
			lines = append(lines, comment)
			changed = true
			continue
		}
		if strings.Contains(lines[idx], pair[0]+":") {
			if strings.TrimSpace(lines[idx]) != strings.TrimSpace(comment) {
				lines[idx] = comment
				changed = true
			}
			continue
		}
		lines = append(lines[:idx], append([]string{comment}, lines[idx:]...)...)
		changed = true
	}

	return strings.Join(lines, ""), changed
}

func splitKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			return lines
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
		if text == "" {
			return lines
		}
	}
}

const binarySniffLen = 2048

func isBinary(content []byte) bool {
	sniff := content
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
