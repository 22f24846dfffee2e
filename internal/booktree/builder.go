package booktree

import (
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dgallion1/booksum/internal/title"
)

// ErrEmptyTree means the scan found no markdown files under the root.
// Usually this indicates a misconfigured notes directory.
var ErrEmptyTree = errors.New("no markdown files under notes directory")

// ScanStats reports what a walk saw and what it had to skip.
type ScanStats struct {
	Files   int // markdown files that became leaf chapters
	Indexes int // README files recorded as index link targets
	Skipped int // directory listings that failed and were skipped
}

// Builder walks a notes directory into a Chapter tree.
type Builder struct {
	OutputFile string // summary file name, excluded at the root to avoid self-reference
	Resolver   *title.Resolver
	Log        *slog.Logger
}

// Build scans root and returns a synthetic root Chapter whose children are
// the top-level entries. A tree with no children is returned together with
// ErrEmptyTree; callers decide whether that is fatal.
func (b *Builder) Build(root string) (*Chapter, *ScanStats, error) {
	stats := &ScanStats{}
	top := &Chapter{IsSection: true}
	b.scanDir(root, "", top, stats)
	if len(top.Children) == 0 {
		return top, stats, ErrEmptyTree
	}
	return top, stats, nil
}

func (b *Builder) scanDir(dir, rel string, parent *Chapter, stats *ScanStats) {
	// os.ReadDir returns entries sorted by filename, which is the
	// pre-sort order for every level of the tree.
	entries, err := os.ReadDir(dir)
	if err != nil {
		stats.Skipped++
		b.logger().Warn("skipping unreadable directory", "dir", dir, "error", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entryRel := path.Join(rel, name)

		// DirEntry.IsDir is lstat-based, so symlinked directories are
		// not descended and traversal always terminates.
		if entry.IsDir() {
			section := &Chapter{
				Title:     b.Resolver.Resolve(filepath.Join(dir, name), name, true),
				Path:      entryRel,
				IsSection: true,
			}
			b.scanDir(filepath.Join(dir, name), entryRel, section, stats)
			if len(section.Children) == 0 && section.IndexPath == "" {
				// No markdown anywhere beneath; drop the section.
				continue
			}
			parent.Children = append(parent.Children, section)
			continue
		}

		if !isMarkdown(name) {
			continue
		}
		if rel == "" && name == b.OutputFile {
			continue
		}
		if strings.EqualFold(name, "README.md") {
			// The README is the section's link target, not a leaf.
			parent.IndexPath = entryRel
			stats.Indexes++
			continue
		}

		parent.Children = append(parent.Children, &Chapter{
			Title: b.Resolver.Resolve(filepath.Join(dir, name), name, false),
			Path:  entryRel,
		})
		stats.Files++
	}
}

func (b *Builder) logger() *slog.Logger {
	if b.Log != nil {
		return b.Log
	}
	return slog.Default()
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
