// Package summary wires the scan, sort and render stages into one pass.
package summary

import (
	"log/slog"

	"github.com/dgallion1/booksum/internal/booktree"
	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/render"
	"github.com/dgallion1/booksum/internal/title"
)

// Result is the output of a full generation pass.
type Result struct {
	Document string             // rendered summary markdown
	Tree     *booktree.Chapter  // sorted tree the document was rendered from
	Stats    *booktree.ScanStats
}

// Generate scans opts.NotesDir and renders the summary document. The scan
// tolerates unreadable directories (counted in Stats); an empty tree comes
// back as booktree.ErrEmptyTree with a nil Result.
func Generate(opts config.Options, log *slog.Logger) (*Result, error) {
	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	builder := &booktree.Builder{
		OutputFile: opts.OutputFile,
		Resolver:   &title.Resolver{MDHeader: opts.MDHeader},
		Log:        log,
	}
	tree, stats, err := builder.Build(opts.NotesDir)
	if err != nil {
		return nil, err
	}

	tree.Children = booktree.ApplySort(tree.Children, opts.Sort)

	return &Result{
		Document: render.Render(tree, format, opts.Title),
		Tree:     tree,
		Stats:    stats,
	}, nil
}
