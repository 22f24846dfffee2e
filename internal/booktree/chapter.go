package booktree

// Chapter is one node in the generated table of contents.
type Chapter struct {
	Title     string     // Display title (from filename or markdown heading)
	Path      string     // Path relative to the scan root, forward slashes
	IsSection bool       // True for directories (groups of chapters)
	IndexPath string     // Section index file (README), empty if absent
	Children  []*Chapter // Ordered subtree; traversal order is render order
}
