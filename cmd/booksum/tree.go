package main

import (
	"github.com/dgallion1/booksum/internal/booktree"
	"github.com/xlab/treeprint"
)

// dumpTree renders the scanned tree for verbose output.
func dumpTree(tree *booktree.Chapter, title string) string {
	root := treeprint.NewWithRoot(title)
	addBranches(root, tree.Children)
	return root.String()
}

func addBranches(branch treeprint.Tree, chapters []*booktree.Chapter) {
	for _, c := range chapters {
		if c.IsSection {
			addBranches(branch.AddBranch(c.Title), c.Children)
		} else {
			branch.AddMetaNode(c.Path, c.Title)
		}
	}
}
