package render

import (
	"fmt"
	"strings"

	"github.com/dgallion1/booksum/internal/booktree"
)

// Format selects the summary flavor.
type Format string

const (
	FormatMD  Format = "md"  // mdBook: "-" bullets, sections linked to their README
	FormatGit Format = "git" // GitBook: "*" bullets, section titles unlinked
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMD, FormatGit:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want md or git)", s)
}

func (f Format) bullet() byte {
	if f == FormatGit {
		return '*'
	}
	return '-'
}

// Four spaces per nesting level; both mdBook and GitBook re-parse this.
const indent = "    "

// Render serializes a sorted tree into a summary document: a title line,
// a blank line, then one list line per chapter. Rendering is pure, so the
// same tree, format and title always produce identical bytes.
func Render(tree *booktree.Chapter, format Format, title string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, c := range tree.Children {
		writeChapter(&b, c, format, 0)
	}
	return b.String()
}

func writeChapter(b *strings.Builder, c *booktree.Chapter, format Format, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
	b.WriteByte(format.bullet())
	b.WriteByte(' ')
	switch {
	case !c.IsSection:
		fmt.Fprintf(b, "[%s](%s)", c.Title, c.Path)
	case format == FormatMD && c.IndexPath != "":
		fmt.Fprintf(b, "[%s](%s)", c.Title, c.IndexPath)
	default:
		b.WriteString(c.Title)
	}
	b.WriteByte('\n')

	for _, child := range c.Children {
		writeChapter(b, child, format, depth+1)
	}
}
