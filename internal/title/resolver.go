package title

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver derives display titles for scanned entries.
type Resolver struct {
	// MDHeader prefers a markdown file's first heading over its filename.
	MDHeader bool
}

// orderPrefix matches a leading number used purely for filesystem sort
// order, e.g. "01-intro.md" or "2_setup.md".
var orderPrefix = regexp.MustCompile(`^\d+[-_. ]+`)

var separators = strings.NewReplacer("_", " ", "-", " ")

// Resolve returns the display title for a filesystem entry. Directories
// always title from their name. Files use the first markdown heading when
// MDHeader is set, falling back to the name-derived title when the file
// is unreadable or has no heading.
func (r *Resolver) Resolve(fullPath, name string, isDir bool) string {
	if isDir || !r.MDHeader {
		return r.FromName(name)
	}
	src, err := os.ReadFile(fullPath)
	if err != nil {
		return r.FromName(name)
	}
	if h := firstHeading(src); h != "" {
		return h
	}
	return r.FromName(name)
}

// FromName derives a title from a file or directory name: the ordering
// prefix and extension are stripped, separators become spaces, and each
// word is capitalized.
func (r *Resolver) FromName(name string) string {
	base := orderPrefix.ReplaceAllString(name, "")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = separators.Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return name
	}
	// NoLower keeps interior capitals, so "WritingIsGood" survives.
	return cases.Title(language.English, cases.NoLower).String(base)
}

// firstHeading returns the text of the first heading in a markdown
// document, or "" when there is none.
func firstHeading(src []byte) string {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return strings.TrimSpace(string(h.Text(src)))
		}
	}
	return ""
}
