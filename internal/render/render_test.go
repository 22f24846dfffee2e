package render

import (
	"testing"

	"github.com/dgallion1/booksum/internal/booktree"
)

func fixtureTree() *booktree.Chapter {
	return &booktree.Chapter{
		IsSection: true,
		Children: []*booktree.Chapter{
			{Title: "File1", Path: "file1.md"},
			{
				Title:     "Chapter1",
				Path:      "chapter1",
				IsSection: true,
				IndexPath: "chapter1/README.md",
				Children: []*booktree.Chapter{
					{Title: "Intro", Path: "chapter1/01-intro.md"},
					{
						Title:     "Subchap",
						Path:      "chapter1/subchap",
						IsSection: true,
						Children: []*booktree.Chapter{
							{Title: "Info", Path: "chapter1/subchap/info.md"},
						},
					},
				},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("md"); err != nil || f != FormatMD {
		t.Errorf("ParseFormat(md) = %v, %v", f, err)
	}
	if f, err := ParseFormat("GIT"); err != nil || f != FormatGit {
		t.Errorf("ParseFormat(GIT) = %v, %v", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("expected an error for unknown format")
	}
}

func TestRender_MD(t *testing.T) {
	want := `# Summary

- [File1](file1.md)
- [Chapter1](chapter1/README.md)
    - [Intro](chapter1/01-intro.md)
    - Subchap
        - [Info](chapter1/subchap/info.md)
`
	got := Render(fixtureTree(), FormatMD, "Summary")
	if got != want {
		t.Errorf("md output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Git(t *testing.T) {
	// GitBook flavor: "*" bullets and unlinked section titles.
	want := `# My Book

* [File1](file1.md)
* Chapter1
    * [Intro](chapter1/01-intro.md)
    * Subchap
        * [Info](chapter1/subchap/info.md)
`
	got := Render(fixtureTree(), FormatGit, "My Book")
	if got != want {
		t.Errorf("git output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_SectionWithoutIndex(t *testing.T) {
	tree := &booktree.Chapter{
		IsSection: true,
		Children: []*booktree.Chapter{
			{
				Title:     "Part4",
				Path:      "part4",
				IsSection: true,
				Children: []*booktree.Chapter{
					{Title: "File", Path: "part4/file.md"},
				},
			},
		},
	}

	want := `# Summary

- Part4
    - [File](part4/file.md)
`
	if got := Render(tree, FormatMD, "Summary"); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_EmptyTree(t *testing.T) {
	tree := &booktree.Chapter{IsSection: true}
	want := "# Summary\n\n"
	if got := Render(tree, FormatMD, "Summary"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_Deterministic(t *testing.T) {
	tree := fixtureTree()
	first := Render(tree, FormatGit, "Summary")
	for i := 0; i < 5; i++ {
		if got := Render(tree, FormatGit, "Summary"); got != first {
			t.Fatal("rendering is not deterministic")
		}
	}
}
