package title

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromName(t *testing.T) {
	r := &Resolver{}

	cases := []struct {
		in   string
		want string
	}{
		{"01-intro.md", "Intro"},
		{"2_setup.md", "Setup"},
		{"file1.md", "File1"},
		{"First_part_of_part_2.md", "First Part Of Part 2"},
		{"WritingIsGood.md", "WritingIsGood"},
		{"my-great-notes.md", "My Great Notes"},
		{"tech", "Tech"},
		{"personal_stuff", "Personal Stuff"},
	}

	for _, tc := range cases {
		if got := r.FromName(tc.in); got != tc.want {
			t.Errorf("FromName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFromName_OnlyPrefix(t *testing.T) {
	r := &Resolver{}
	// A name that strips down to nothing falls back to the raw name.
	if got := r.FromName("01-"); got != "01-" {
		t.Errorf("FromName(%q) = %q, want the raw name back", "01-", got)
	}
}

func TestResolve_MDHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "01-intro.md")
	content := "# Getting Started\n\nSome intro text.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r := &Resolver{MDHeader: true}
	if got := r.Resolve(path, "01-intro.md", false); got != "Getting Started" {
		t.Errorf("expected heading title %q, got %q", "Getting Started", got)
	}

	// Mode off: filename wins even when a heading exists.
	off := &Resolver{MDHeader: false}
	if got := off.Resolve(path, "01-intro.md", false); got != "Intro" {
		t.Errorf("expected name-derived title %q, got %q", "Intro", got)
	}
}

func TestResolve_MDHeaderFallbacks(t *testing.T) {
	dir := t.TempDir()
	r := &Resolver{MDHeader: true}

	// No heading in the file.
	plain := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(plain, []byte("just text, no heading\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if got := r.Resolve(plain, "notes.md", false); got != "Notes" {
		t.Errorf("expected fallback title %q, got %q", "Notes", got)
	}

	// Unreadable file is not fatal.
	missing := filepath.Join(dir, "gone.md")
	if got := r.Resolve(missing, "gone.md", false); got != "Gone" {
		t.Errorf("expected fallback title %q, got %q", "Gone", got)
	}

	// Directories never read content.
	if got := r.Resolve(dir, "my_chapter", true); got != "My Chapter" {
		t.Errorf("expected directory title %q, got %q", "My Chapter", got)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")
	if err := os.WriteFile(path, []byte("## Deep Heading\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r := &Resolver{MDHeader: true}
	first := r.Resolve(path, "a.md", false)
	for i := 0; i < 5; i++ {
		if got := r.Resolve(path, "a.md", false); got != first {
			t.Fatalf("resolution not deterministic: %q vs %q", got, first)
		}
	}
	if first != "Deep Heading" {
		t.Errorf("expected %q, got %q", "Deep Heading", first)
	}
}
