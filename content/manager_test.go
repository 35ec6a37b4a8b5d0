package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/jagjit/cosmos-folio/route"
)

func TestDefaultsCoverEveryRoute(t *testing.T) {
	m := NewManager("")
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, path := range route.Order {
		p := m.Page(path)
		if p.Route != path || p.Title == "" {
			t.Errorf("Route %s: unexpected page %+v", path, p)
		}
	}
	if m.ChildCount(route.Home) != 0 {
		t.Errorf("Expected home to have no staggered sections, got %d", m.ChildCount(route.Home))
	}
	if m.ChildCount(route.About) == 0 {
		t.Error("Expected about sections")
	}
}

func TestParsePage(t *testing.T) {
	data := []byte(`# WHO I AM
// drafts are ignored
; so is this

First paragraph line one.
Line two.

## Skills
Go and TypeScript.

`)
	p, err := ParsePage(route.About, data)
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	if p.Title != "WHO I AM" {
		t.Errorf("Expected title, got %q", p.Title)
	}
	if len(p.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d: %+v", len(p.Sections), p.Sections)
	}
	if len(p.Sections[0].Lines) != 2 || p.Sections[0].Heading != "" {
		t.Errorf("Unexpected first section %+v", p.Sections[0])
	}
	if p.Sections[1].Heading != "Skills" || p.Sections[1].Lines[0] != "Go and TypeScript." {
		t.Errorf("Unexpected second section %+v", p.Sections[1])
	}
}

func TestParsePageDefaultTitle(t *testing.T) {
	p, err := ParsePage(route.Projects, []byte("one\n"))
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	if p.Title != "Projects" {
		t.Errorf("Expected route title, got %q", p.Title)
	}
}

func TestWrap(t *testing.T) {
	text := strings.Repeat("orbit ", 30)
	lines := Wrap(text, 20)
	if len(lines) < 2 {
		t.Fatalf("Expected wrapped lines, got %v", lines)
	}
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > 20 {
			t.Errorf("Line %q is %d cells wide", l, w)
		}
	}
	if got := Wrap("   ", 10); got != nil {
		t.Errorf("Expected nil for blank text, got %v", got)
	}
	long := Wrap(strings.Repeat("x", 50), 10)
	if len(long) != 1 || runewidth.StringWidth(long[0]) > 10 {
		t.Errorf("Expected truncated single word, got %v", long)
	}
}

func TestLoadOverridesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "projects.txt"), []byte("# WORK\n\n## One\nA\n\n## Two\nB\n\n## Three\nC\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := m.Page(route.Projects).Title; got != "WORK" {
		t.Errorf("Expected file title, got %q", got)
	}
	if got := m.ChildCount(route.Projects); got != 3 {
		t.Errorf("Expected 3 sections, got %d", got)
	}
	// Routes without files keep defaults
	if got := m.Page(route.About).Title; got != "ABOUT ME" {
		t.Errorf("Expected default about page, got %q", got)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	if err := m.Load(); err != nil {
		t.Errorf("Expected missing directory to be tolerated, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	if FileName(route.Home) != "home.txt" || FileName(route.Experience) != "experience.txt" {
		t.Error("Unexpected content file names")
	}
}
