// Package content supplies the text of every page: built-in defaults that can
// be overridden per route by plain text files in a content directory.
package content

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jagjit/cosmos-folio/route"
)

const (
	// MaxLineWidth is the widest line a page renders, in terminal cells
	MaxLineWidth = 72
	// HeadingPrefix marks a section heading line
	HeadingPrefix = "## "
	// TitlePrefix marks the page title line
	TitlePrefix = "# "
)

// CommentPrefixes identify lines dropped from content files
var CommentPrefixes = []string{"//", ";"}

// Manager resolves pages for routes
type Manager struct {
	dir   string
	pages map[string]Page
}

// NewManager starts with the built-in pages, dir may be empty
func NewManager(dir string) *Manager {
	pages := make(map[string]Page, len(defaultPages))
	for k, v := range defaultPages {
		pages[k] = v
	}
	return &Manager{dir: dir, pages: pages}
}

// FileName maps a route onto its content file name
func FileName(path string) string {
	if route.IsHome(path) {
		return "home.txt"
	}
	return strings.TrimPrefix(path, "/") + ".txt"
}

// Load replaces built-in pages with files found in the content directory
// A missing directory or file is not an error; a malformed file is
func (m *Manager) Load() error {
	if m.dir == "" {
		return nil
	}
	if _, err := os.Stat(m.dir); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("content directory does not exist, using built-in pages", "dir", m.dir)
		return nil
	}

	for _, path := range route.Order {
		file := filepath.Join(m.dir, FileName(path))
		data, err := os.ReadFile(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read content %s: %w", file, err)
		}
		page, err := ParsePage(path, data)
		if err != nil {
			return fmt.Errorf("parse content %s: %w", file, err)
		}
		m.pages[path] = page
		slog.Debug("loaded content file", "route", path, "file", file, "sections", len(page.Sections))
	}
	return nil
}

// Page returns the page for path, unknown routes get an empty page
func (m *Manager) Page(path string) Page {
	if p, ok := m.pages[path]; ok {
		return p
	}
	return Page{Route: path, Title: route.Title(path)}
}

// ChildCount is the number of staggered sections on path
func (m *Manager) ChildCount(path string) int {
	return len(m.Page(path).Sections)
}

// ParsePage reads a content file: optional "# Title", blank lines separate
// sections, "## " starts a section heading, comment lines are skipped
func ParsePage(path string, data []byte) (Page, error) {
	page := Page{Route: path, Title: route.Title(path)}
	var cur *Section

	flush := func() {
		if cur != nil && (cur.Heading != "" || len(cur.Lines) > 0) {
			page.Sections = append(page.Sections, *cur)
		}
		cur = nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case isCommentLine(line):
			continue
		case line == "":
			flush()
		case strings.HasPrefix(line, HeadingPrefix):
			flush()
			cur = &Section{Heading: strings.TrimSpace(strings.TrimPrefix(line, HeadingPrefix))}
		case strings.HasPrefix(line, TitlePrefix):
			page.Title = strings.TrimSpace(strings.TrimPrefix(line, TitlePrefix))
		default:
			if cur == nil {
				cur = &Section{}
			}
			cur.Lines = append(cur.Lines, Wrap(line, MaxLineWidth)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return Page{}, err
	}
	flush()

	if page.Title == "" {
		return Page{}, fmt.Errorf("empty title for %s", path)
	}
	return page, nil
}

func isCommentLine(line string) bool {
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Wrap breaks text on spaces so no line exceeds width cells; a single word wider than width is truncated
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder
	used := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			w = runewidth.Truncate(w, width, "…")
			ww = runewidth.StringWidth(w)
		}
		switch {
		case used == 0:
			b.WriteString(w)
			used = ww
		case used+1+ww <= width:
			b.WriteByte(' ')
			b.WriteString(w)
			used += 1 + ww
		default:
			lines = append(lines, b.String())
			b.Reset()
			b.WriteString(w)
			used = ww
		}
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}
