// Package fs exports archived fragments as files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lexarchive"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://en.wiktionary.org/wiki/amo → en.wiktionary.org/wiki/amo.html
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", lexarchive.Errorf(lexarchive.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", lexarchive.Errorf(lexarchive.EINVALID, "URL %q has no host", rawURL)
	}

	p := u.Path

	// Trailing slash becomes index in that directory
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}

	// Clean against a rooted path so ".." cannot climb above the host.
	p = strings.TrimPrefix(path.Clean("/"+p), "/")

	return filepath.Join(u.Host, filepath.FromSlash(p)) + ext, nil
}

// FormatFragment prefixes content with YAML frontmatter describing e.
func FormatFragment(e *lexarchive.Entry, content string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(e.Key)
	b.WriteString("\nhash: ")
	b.WriteString(e.ContentHash)
	b.WriteString("\nstored: ")
	b.WriteString(e.StoredAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	return b.String()
}

// Ensure Writer implements lexarchive.FragmentWriter at compile time.
var _ lexarchive.FragmentWriter = (*Writer)(nil)

// Writer writes fragments as files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteFragment writes content for e and returns the file path. Markdown
// files get frontmatter; other formats are written verbatim.
func (w *Writer) WriteFragment(_ context.Context, e *lexarchive.Entry, content string, format lexarchive.ExportFormat) (string, error) {
	ext := ".html"
	if format == lexarchive.ExportMarkdown {
		ext = ".md"
		content = FormatFragment(e, content)
	}

	relPath, err := URLToPath(e.Key, ext)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
