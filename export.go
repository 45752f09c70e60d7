package lexarchive

import "context"

// ExportFormat selects how exported fragments are rendered.
type ExportFormat string

// Export formats.
const (
	ExportHTML     ExportFormat = "html"
	ExportMarkdown ExportFormat = "markdown"
)

// FragmentWriter writes an archived fragment outside the archive and returns
// where it was written.
type FragmentWriter interface {
	WriteFragment(ctx context.Context, e *Entry, content string, format ExportFormat) (string, error)
}
