package lexarchive

// Default section boundary markers.
const (
	DefaultAnchorID = "Latin"
	DefaultStopTag  = "h2"
)

// SectionExtractor slices a section out of a page.
type SectionExtractor interface {
	// ExtractSection parses html, locates the anchor element (the first
	// element with a direct child carrying the anchor id), and returns the
	// serialized run of element siblings that follow it up to, but not
	// including, the next stop-tag sibling.
	// Returns *AnchorNotFoundError if no anchor exists.
	ExtractSection(html string) (string, error)
}
