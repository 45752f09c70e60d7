package lexarchive

// Converter converts HTML to Markdown for display.
type Converter interface {
	// Convert transforms an archived fragment into Markdown.
	Convert(html string) (string, error)
}
