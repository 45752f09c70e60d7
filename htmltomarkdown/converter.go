// Package htmltomarkdown renders archived fragments as Markdown for reading.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/lexarchive"
)

// Ensure Converter implements lexarchive.Converter at compile time.
var _ lexarchive.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Tables are kept because dictionary
// sections carry inflection tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an archived fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", lexarchive.Errorf(lexarchive.EINVALID, "empty fragment")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", lexarchive.Errorf(lexarchive.EINTERNAL, "convert fragment: %v", err)
	}

	return strings.TrimSpace(md), nil
}
