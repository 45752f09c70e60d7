// Package goquery slices named sections out of HTML pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lexarchive"
	"golang.org/x/net/html"
)

// Ensure SectionExtractor implements lexarchive.SectionExtractor at compile time.
var _ lexarchive.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor extracts the run of sibling elements that follows an
// anchor element, stopping before the next stop-tag sibling.
type SectionExtractor struct {
	anchorID string
	stopTag  string
	pageCopy bool
}

// Option configures a SectionExtractor.
type Option func(*SectionExtractor)

// WithAnchorID sets the id whose parent element marks the section start.
// Defaults to lexarchive.DefaultAnchorID.
func WithAnchorID(id string) Option {
	return func(e *SectionExtractor) {
		e.anchorID = id
	}
}

// WithStopTag sets the sibling tag name that ends the section.
// Matching is case-insensitive. Defaults to lexarchive.DefaultStopTag.
func WithStopTag(tag string) Option {
	return func(e *SectionExtractor) {
		e.stopTag = strings.ToLower(tag)
	}
}

// WithPageCopy controls whether a clone of the whole parsed page is placed
// at the start of every fragment. Enabled by default.
func WithPageCopy(enabled bool) Option {
	return func(e *SectionExtractor) {
		e.pageCopy = enabled
	}
}

// NewSectionExtractor creates a new SectionExtractor.
func NewSectionExtractor(opts ...Option) *SectionExtractor {
	e := &SectionExtractor{
		anchorID: lexarchive.DefaultAnchorID,
		stopTag:  lexarchive.DefaultStopTag,
		pageCopy: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractSection parses markup and returns the serialized section fragment.
//
// The fragment holds, in order: a clone of the root element (unless page
// copy is disabled), then clones of the anchor's following element siblings
// up to but excluding the first stop-tag sibling.
func (e *SectionExtractor) ExtractSection(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", lexarchive.Errorf(lexarchive.EINVALID, "failed to parse HTML: %v", err)
	}

	anchor := findAnchor(doc.Selection, e.anchorID)
	if anchor.Length() == 0 {
		return "", &lexarchive.AnchorNotFoundError{AnchorID: e.anchorID}
	}

	fragment := &html.Node{Type: html.DocumentNode}

	if e.pageCopy {
		appendClone(fragment, doc.Children().First())
	}

	// The stop marker is a tag name, never a selector.
	anchor.NextAll().EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if goquery.NodeName(sel) == e.stopTag {
			return false
		}
		appendClone(fragment, sel)
		return true
	})

	out, err := goquery.NewDocumentFromNode(fragment).Html()
	if err != nil {
		return "", lexarchive.Errorf(lexarchive.EINTERNAL, "failed to render fragment: %v", err)
	}
	return out, nil
}

// findAnchor returns the first element, in document order, that has a
// direct child element whose id equals id.
func findAnchor(root *goquery.Selection, id string) *goquery.Selection {
	return root.Find("*").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.Children().FilterFunction(func(_ int, child *goquery.Selection) bool {
			v, ok := child.Attr("id")
			return ok && v == id
		}).Length() > 0
	}).First()
}

// appendClone deep-clones every node in sel and appends the copies to parent.
func appendClone(parent *html.Node, sel *goquery.Selection) {
	for _, n := range sel.Clone().Nodes {
		parent.AppendChild(n)
	}
}
