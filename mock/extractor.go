package mock

import "github.com/fwojciec/lexarchive"

var _ lexarchive.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of lexarchive.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionFn func(html string) (string, error)
}

func (e *SectionExtractor) ExtractSection(html string) (string, error) {
	return e.ExtractSectionFn(html)
}
