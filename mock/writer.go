package mock

import (
	"context"

	"github.com/fwojciec/lexarchive"
)

var _ lexarchive.FragmentWriter = (*FragmentWriter)(nil)

// FragmentWriter is a mock implementation of lexarchive.FragmentWriter.
type FragmentWriter struct {
	WriteFragmentFn func(ctx context.Context, e *lexarchive.Entry, content string, format lexarchive.ExportFormat) (string, error)
}

func (w *FragmentWriter) WriteFragment(ctx context.Context, e *lexarchive.Entry, content string, format lexarchive.ExportFormat) (string, error) {
	return w.WriteFragmentFn(ctx, e, content, format)
}
