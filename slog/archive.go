package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lexarchive"
)

// Ensure LoggingArchive implements lexarchive.ArchiveService.
var _ lexarchive.ArchiveService = (*LoggingArchive)(nil)

// LoggingArchive wraps an ArchiveService with logging of lookups and writes.
type LoggingArchive struct {
	next   lexarchive.ArchiveService
	logger *slog.Logger
}

// NewLoggingArchive creates a new LoggingArchive.
func NewLoggingArchive(next lexarchive.ArchiveService, logger *slog.Logger) *LoggingArchive {
	return &LoggingArchive{next: next, logger: logger}
}

// Has delegates to the wrapped archive and logs the answer.
func (a *LoggingArchive) Has(ctx context.Context, key string) (has bool, err error) {
	defer func(begin time.Time) {
		a.logger.Info("archive has",
			"key", key,
			"archived", has,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Has(ctx, key)
}

// Get delegates to the wrapped archive.
func (a *LoggingArchive) Get(ctx context.Context, key string) (string, bool, error) {
	return a.next.Get(ctx, key)
}

// Put delegates to the wrapped archive and logs the write.
func (a *LoggingArchive) Put(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		a.logger.Info("archive put",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Put(ctx, key, value)
}

// Keys delegates to the wrapped archive.
func (a *LoggingArchive) Keys(ctx context.Context) ([]string, error) {
	return a.next.Keys(ctx)
}
