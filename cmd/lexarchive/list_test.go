package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/lexarchive"
	main "github.com/fwojciec/lexarchive/cmd/lexarchive"
	"github.com/fwojciec/lexarchive/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries with size, hash and time", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryLister{
			EntriesFn: func(_ context.Context) ([]*lexarchive.Entry, error) {
				return []*lexarchive.Entry{
					{
						Key:         "https://dict.example/amo",
						ContentHash: "a1b2c3d4e5f60718",
						Size:        42,
						StoredAt:    time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://dict.example/amo  42  a1b2c3d4e5f60718  2026-03-01T09:30:00Z\n", stdout.String())
	})

	t.Run("shows helpful message when archive is empty", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryLister{
			EntriesFn: func(_ context.Context) ([]*lexarchive.Entry, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No entries archived")
	})

	t.Run("returns error when listing fails", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryLister{
			EntriesFn: func(_ context.Context) ([]*lexarchive.Entry, error) {
				return nil, errors.New("database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: entries,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: database locked")
	})
}
