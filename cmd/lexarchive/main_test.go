package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/lexarchive"
	main "github.com/fwojciec/lexarchive/cmd/lexarchive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amoPage = `<html><head><title>amo</title></head><body>` +
	`<h2><span id="Latin">Latin</span></h2><p>amō, amāre</p><ol><li>to love</li></ol>` +
	`<h2><span id="Italian">Italian</span></h2><p>amo</p>` +
	`</body></html>`

// newDictServer serves amoPage at /amo, a page without the anchor at /plain
// and 404 for everything else.
func newDictServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/amo", "/amare":
			_, _ = w.Write([]byte(amoPage))
		case "/plain":
			_, _ = w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestMain returns a Main with its own database and no config file.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	dir := t.TempDir()
	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "archive.db")
	m.ConfigPath = filepath.Join(dir, "config.toml")
	return m
}

func run(t *testing.T, m *main.Main, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_HarvestThenShow(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t)
	m := newTestMain(t)
	url := srv.URL + "/amo"

	stdout, _, err := run(t, m, "harvest", url)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "harvested "+url), stdout)

	stdout, _, err = run(t, m, "harvest", url)
	require.NoError(t, err)
	assert.Equal(t, "skipped "+url+"\n", stdout)

	stdout, _, err = run(t, m, "show", url)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "<html>"), "fragment should start with the page copy")
	assert.Contains(t, stdout, "<p>amō, amāre</p><ol><li>to love</li></ol>")

	stdout, _, err = run(t, m, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, url)
}

func TestMain_Run_HarvestSectionOnly(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t)
	m := newTestMain(t)
	url := srv.URL + "/amo"

	_, _, err := run(t, m, "harvest", "--section-only", url)
	require.NoError(t, err)

	stdout, _, err := run(t, m, "show", url)
	require.NoError(t, err)
	assert.Equal(t, "<p>amō, amāre</p><ol><li>to love</li></ol>\n", stdout)

	stdout, _, err = run(t, m, "show", "--markdown", url)
	require.NoError(t, err)
	assert.Contains(t, stdout, "amō, amāre")
	assert.Contains(t, stdout, "1. to love")
}

func TestMain_Run_HarvestBatch(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t)
	m := newTestMain(t)

	_, _, err := run(t, m, "harvest", srv.URL+"/amo")
	require.NoError(t, err)

	stdout, stderr, err := run(t, m, "harvest",
		srv.URL+"/amo",
		srv.URL+"/amare",
		srv.URL+"/plain",
		srv.URL+"/missing",
	)

	require.Error(t, err)
	assert.Contains(t, stdout, "[1/4] skipped "+srv.URL+"/amo")
	assert.Contains(t, stdout, "[2/4] harvested "+srv.URL+"/amare")
	assert.Contains(t, stdout, "Harvested 1, skipped 1, failed 2")
	assert.Contains(t, stderr, `[3/4] error: anchor "Latin" not found in `+srv.URL+"/plain")
	assert.Contains(t, stderr, "[4/4] error: fetch "+srv.URL+"/missing: HTTP 404")

	stdout, _, err = run(t, m, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, srv.URL+"/amare")
	assert.NotContains(t, stdout, srv.URL+"/plain")
}

func TestMain_Run_VerboseLogsWithRunID(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t)
	m := newTestMain(t)

	_, stderr, err := run(t, m, "--verbose", "harvest", srv.URL+"/amo")

	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=fetch")
	assert.Contains(t, stderr, "msg=\"archive put\"")
	assert.Contains(t, stderr, "run=")
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t)
	m := newTestMain(t)
	require.NoError(t, os.WriteFile(m.ConfigPath, []byte("page_copy = false\nanchor_id = \"Italian\"\n"), 0o644))
	url := srv.URL + "/amo"

	_, _, err := run(t, m, "harvest", url)
	require.NoError(t, err)

	stdout, _, err := run(t, m, "show", url)
	require.NoError(t, err)
	assert.Equal(t, "<p>amo</p>\n", stdout)
}

func TestMain_Run_InvalidConfig(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	require.NoError(t, os.WriteFile(m.ConfigPath, []byte("timeout = \"soon\"\n"), 0o644))

	_, stderr, err := run(t, m, "list")

	require.Error(t, err)
	assert.Equal(t, lexarchive.EINVALID, lexarchive.ErrorCode(err))
	assert.Contains(t, stderr, "Hint:")
}

func TestMain_Run_ShowMissing(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	_, stderr, err := run(t, m, "show", "https://dict.example/absent")

	require.Error(t, err)
	assert.Equal(t, lexarchive.ENOTFOUND, lexarchive.ErrorCode(err))
	assert.Contains(t, stderr, "no archived entry")
}

func TestMain_Run_Export(t *testing.T) {
	t.Parallel()

	srv := newDictServer(t)
	m := newTestMain(t)
	out := t.TempDir()

	_, _, err := run(t, m, "harvest", "--section-only", srv.URL+"/amo")
	require.NoError(t, err)

	stdout, _, err := run(t, m, "export", "--markdown", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 1 entries")

	host := strings.TrimPrefix(srv.URL, "http://")
	data, err := os.ReadFile(filepath.Join(out, host, "amo.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: "+srv.URL+"/amo")
	assert.Contains(t, string(data), "amō, amāre")
}

func TestMain_Run_DatabaseDirectoryNotCreatable(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))
	m.DBPath = filepath.Join(blocker, "sub", "archive.db")

	_, stderr, err := run(t, m, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create database directory")
	assert.Contains(t, stderr, "Hint: Set LEXARCHIVE_DB or --db")
}
