package lexarchive

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// tagNameRE matches a bare HTML tag name.
var tagNameRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is sent with every HTTP request.
const DefaultUserAgent = "lexarchive/1.0 (+https://github.com/fwojciec/lexarchive)"

// Config holds settings shared by the CLI and the harvester.
type Config struct {
	// DBPath is the SQLite archive file. Use ":memory:" for a throwaway archive.
	DBPath string

	// RelayPrefix is prepended to every fetched URL when non-empty.
	RelayPrefix string

	FetchTimeout time.Duration
	UserAgent    string

	// Section boundary markers.
	AnchorID string
	StopTag  string

	// PageCopy keeps a full copy of the parsed page at the start of every
	// extracted fragment.
	PageCopy bool
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:       DefaultDBPath(),
		FetchTimeout: DefaultFetchTimeout,
		UserAgent:    DefaultUserAgent,
		AnchorID:     DefaultAnchorID,
		StopTag:      DefaultStopTag,
		PageCopy:     true,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return Errorf(EINVALID, "database path required")
	}
	if c.FetchTimeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.AnchorID == "" {
		return Errorf(EINVALID, "anchor id required")
	}
	if !tagNameRE.MatchString(c.StopTag) {
		return Errorf(EINVALID, "invalid stop tag %q", c.StopTag)
	}
	if c.RelayPrefix != "" && !strings.HasPrefix(c.RelayPrefix, "http://") && !strings.HasPrefix(c.RelayPrefix, "https://") {
		return Errorf(EINVALID, "relay prefix must be an http(s) URL, got %q", c.RelayPrefix)
	}
	return nil
}

// DefaultDir returns the directory holding the archive and config file.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".lexarchive")
}

// DefaultDBPath returns the archive path, honouring LEXARCHIVE_DB.
func DefaultDBPath() string {
	if path := os.Getenv("LEXARCHIVE_DB"); path != "" {
		return path
	}
	return filepath.Join(DefaultDir(), "archive.db")
}

// DefaultConfigPath returns the config file path, honouring LEXARCHIVE_CONFIG.
func DefaultConfigPath() string {
	if path := os.Getenv("LEXARCHIVE_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(DefaultDir(), "config.toml")
}
