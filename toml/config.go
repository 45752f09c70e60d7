// Package toml loads lexarchive configuration files.
package toml

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/fwojciec/lexarchive"
	"github.com/pelletier/go-toml/v2"
)

// file mirrors the on-disk layout. Pointer fields distinguish "unset" from
// zero values so that only present keys override defaults.
type file struct {
	DB        *string `toml:"db"`
	Relay     *string `toml:"relay"`
	Timeout   *string `toml:"timeout"`
	UserAgent *string `toml:"user_agent"`
	AnchorID  *string `toml:"anchor_id"`
	StopTag   *string `toml:"stop_tag"`
	PageCopy  *bool   `toml:"page_copy"`
}

// LoadConfig reads path and applies its settings on top of base.
// A missing file is not an error; base is returned unchanged.
func LoadConfig(path string, base lexarchive.Config) (lexarchive.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	} else if err != nil {
		return base, err
	}
	return ParseConfig(data, base)
}

// ParseConfig decodes TOML data and applies it on top of base.
func ParseConfig(data []byte, base lexarchive.Config) (lexarchive.Config, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return base, lexarchive.Errorf(lexarchive.EINVALID, "invalid config: %v", err)
	}

	cfg := base
	if f.DB != nil {
		cfg.DBPath = *f.DB
	}
	if f.Relay != nil {
		cfg.RelayPrefix = *f.Relay
	}
	if f.Timeout != nil {
		d, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return base, lexarchive.Errorf(lexarchive.EINVALID, "invalid timeout %q: %v", *f.Timeout, err)
		}
		cfg.FetchTimeout = d
	}
	if f.UserAgent != nil {
		cfg.UserAgent = *f.UserAgent
	}
	if f.AnchorID != nil {
		cfg.AnchorID = *f.AnchorID
	}
	if f.StopTag != nil {
		cfg.StopTag = *f.StopTag
	}
	if f.PageCopy != nil {
		cfg.PageCopy = *f.PageCopy
	}

	return cfg, nil
}
