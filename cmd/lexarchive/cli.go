package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/lexarchive"
	"github.com/fwojciec/lexarchive/harvest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    lexarchive.Config
	Archive   lexarchive.ArchiveService
	Entries   lexarchive.EntryLister
	Harvester *harvest.Harvester
	Converter lexarchive.Converter
	Writer    lexarchive.FragmentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"LEXARCHIVE_DB" help:"Archive database path"`
	Config  string `env:"LEXARCHIVE_CONFIG" help:"Config file path"`
	Verbose bool   `short:"v" help:"Log every fetch and store operation"`

	Harvest HarvestCmd `cmd:"" help:"Fetch pages and archive their section"`
	List    ListCmd    `cmd:"" help:"List archived entries"`
	Show    ShowCmd    `cmd:"" help:"Print an archived fragment"`
	Export  ExportCmd  `cmd:"" help:"Write every archived fragment to a directory"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs to harvest"`
	Relay       string        `help:"Prefix prepended to every fetched URL"`
	Timeout     time.Duration `help:"Per-page fetch timeout (default 30s)"`
	Render      bool          `help:"Render pages in headless Chrome"`
	SectionOnly bool          `help:"Store only the section, without the page copy"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL      string `arg:"" help:"Archived page URL"`
	Markdown bool   `short:"m" help:"Render the fragment as Markdown"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir      string `arg:"" type:"path" help:"Output directory"`
	Markdown bool   `short:"m" help:"Write Markdown with frontmatter instead of HTML"`
}
