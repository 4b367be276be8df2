package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/wikipedia"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config    wikipedia.Config
	Pages     wikipedia.PageService
	Extractor wikipedia.Extractor
	Converter wikipedia.Converter

	// NewStore opens an export destination named name under dir.
	NewStore func(dir, name string) wikipedia.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Domain            string        `short:"d" help:"Wiki domain, e.g. de.wikipedia.org"`
	UserAgent         string        `help:"User-Agent header sent to the API"`
	NoFollowRedirects bool          `help:"Return redirect pages instead of their targets"`
	Timeout           time.Duration `help:"HTTP timeout per request (default 10s)"`
	RateLimit         float64       `help:"Maximum API requests per second"`
	Verbose           bool          `short:"v" help:"Log API requests to stderr"`
	Config            string        `type:"path" help:"Path to a YAML config file"`

	Page   PageCmd   `cmd:"" help:"Print an article"`
	Image  ImageCmd  `cmd:"" help:"Print the file URL of an image"`
	Random RandomCmd `cmd:"" help:"Print random article titles"`
	Export ExportCmd `cmd:"" help:"Export articles as Markdown files"`
}

// apply overrides settings with the flags that were set.
func (c *CLI) apply(s *Settings) {
	if c.Domain != "" {
		s.Wiki.Domain = c.Domain
	}
	if c.UserAgent != "" {
		s.Wiki.UserAgent = c.UserAgent
	}
	if c.NoFollowRedirects {
		s.Wiki.FollowRedirects = false
	}
	if c.Timeout > 0 {
		s.Timeout = c.Timeout
	}
	if c.RateLimit > 0 {
		s.RateLimit = c.RateLimit
	}
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Title      string `arg:"" help:"Article title"`
	Summary    bool   `short:"s" help:"Print only the first paragraph"`
	Sentences  int    `help:"Limit the summary to N sentences"`
	Characters int    `help:"Limit the summary to N characters"`
	Section    int    `default:"-1" help:"Only fetch section N of the wikitext (0 is the lead)"`
	Format     string `short:"f" enum:"text,wikitext,markdown,json" default:"text" help:"Output format (text, wikitext, markdown, json)"`
	Images     bool   `help:"Also list image file URLs"`
	Sections   bool   `help:"Print the section outline instead of the body"`
}

// ImageCmd is the "image" subcommand.
type ImageCmd struct {
	Title  string `arg:"" help:"File title, with or without the File: prefix"`
	Width  int    `help:"Thumbnail width in pixels"`
	Height int    `help:"Thumbnail height in pixels"`
}

// RandomCmd is the "random" subcommand.
type RandomCmd struct {
	Count int `short:"n" default:"1" help:"Number of distinct articles"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name   string   `arg:"" help:"Name of the output directory"`
	Titles []string `arg:"" help:"Article titles to export"`
	Path   string   `short:"p" default:"." help:"Base path for output"`
}
