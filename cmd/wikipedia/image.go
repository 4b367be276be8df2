package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wikipedia"
)

// Run executes the image command.
func (c *ImageCmd) Run(deps *Dependencies) error {
	title := strings.TrimSpace(c.Title)
	if title != "" && !strings.Contains(title, ":") {
		title = "File:" + title
	}

	page, err := deps.Pages.FindImage(deps.Ctx, title, wikipedia.WithImageSize(c.Width, c.Height))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	if page.ImageURL() == "" {
		fmt.Fprintf(deps.Stderr, "error: %q has no image information\n", page.Title())
		return wikipedia.Errorf(wikipedia.ENOTFOUND, "%q has no image information", page.Title())
	}

	fmt.Fprintln(deps.Stdout, page.ImageURL())
	if thumb := page.ImageThumbURL(); thumb != "" && thumb != page.ImageURL() {
		fmt.Fprintf(deps.Stdout, "thumbnail: %s\n", thumb)
	}
	if desc := page.ImageDescriptionURL(); desc != "" {
		fmt.Fprintf(deps.Stdout, "description: %s\n", desc)
	}

	return nil
}
