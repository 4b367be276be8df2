package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wikipedia"
	"github.com/fwojciec/wikipedia/bloom"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	if len(c.Titles) == 0 {
		err := wikipedia.Errorf(wikipedia.EINVALID, "at least one title required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	store := deps.NewStore(c.Path, c.Name)

	saved, err := c.export(deps, store)
	if err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", saved, c.Name)
	return nil
}

// export saves every requested article. Titles that resolve to an article
// already saved, for example through a redirect, are skipped.
func (c *ExportCmd) export(deps *Dependencies, store wikipedia.PageStore) (int, error) {
	seen := bloom.NewFilter(uint(len(c.Titles)), 0.001)
	saved := 0

	for _, title := range c.Titles {
		if err := deps.Ctx.Err(); err != nil {
			return saved, err
		}

		page, err := deps.Pages.Find(deps.Ctx, title, wikipedia.WithHTMLExtract())
		if err != nil {
			return saved, err
		}
		if seen.Seen(page.Title()) {
			fmt.Fprintf(deps.Stdout, "Skipped %s (duplicate)\n", title)
			continue
		}

		doc, err := c.document(deps, page)
		if err != nil {
			return saved, err
		}
		if err := store.Save(deps.Ctx, doc); err != nil {
			return saved, err
		}

		fmt.Fprintf(deps.Stdout, "Saved %s\n", page.Title())
		saved++
	}

	return saved, nil
}

func (c *ExportCmd) document(deps *Dependencies, page *wikipedia.Page) (*wikipedia.Document, error) {
	content := "# " + page.Title() + "\n"

	if page.Text() != "" {
		result, err := deps.Extractor.Extract(page.Text())
		if err != nil {
			return nil, err
		}
		md, err := deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			return nil, err
		}
		content += "\n" + md + "\n"
	}

	return &wikipedia.Document{
		Title:     page.Title(),
		SourceURL: page.FullURL(),
		Content:   content,
		FetchedAt: time.Now().UTC(),
	}, nil
}
