package main

import (
	"fmt"

	"github.com/fwojciec/wikipedia"
	"github.com/fwojciec/wikipedia/bloom"
)

// maxRandomAttempts bounds requests per wanted title when the wiki keeps
// returning articles that were already printed.
const maxRandomAttempts = 3

// Run executes the random command.
func (c *RandomCmd) Run(deps *Dependencies) error {
	if c.Count < 1 {
		err := wikipedia.Errorf(wikipedia.EINVALID, "count must be at least 1")
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	seen := bloom.NewFilter(uint(c.Count), 0.001)
	printed := 0
	for attempt := 0; printed < c.Count && attempt < c.Count*maxRandomAttempts; attempt++ {
		page, err := deps.Pages.FindRandom(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
			return err
		}
		if seen.Seen(page.Title()) {
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s\n", page.Title())
		if page.FullURL() != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", page.FullURL())
		}
		printed++
	}

	if printed < c.Count {
		fmt.Fprintf(deps.Stderr, "warning: found %d distinct articles, wanted %d\n", printed, c.Count)
	}
	return nil
}
