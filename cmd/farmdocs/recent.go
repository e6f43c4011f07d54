package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs"
)

// Run executes the recent command.
func (c *RecentCmd) Run(deps *Dependencies) error {
	if deps.SearchLog == nil {
		fmt.Fprintln(deps.Stdout, "The search log requires an index database. Run 'farmdocs index' first.")
		return nil
	}

	entries, err := deps.SearchLog.RecentSearches(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmdocs.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches logged yet.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %-30q %d results\n",
			entry.SearchedAt.Format("2006-01-02 15:04:05"), entry.Query, entry.ResultCount)
	}

	return nil
}
