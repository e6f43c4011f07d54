package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	docType, err := farmdocs.ParseDocType(c.Type)
	if err != nil {
		return err
	}

	results, err := deps.Search.Search(deps.Ctx, c.Query, farmdocs.SearchOptions{
		DocType: docType,
		Limit:   c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmdocs.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	for i, result := range results {
		doc := result.Document
		fmt.Fprintf(deps.Stdout, "%d. %s  [%s]  %s\n", i+1, doc.Title, doc.DocType, doc.ID)
		for _, highlight := range result.Highlights {
			fmt.Fprintf(deps.Stdout, "   %s\n", highlight)
		}
	}

	return nil
}
