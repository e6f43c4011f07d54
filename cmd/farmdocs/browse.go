package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	docType, err := farmdocs.ParseDocType(c.Type)
	if err != nil {
		return err
	}

	docs, err := deps.Search.BrowseSection(deps.Ctx, c.Section, docType)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmdocs.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for _, doc := range docs {
		section := doc.Section
		if section == "" {
			section = "-"
		}
		fmt.Fprintf(deps.Stdout, "%-40s %-24s %s\n", doc.Title, section, doc.ID)
	}

	return nil
}
