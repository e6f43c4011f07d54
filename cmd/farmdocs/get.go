package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/farmdocs"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	doc, err := deps.Search.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title:    %s\n", doc.Title)
	fmt.Fprintf(deps.Stdout, "Type:     %s\n", doc.DocType)
	if doc.Section != "" {
		fmt.Fprintf(deps.Stdout, "Section:  %s\n", doc.Section)
	}
	fmt.Fprintf(deps.Stdout, "URL:      %s\n", doc.URL)
	if len(doc.Keywords) > 0 {
		fmt.Fprintf(deps.Stdout, "Keywords: %s\n", strings.Join(doc.Keywords, ", "))
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", doc.Content)

	if len(doc.CodeExamples) > 0 {
		fmt.Fprintf(deps.Stdout, "\nCode examples:\n")
		for _, example := range doc.CodeExamples {
			fmt.Fprintf(deps.Stdout, "  %s\n", example)
		}
	}

	return nil
}
