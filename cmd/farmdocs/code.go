package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs"
)

// Run executes the code command.
func (c *CodeCmd) Run(deps *Dependencies) error {
	examples, err := deps.Search.CodeExamples(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmdocs.ErrorMessage(err))
		return err
	}

	if len(examples) == 0 {
		fmt.Fprintln(deps.Stdout, "No code examples found.")
		return nil
	}

	for i, example := range examples {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, example)
	}

	return nil
}
