package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.Run(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d of %d files (%d skipped)\n",
		result.Indexed, result.Processed, result.Skipped)
	for _, docType := range farmdocs.DocTypes() {
		if count, ok := result.ByType[docType]; ok {
			fmt.Fprintf(deps.Stdout, "  %-20s %d\n", docType, count)
		}
	}

	return nil
}
