package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Search.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total documents: %d\n", stats.Total)
	for _, docType := range farmdocs.DocTypes() {
		if count, ok := stats.ByType[docType]; ok {
			fmt.Fprintf(deps.Stdout, "  %-20s %d\n", docType, count)
		}
	}

	return nil
}
