package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagesafe.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		return report(deps, c.JSON, err)
	}

	if c.JSON {
		if records == nil {
			records = []*pagesafe.Record{}
		}
		return writeJSON(deps.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved records. Use 'pagesafe save' to create one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.CreatedAt.Format(time.DateTime), r.Title, r.URL)
	}
	return nil
}
