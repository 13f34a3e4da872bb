package main

import (
	"fmt"

	"github.com/fwojciec/pagesafe"
)

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return report(deps, c.JSON, pagesafe.Errorf(pagesafe.EINVALID, "use --force to confirm deletion"))
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		return report(deps, c.JSON, err)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, deleteResponse{Success: true, Message: "Item deleted successfully"})
	}
	fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
	return nil
}
