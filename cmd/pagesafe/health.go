package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagesafe"
)

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	resp := healthResponse{
		Status:    "OK",
		Database:  "Connected",
		Timestamp: deps.now().UTC().Format(time.RFC3339),
	}

	var pingErr error
	if deps.DB == nil {
		pingErr = fmt.Errorf("database not configured")
	} else {
		pingErr = deps.DB.Ping(deps.Ctx)
	}
	if pingErr != nil {
		resp.Database = "Disconnected"
	}

	if c.JSON {
		if err := writeJSON(deps.Stdout, resp); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(deps.Stdout, "status: %s\ndatabase: %s\ntimestamp: %s\n", resp.Status, resp.Database, resp.Timestamp)
	}

	if pingErr != nil {
		return pagesafe.Errorf(pagesafe.EINTERNAL, "database unreachable: %v", pingErr)
	}
	return nil
}
