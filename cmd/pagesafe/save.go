package main

import (
	"fmt"

	"github.com/fwojciec/pagesafe"
)

type saveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	if c.Key == "" {
		return report(deps, c.JSON, pagesafe.Errorf(pagesafe.EINVALID, "Text and key are required"))
	}
	if err := pagesafe.ValidatePassphrase(c.Key); err != nil {
		return report(deps, c.JSON, err)
	}

	var session pagesafe.Session
	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		return report(deps, c.JSON, err)
	}
	session.Result = result

	blob, err := deps.Cipher.Encrypt(session.Text(), c.Key)
	if err != nil {
		return report(deps, c.JSON, err)
	}

	record := &pagesafe.Record{
		URL:           result.URL,
		Title:         result.Title,
		EncryptedText: blob,
	}
	if err := deps.Records.CreateRecord(deps.Ctx, record, c.Key); err != nil {
		return report(deps, c.JSON, err)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, saveResponse{
			Success: true,
			Message: "Data saved successfully",
			ID:      record.ID,
		})
	}
	fmt.Fprintf(deps.Stdout, "Saved %s (%d words) as %s\n", record.URL, result.WordCount, record.ID)
	return nil
}
