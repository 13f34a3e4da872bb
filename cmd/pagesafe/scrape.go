package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/pagesafe"
	"github.com/fwojciec/pagesafe/scrape"
)

// scrapeSuccess is the JSON shape of a successful scrape.
type scrapeSuccess struct {
	Success bool `json:"success"`
	*pagesafe.ScrapeResult
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		result, err := deps.Scraper.Scrape(deps.Ctx, c.URLs[0])
		if err != nil {
			return report(deps, c.JSON, err)
		}
		if c.JSON {
			return writeJSON(deps.Stdout, scrapeSuccess{Success: true, ScrapeResult: result})
		}
		printResult(deps.Stdout, result)
		return nil
	}

	var progress scrape.ProgressFunc
	if !c.JSON {
		progress = func(item scrape.Item, completed, total int) {
			status := "ok"
			if item.Err != nil {
				status = pagesafe.ErrorMessage(item.Err)
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", completed, total, item.URL, status)
		}
	}

	items := deps.Batch.ScrapeAll(deps.Ctx, c.URLs, progress)

	failed := 0
	responses := make([]any, len(items))
	for i, item := range items {
		if item.Err != nil {
			failed++
			responses[i] = newFailure(item.Err)
			if !c.JSON {
				fmt.Fprintf(deps.Stderr, "%s\n", item.URL)
				printFailure(deps.Stderr, newFailure(item.Err))
			}
			continue
		}
		responses[i] = scrapeSuccess{Success: true, ScrapeResult: item.Result}
		if !c.JSON {
			printResult(deps.Stdout, item.Result)
		}
	}

	if c.JSON {
		if err := writeJSON(deps.Stdout, responses); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(items))
	}
	return nil
}

func printResult(w io.Writer, r *pagesafe.ScrapeResult) {
	fmt.Fprintf(w, "URL: %s\nWords: %d\n\n%s\n\n", r.URL, r.WordCount, r.Text)
}
