package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/pagesafe"
)

// probeResponse is the JSON shape of a probe.
type probeResponse struct {
	Success    bool              `json:"success"`
	Accessible bool              `json:"accessible"`
	Status     int               `json:"status,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	if _, err := pagesafe.ParseURL(c.URL); err != nil {
		return c.fail(deps, pagesafe.ErrorMessage(err), err)
	}

	result, err := deps.Prober.Probe(deps.Ctx, c.URL)
	if err != nil {
		return c.fail(deps, pagesafe.ErrorMessage(err), err)
	}

	if !result.Accessible {
		msg := fmt.Sprintf("Request failed with status code %d", result.StatusCode)
		return c.fail(deps, msg, pagesafe.Errorf(pagesafe.EFETCH, "%s", msg))
	}

	if c.JSON {
		return writeJSON(deps.Stdout, probeResponse{
			Success:    true,
			Accessible: true,
			Status:     result.StatusCode,
			Headers:    result.Headers,
		})
	}

	fmt.Fprintf(deps.Stdout, "%s is accessible (%d)\n", c.URL, result.StatusCode)
	keys := make([]string, 0, len(result.Headers))
	for k := range result.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(deps.Stdout, "  %s: %s\n", k, result.Headers[k])
	}
	return nil
}

func (c *ProbeCmd) fail(deps *Dependencies, msg string, err error) error {
	if c.JSON {
		if werr := writeJSON(deps.Stdout, probeResponse{Error: msg}); werr != nil {
			return werr
		}
		return &reportedError{err: err}
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
	return &reportedError{err: err}
}
