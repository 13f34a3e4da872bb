package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/pagesafe"
)

// failure is the JSON shape of every failed operation.
type failure struct {
	Success     bool     `json:"success"`
	Error       string   `json:"error"`
	Details     string   `json:"details,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// newFailure describes err for users. Fetch failures carry details and
// suggestions.
func newFailure(err error) failure {
	f := failure{Error: pagesafe.ErrorMessage(err)}
	var fe *pagesafe.FetchError
	if errors.As(err, &fe) {
		f.Details = fe.Details()
		f.Suggestions = pagesafe.FetchSuggestions
	}
	return f
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportedError marks an error that report has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// report prints err as JSON on stdout or as text on stderr and returns it
// marked as reported.
func report(deps *Dependencies, asJSON bool, err error) error {
	f := newFailure(err)
	if asJSON {
		if werr := writeJSON(deps.Stdout, f); werr != nil {
			return werr
		}
		return &reportedError{err: err}
	}
	printFailure(deps.Stderr, f)
	return &reportedError{err: err}
}

// PrintError writes err to w unless a command has already reported it.
func PrintError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, err)
}

func printFailure(w io.Writer, f failure) {
	fmt.Fprintf(w, "error: %s\n", f.Error)
	if f.Details != "" {
		fmt.Fprintf(w, "details: %s\n", f.Details)
	}
	for _, s := range f.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
