package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagesafe"
)

type getResponse struct {
	*pagesafe.Record
	Decrypted string `json:"decrypted,omitempty"`
}

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		return report(deps, c.JSON, err)
	}

	resp := getResponse{Record: record}
	if c.Key != "" {
		ok, err := deps.Records.VerifyPassphrase(deps.Ctx, c.ID, c.Key)
		if err != nil {
			return report(deps, c.JSON, err)
		}
		if !ok {
			return report(deps, c.JSON, &pagesafe.CryptoError{
				Kind:   pagesafe.CryptoWrongKeyOrCorrupt,
				Reason: "passphrase does not match",
			})
		}

		resp.Decrypted, err = deps.Cipher.Decrypt(record.EncryptedText, c.Key)
		if err != nil {
			return report(deps, c.JSON, err)
		}
	}

	if c.JSON {
		return writeJSON(deps.Stdout, resp)
	}

	fmt.Fprintf(deps.Stdout, "ID: %s\nURL: %s\nTitle: %s\nSaved: %s\n\n",
		record.ID, record.URL, record.Title, record.CreatedAt.Format(time.DateTime))
	if resp.Decrypted != "" {
		fmt.Fprintln(deps.Stdout, resp.Decrypted)
		return nil
	}
	fmt.Fprintln(deps.Stdout, record.EncryptedText)
	return nil
}
