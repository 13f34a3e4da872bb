package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pagesafe"
)

type encryptResponse struct {
	Success   bool   `json:"success"`
	Encrypted string `json:"encrypted"`
}

type decryptResponse struct {
	Success   bool   `json:"success"`
	Decrypted string `json:"decrypted"`
}

// Run executes the encrypt command.
func (c *EncryptCmd) Run(deps *Dependencies) error {
	text, err := readText(deps.Stdin, c.Text)
	if err != nil {
		return report(deps, c.JSON, err)
	}
	if text == "" || c.Key == "" {
		return report(deps, c.JSON, pagesafe.Errorf(pagesafe.EINVALID, "Text and key are required"))
	}
	if err := pagesafe.ValidatePassphrase(c.Key); err != nil {
		return report(deps, c.JSON, err)
	}

	blob, err := deps.Cipher.Encrypt(text, c.Key)
	if err != nil {
		return report(deps, c.JSON, err)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, encryptResponse{Success: true, Encrypted: blob})
	}
	fmt.Fprintln(deps.Stdout, blob)
	return nil
}

// Run executes the decrypt command.
func (c *DecryptCmd) Run(deps *Dependencies) error {
	blob, err := readText(deps.Stdin, c.Text)
	if err != nil {
		return report(deps, c.JSON, err)
	}
	blob = strings.TrimSpace(blob)
	if blob == "" || c.Key == "" {
		return report(deps, c.JSON, pagesafe.Errorf(pagesafe.EINVALID, "Text and key are required"))
	}

	text, err := deps.Cipher.Decrypt(blob, c.Key)
	if err != nil {
		return report(deps, c.JSON, err)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, decryptResponse{Success: true, Decrypted: text})
	}
	fmt.Fprintln(deps.Stdout, text)
	return nil
}

// readText returns arg, or all of stdin when arg is empty.
func readText(stdin io.Reader, arg string) (string, error) {
	if arg != "" || stdin == nil {
		return arg, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
