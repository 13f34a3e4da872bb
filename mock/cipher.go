package mock

import "github.com/fwojciec/pagesafe"

var _ pagesafe.Cipher = (*Cipher)(nil)

// Cipher is a mock implementation of pagesafe.Cipher.
type Cipher struct {
	EncryptFn func(plaintext, passphrase string) (string, error)
	DecryptFn func(blob, passphrase string) (string, error)
}

func (c *Cipher) Encrypt(plaintext, passphrase string) (string, error) {
	return c.EncryptFn(plaintext, passphrase)
}

func (c *Cipher) Decrypt(blob, passphrase string) (string, error) {
	return c.DecryptFn(blob, passphrase)
}
