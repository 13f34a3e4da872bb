// Package aescbc implements pagesafe.Cipher with AES-256-CBC, PKCS#7
// padding and a SHA-256 passphrase-derived key.
package aescbc

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagesafe"
)

// Ensure Cipher implements pagesafe.Cipher at compile time.
var _ pagesafe.Cipher = (*Cipher)(nil)

// Cipher encrypts text under sha256(passphrase).
// The output is confidential but not authenticated.
type Cipher struct {
	// Rand is the nonce source. Defaults to crypto/rand.Reader.
	Rand io.Reader
}

// NewCipher creates a Cipher reading nonces from crypto/rand.
func NewCipher() *Cipher {
	return &Cipher{Rand: rand.Reader}
}

// DeriveKey returns the 256-bit key for passphrase.
func DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

// Encrypt returns hex(iv) + ":" + hex(ciphertext) using a fresh random IV.
// Invalid UTF-8 in plaintext is replaced with U+FFFD before encryption.
func (c *Cipher) Encrypt(plaintext, passphrase string) (string, error) {
	plaintext = strings.ToValidUTF8(plaintext, "\uFFFD")

	block, err := aes.NewCipher(DeriveKey(passphrase))
	if err != nil {
		return "", err
	}

	iv := make([]byte, pagesafe.NonceSize)
	if _, err := io.ReadFull(c.nonceSource(), iv); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	return pagesafe.EncryptedBlob{Nonce: iv, Ciphertext: ct}.String(), nil
}

// Decrypt reverses Encrypt. A wrong passphrase and corrupted ciphertext
// both yield pagesafe.CryptoWrongKeyOrCorrupt.
func (c *Cipher) Decrypt(blob, passphrase string) (string, error) {
	parsed, err := pagesafe.ParseEncryptedBlob(blob)
	if err != nil {
		return "", err
	}
	ct := parsed.Ciphertext
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", &pagesafe.CryptoError{Kind: pagesafe.CryptoWrongKeyOrCorrupt, Reason: "ciphertext is not a whole number of blocks"}
	}

	block, err := aes.NewCipher(DeriveKey(passphrase))
	if err != nil {
		return "", err
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, parsed.Nonce).CryptBlocks(plain, ct)

	plain, ok := unpad(plain, aes.BlockSize)
	if !ok || !utf8.Valid(plain) {
		return "", &pagesafe.CryptoError{Kind: pagesafe.CryptoWrongKeyOrCorrupt}
	}
	return string(plain), nil
}

func (c *Cipher) nonceSource() io.Reader {
	if c.Rand == nil {
		return rand.Reader
	}
	return c.Rand
}

// pad appends PKCS#7 padding; a full block is added when b is aligned.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad strips PKCS#7 padding, reporting false if it is invalid.
func unpad(b []byte, size int) ([]byte, bool) {
	if len(b) == 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, false
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, false
		}
	}
	return b[:len(b)-n], true
}
