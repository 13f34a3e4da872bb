package pagesafe

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// NonceSize is the length in bytes of the per-message IV.
const NonceSize = 16

// MinPassphraseLength is the shortest passphrase callers accept.
const MinPassphraseLength = 8

// Cipher encrypts and decrypts text with a passphrase-derived key.
//
// Ciphertext carries no MAC: tampering is only detected when it breaks the
// padding, and a wrong passphrase is indistinguishable from corruption.
type Cipher interface {
	// Encrypt returns hex(nonce) + ":" + hex(ciphertext).
	// Every call uses a fresh random nonce.
	Encrypt(plaintext, passphrase string) (string, error)

	// Decrypt reverses Encrypt.
	// Returns a *CryptoError with CryptoMalformedInput when the blob cannot
	// be parsed and CryptoWrongKeyOrCorrupt when decryption fails.
	Decrypt(blob, passphrase string) (string, error)
}

// CryptoErrorKind classifies cipher failures.
type CryptoErrorKind string

// CryptoErrorKind constants.
const (
	CryptoShortKey          CryptoErrorKind = "short_key"
	CryptoMalformedInput    CryptoErrorKind = "malformed_input"
	CryptoWrongKeyOrCorrupt CryptoErrorKind = "wrong_key_or_corrupt"
)

// CryptoError is returned by Cipher implementations and passphrase checks.
type CryptoError struct {
	Kind   CryptoErrorKind
	Reason string
}

func (e *CryptoError) Error() string {
	if e.Reason == "" {
		return "crypto: " + string(e.Kind)
	}
	return "crypto: " + string(e.Kind) + ": " + e.Reason
}

// Message returns the user-facing description of the failure.
func (e *CryptoError) Message() string {
	switch e.Kind {
	case CryptoShortKey:
		return "Encryption key must be at least 8 characters long."
	case CryptoMalformedInput:
		return "Decryption failed. Encrypted text is malformed."
	default:
		return "Decryption failed. Invalid key or corrupted data."
	}
}

// ValidatePassphrase enforces the minimum passphrase length.
func ValidatePassphrase(passphrase string) error {
	if utf8.RuneCountInString(passphrase) < MinPassphraseLength {
		return &CryptoError{Kind: CryptoShortKey}
	}
	return nil
}

// EncryptedBlob is the parsed form of a serialized ciphertext.
type EncryptedBlob struct {
	Nonce      []byte
	Ciphertext []byte
}

// String serializes the blob as hex(nonce) + ":" + hex(ciphertext).
func (b EncryptedBlob) String() string {
	return hex.EncodeToString(b.Nonce) + ":" + hex.EncodeToString(b.Ciphertext)
}

// ParseEncryptedBlob splits s on its first ':' and decodes both halves.
func ParseEncryptedBlob(s string) (EncryptedBlob, error) {
	nonceHex, ctHex, ok := strings.Cut(s, ":")
	if !ok {
		return EncryptedBlob{}, &CryptoError{Kind: CryptoMalformedInput, Reason: "missing separator"}
	}
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return EncryptedBlob{}, &CryptoError{Kind: CryptoMalformedInput, Reason: "invalid nonce hex"}
	}
	if len(nonce) != NonceSize {
		return EncryptedBlob{}, &CryptoError{Kind: CryptoMalformedInput, Reason: "invalid nonce length"}
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil {
		return EncryptedBlob{}, &CryptoError{Kind: CryptoMalformedInput, Reason: "invalid ciphertext hex"}
	}
	return EncryptedBlob{Nonce: nonce, Ciphertext: ct}, nil
}
