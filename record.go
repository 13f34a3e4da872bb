package pagesafe

import (
	"context"
	"time"
)

// Record is an encrypted scrape saved for later retrieval.
// The passphrase itself is never stored; KeyHash is a one-way verifier.
type Record struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	EncryptedText string    `json:"encryptedText,omitempty"`
	KeyHash       string    `json:"-"`
	ContentHash   string    `json:"contentHash"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.EncryptedText == "" {
		return Errorf(EINVALID, "record encrypted text required")
	}
	return nil
}

// DefaultRecordLimit is the page size used when a filter sets no limit.
const DefaultRecordLimit = 20

// RecordService represents a service for managing saved records.
type RecordService interface {
	// CreateRecord stores an already encrypted record together with a
	// verifier for passphrase. ID, ContentHash and CreatedAt are set on record.
	CreateRecord(ctx context.Context, record *Record, passphrase string) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records newest first. EncryptedText is omitted.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// VerifyPassphrase reports whether passphrase matches the one the
	// record was saved with.
	// Returns ENOTFOUND if record does not exist.
	VerifyPassphrase(ctx context.Context, id, passphrase string) (bool, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
