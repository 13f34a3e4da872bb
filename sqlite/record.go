package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pagesafe"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Compile-time interface verification.
var _ pagesafe.RecordService = (*RecordService)(nil)

// RecordService implements pagesafe.RecordService using SQLite.
// Passphrases are never stored; only a bcrypt verifier is kept.
type RecordService struct {
	db *DB

	// BcryptCost is the work factor for new verifiers.
	BcryptCost int
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, BcryptCost: bcrypt.DefaultCost}
}

// verifierInput pre-hashes the passphrase so bcrypt's 72-byte limit never
// applies, and so the verifier is unrelated to the cipher key.
func verifierInput(passphrase string) []byte {
	sum := sha256.Sum256([]byte("pagesafe-verifier:" + passphrase))
	return []byte(hex.EncodeToString(sum[:]))
}

// CreateRecord stores an encrypted record with a verifier for passphrase.
func (s *RecordService) CreateRecord(ctx context.Context, record *pagesafe.Record, passphrase string) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := pagesafe.ValidatePassphrase(passphrase); err != nil {
		return err
	}

	keyHash, err := bcrypt.GenerateFromPassword(verifierInput(passphrase), s.BcryptCost)
	if err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.KeyHash = string(keyHash)
	record.ContentHash = hashContent(record.EncryptedText)
	record.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, title, encrypted_text, key_hash, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.URL, record.Title, record.EncryptedText, record.KeyHash, record.ContentHash,
		record.CreatedAt.Format(timeFormat))

	return err
}

// FindRecordByID retrieves a record by ID, including its encrypted text.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagesafe.Record, error) {
	var record pagesafe.Record
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, encrypted_text, key_hash, content_hash, created_at
		FROM records
		WHERE id = ?
	`, id).Scan(&record.ID, &record.URL, &record.Title, &record.EncryptedText, &record.KeyHash,
		&record.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagesafe.Errorf(pagesafe.ENOTFOUND, "Item not found")
	}
	if err != nil {
		return nil, err
	}

	record.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindRecords retrieves records newest first without their encrypted text
// or verifier. A zero limit means pagesafe.DefaultRecordLimit.
func (s *RecordService) FindRecords(ctx context.Context, filter pagesafe.RecordFilter) ([]*pagesafe.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content_hash, created_at FROM records WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	limit := filter.Limit
	if limit <= 0 {
		limit = pagesafe.DefaultRecordLimit
	}
	appendPagination(&query, &args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pagesafe.Record
	for rows.Next() {
		var record pagesafe.Record
		var createdAt string

		if err := rows.Scan(&record.ID, &record.URL, &record.Title, &record.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		record.CreatedAt, err = parseTime(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// VerifyPassphrase compares passphrase against the stored verifier.
func (s *RecordService) VerifyPassphrase(ctx context.Context, id, passphrase string) (bool, error) {
	var keyHash string
	err := s.db.QueryRowContext(ctx, "SELECT key_hash FROM records WHERE id = ?", id).Scan(&keyHash)
	if err == sql.ErrNoRows {
		return false, pagesafe.Errorf(pagesafe.ENOTFOUND, "Item not found")
	}
	if err != nil {
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(keyHash), verifierInput(passphrase))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagesafe.Errorf(pagesafe.ENOTFOUND, "Item not found")
	}

	return nil
}
